/*
File    : lumen/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the statement list produced by the parser against a
// mutable environment chain: closures, function application, control
// flow, and all value operations live here.
package eval

import (
	"fmt"
	"math"

	"github.com/amaji/lumen/errs"
	"github.com/amaji/lumen/function"
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/amaji/lumen/scope"
)

// execKind tags the three-way result of executing a statement: no value,
// a value, or an escaping return.
type execKind int

const (
	noneResult execKind = iota
	valueResult
	returnResult
)

// execResult is a produced value (from an expression statement), a
// return-bearing value (propagates up until caught by the nearest call),
// or nothing (declarations, control statements with no expression result).
type execResult struct {
	kind  execKind
	value objects.Value
}

// Evaluator walks a parsed program against a global environment seeded
// with the built-in console.log.
type Evaluator struct {
	Global *scope.Scope
}

// NewEvaluator returns an Evaluator with a freshly seeded global scope.
func NewEvaluator() *Evaluator {
	e := &Evaluator{Global: scope.NewScope(nil)}
	registerBuiltins(e.Global)
	return e
}

// Eval lexes, parses, and evaluates source against a freshly seeded global
// environment, returning the top-level result: the last expression-statement's value,
// a return value that escaped the top level, or undefined.
func Eval(source string) (objects.Value, error) {
	return NewEvaluator().Eval(source)
}

// Eval runs source against this Evaluator's existing global environment,
// so successive calls share bindings the way a REPL session requires.
func (e *Evaluator) Eval(source string) (objects.Value, error) {
	p, err := parser.NewParser(source)
	if err != nil {
		return nil, err
	}
	stmts, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return e.EvalProgram(stmts)
}

// EvalProgram executes an already-parsed statement list against e's
// global scope.
func (e *Evaluator) EvalProgram(stmts []parser.Stmt) (objects.Value, error) {
	var last execResult
	for _, stmt := range stmts {
		res, err := e.execStmt(stmt, e.Global)
		if err != nil {
			return nil, err
		}
		if res.kind == returnResult {
			return res.value, nil
		}
		last = res
	}
	if last.kind == valueResult {
		return last.value, nil
	}
	return &objects.Undefined{}, nil
}

func (e *Evaluator) execStmt(stmt parser.Stmt, env *scope.Scope) (execResult, error) {
	switch node := stmt.(type) {
	case *parser.ExprStmt:
		v, err := e.evalExpr(node.Expr, env)
		if err != nil {
			return execResult{}, err
		}
		return execResult{kind: valueResult, value: v}, nil

	case *parser.VarDecl:
		var v objects.Value = &objects.Undefined{}
		if node.Init != nil {
			var err error
			v, err = e.evalExpr(node.Init, env)
			if err != nil {
				return execResult{}, err
			}
		}
		env.Bind(node.Name, v)
		return execResult{kind: noneResult}, nil

	case *parser.Block:
		return e.execBlock(node.Statements, scope.NewScope(env))

	case *parser.If:
		cond, err := e.evalExpr(node.Condition, env)
		if err != nil {
			return execResult{}, err
		}
		if objects.Truthy(cond) {
			return e.execStmt(node.Then, env)
		}
		if node.Else != nil {
			return e.execStmt(node.Else, env)
		}
		return execResult{kind: noneResult}, nil

	case *parser.While:
		for {
			cond, err := e.evalExpr(node.Condition, env)
			if err != nil {
				return execResult{}, err
			}
			if !objects.Truthy(cond) {
				break
			}
			res, err := e.execStmt(node.Body, env)
			if err != nil {
				return execResult{}, err
			}
			if res.kind == returnResult {
				return res, nil
			}
		}
		return execResult{kind: noneResult}, nil

	case *parser.Return:
		var v objects.Value = &objects.Undefined{}
		if node.Value != nil {
			var err error
			v, err = e.evalExpr(node.Value, env)
			if err != nil {
				return execResult{}, err
			}
		}
		return execResult{kind: returnResult, value: v}, nil

	case *parser.FuncDecl:
		fn := &function.Function{Name: node.Name, Params: node.Params, Body: node.Body, Env: env}
		env.Bind(node.Name, fn)
		return execResult{kind: noneResult}, nil
	}
	return execResult{}, fmt.Errorf("eval: unhandled statement type %T", stmt)
}

// execBlock runs statements against env, stopping and propagating the
// result unchanged the moment a return is encountered. The scope itself
// is restored by the caller popping its reference, unconditionally,
// including while a return is propagating.
func (e *Evaluator) execBlock(statements []parser.Stmt, env *scope.Scope) (execResult, error) {
	last := execResult{kind: noneResult}
	for _, stmt := range statements {
		res, err := e.execStmt(stmt, env)
		if err != nil {
			return execResult{}, err
		}
		if res.kind == returnResult {
			return res, nil
		}
		last = res
	}
	return last, nil
}

func (e *Evaluator) evalExpr(expr parser.Expr, env *scope.Scope) (objects.Value, error) {
	switch node := expr.(type) {
	case *parser.NumberLiteral:
		return &objects.Number{Value: node.Value}, nil
	case *parser.StringLiteral:
		return &objects.String{Value: node.Value}, nil
	case *parser.BooleanLiteral:
		return &objects.Boolean{Value: node.Value}, nil
	case *parser.NullLiteral:
		return &objects.Null{}, nil

	case *parser.Identifier:
		v, ok := env.LookUp(node.Name)
		if !ok {
			return nil, &errs.ReferenceError{Message: fmt.Sprintf("'%s' is not defined", node.Name)}
		}
		return v, nil

	case *parser.Assign:
		v, err := e.evalExpr(node.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(node.Name, v) {
			return nil, &errs.ReferenceError{Message: fmt.Sprintf("'%s' is not defined", node.Name)}
		}
		return v, nil

	case *parser.Binary:
		return e.evalBinary(node, env)

	case *parser.Unary:
		return e.evalUnary(node, env)

	case *parser.Conditional:
		// Never constructed by this package's parser (see parser.Conditional's
		// doc comment); handled here only so Value dispatch over Expr stays
		// exhaustive.
		cond, err := e.evalExpr(node.Condition, env)
		if err != nil {
			return nil, err
		}
		if objects.Truthy(cond) {
			return e.evalExpr(node.Then, env)
		}
		if node.Else != nil {
			return e.evalExpr(node.Else, env)
		}
		return &objects.Undefined{}, nil

	case *parser.Call:
		return e.evalCall(node, env)

	case *parser.FunctionLiteral:
		return &function.Function{Params: node.Params, Body: node.Body, Env: env}, nil
	}
	return nil, fmt.Errorf("eval: unhandled expression type %T", expr)
}

func (e *Evaluator) evalUnary(node *parser.Unary, env *scope.Scope) (objects.Value, error) {
	operand, err := e.evalExpr(node.Operand, env)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case "-":
		num, ok := operand.(*objects.Number)
		if !ok {
			return nil, &errs.TypeError{Message: "unary '-' requires a number operand"}
		}
		return &objects.Number{Value: -num.Value}, nil
	case "!":
		return &objects.Boolean{Value: !objects.Truthy(operand)}, nil
	}
	return nil, fmt.Errorf("eval: unhandled unary operator %q", node.Op)
}

func (e *Evaluator) evalBinary(node *parser.Binary, env *scope.Scope) (objects.Value, error) {
	// Short-circuit: the left operand is always evaluated; the right is
	// only evaluated if needed. The result is the deciding operand's own
	// value, not a coerced boolean.
	if node.Op == "and" || node.Op == "or" {
		left, err := e.evalExpr(node.Left, env)
		if err != nil {
			return nil, err
		}
		leftTruthy := objects.Truthy(left)
		if node.Op == "or" && leftTruthy {
			return left, nil
		}
		if node.Op == "and" && !leftTruthy {
			return left, nil
		}
		return e.evalExpr(node.Right, env)
	}

	left, err := e.evalExpr(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(node.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinary(node.Op, left, right)
}

// applyBinary implements the value-operation table. Value is a closed
// variant; this function's case analysis is exhaustive over operator, not
// over operand type: a value kind with no arm of its own here is accepted
// only as an operand of '+' alongside a string (via Display) and of
// '=='/'!=' (where it never equals anything).
func applyBinary(op string, left, right objects.Value) (objects.Value, error) {
	switch op {
	case "+":
		ln, lIsNum := left.(*objects.Number)
		rn, rIsNum := right.(*objects.Number)
		if lIsNum && rIsNum {
			return &objects.Number{Value: ln.Value + rn.Value}, nil
		}
		_, lIsStr := left.(*objects.String)
		_, rIsStr := right.(*objects.String)
		if lIsStr || rIsStr {
			return &objects.String{Value: left.Display() + right.Display()}, nil
		}
		return nil, &errs.TypeError{Message: "'+' requires two numbers or at least one string"}

	case "-", "*", "/":
		ln, lIsNum := left.(*objects.Number)
		rn, rIsNum := right.(*objects.Number)
		if !lIsNum || !rIsNum {
			return nil, &errs.TypeError{Message: fmt.Sprintf("'%s' requires two numbers", op)}
		}
		switch op {
		case "-":
			return &objects.Number{Value: ln.Value - rn.Value}, nil
		case "*":
			return &objects.Number{Value: ln.Value * rn.Value}, nil
		case "/":
			if rn.Value == 0 {
				return &objects.Number{Value: math.Inf(1)}, nil
			}
			return &objects.Number{Value: ln.Value / rn.Value}, nil
		}

	case "<", "<=", ">", ">=":
		ln, lIsNum := left.(*objects.Number)
		rn, rIsNum := right.(*objects.Number)
		if !lIsNum || !rIsNum {
			return nil, &errs.TypeError{Message: fmt.Sprintf("'%s' requires two numbers", op)}
		}
		var result bool
		switch op {
		case "<":
			result = ln.Value < rn.Value
		case "<=":
			result = ln.Value <= rn.Value
		case ">":
			result = ln.Value > rn.Value
		case ">=":
			result = ln.Value >= rn.Value
		}
		return &objects.Boolean{Value: result}, nil

	case "==", "!=":
		eq := valuesEqual(left, right)
		if op == "!=" {
			eq = !eq
		}
		return &objects.Boolean{Value: eq}, nil
	}
	return nil, fmt.Errorf("eval: unhandled binary operator %q", op)
}

// valuesEqual implements strict, same-kind-only structural equality: any
// cross-kind comparison, including null == undefined, is false.
func valuesEqual(left, right objects.Value) bool {
	switch l := left.(type) {
	case *objects.Number:
		r, ok := right.(*objects.Number)
		return ok && l.Value == r.Value
	case *objects.String:
		r, ok := right.(*objects.String)
		return ok && l.Value == r.Value
	case *objects.Boolean:
		r, ok := right.(*objects.Boolean)
		return ok && l.Value == r.Value
	case *objects.Null:
		_, ok := right.(*objects.Null)
		return ok
	case *objects.Undefined:
		_, ok := right.(*objects.Undefined)
		return ok
	default:
		return false
	}
}

func (e *Evaluator) evalCall(node *parser.Call, env *scope.Scope) (objects.Value, error) {
	callee, err := e.evalExpr(node.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(node.Args))
	for i, a := range node.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *objects.Builtin:
		return fn.Fn(args)

	case *function.Function:
		callEnv := scope.NewScope(fn.Env)
		for i, paramName := range fn.Params {
			if i < len(args) {
				callEnv.Bind(paramName, args[i])
			} else {
				callEnv.Bind(paramName, &objects.Undefined{})
			}
		}
		res, err := e.execBlock(fn.Body.Statements, callEnv)
		if err != nil {
			return nil, err
		}
		if res.kind == returnResult {
			return res.value, nil
		}
		return &objects.Undefined{}, nil

	default:
		return nil, &errs.TypeError{Message: "value is not a function"}
	}
}
