/*
File    : lumen/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseOne(t *testing.T, src string) Expr {
	t.Helper()
	p, err := NewParser(src)
	assert.NoError(t, err)
	stmts, err := p.Parse()
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ExprStmt)
	assert.True(t, ok, "expected an expression statement")
	return exprStmt.Expr
}

func TestPrecedence_AddBeforeMultiply(t *testing.T) {
	// a + b * c parses as a + (b * c)
	expr := parseOne(t, "a + b * c;")
	bin, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	rhs, ok := bin.Right.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", rhs.Op)
}

func TestPrecedence_MultiplyBeforeAdd(t *testing.T) {
	// a * b + c parses as (a * b) + c
	expr := parseOne(t, "a * b + c;")
	bin, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	lhs, ok := bin.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", lhs.Op)
}

func TestPrecedence_UnaryBindsTighterThanMultiply(t *testing.T) {
	// -a * b parses as (-a) * b
	expr := parseOne(t, "-a * b;")
	bin, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", bin.Op)
	lhs, ok := bin.Left.(*Unary)
	assert.True(t, ok)
	assert.Equal(t, "-", lhs.Op)
}

func TestLeftAssociativity_Subtraction(t *testing.T) {
	// a - b - c evaluates as (a - b) - c
	expr := parseOne(t, "a - b - c;")
	bin, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "-", bin.Op)
	lhs, ok := bin.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "-", lhs.Op)
	_, rightIsIdent := bin.Right.(*Identifier)
	assert.True(t, rightIsIdent)
}

func TestAssignment_RightAssociativeAndBareIdentOnly(t *testing.T) {
	expr := parseOne(t, "a = b = 1;")
	assign, ok := expr.(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name)
	inner, ok := assign.Value.(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestAssignment_InvalidTargetIsParserError(t *testing.T) {
	p, err := NewParser("1 = 2;")
	assert.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestFunctionDeclaration(t *testing.T) {
	p, err := NewParser("function add(a, b) { return a + b; }")
	assert.NoError(t, err)
	stmts, err := p.Parse()
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)
	fn, ok := stmts[0].(*FuncDecl)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Len(t, fn.Body.Statements, 1)
}

func TestWhileAndIf(t *testing.T) {
	src := `
		var i = 0;
		while (i < 3) {
			if (i == 1) { i = i + 2; } else { i = i + 1; }
		}
	`
	p, err := NewParser(src)
	assert.NoError(t, err)
	stmts, err := p.Parse()
	assert.NoError(t, err)
	assert.Len(t, stmts, 2)
	_, ok := stmts[1].(*While)
	assert.True(t, ok)
}

func TestVarDeclaration_MissingNameIsParserError(t *testing.T) {
	p, err := NewParser("var ;")
	assert.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestParamLimit(t *testing.T) {
	var src strings.Builder
	src.WriteString("function f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			src.WriteString(", ")
		}
		src.WriteString("p")
		src.WriteString(strconv.Itoa(i))
	}
	src.WriteString(") { return 1; }")

	p, err := NewParser(src.String())
	assert.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestDotTokenIsUnparsed(t *testing.T) {
	p, err := NewParser("a.b;")
	assert.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}
