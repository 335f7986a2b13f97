/*
File    : lumen/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines Value, the closed tagged variant every Lumen
// runtime value belongs to. Dispatch on a Value is always by exhaustive
// Go type switch in the eval package, never by virtual method overloading
// that would let a new kind hide from an operator's case analysis.
package objects

import (
	"fmt"
	"strconv"
)

// ValueType names one arm of the Value variant.
type ValueType string

const (
	NumberType    ValueType = "number"
	StringType    ValueType = "string"
	BooleanType   ValueType = "boolean"
	NullType      ValueType = "null"
	UndefinedType ValueType = "undefined"
	FunctionType  ValueType = "function"
	BuiltinType   ValueType = "builtin"
	ObjectType    ValueType = "object"
)

// Value is implemented by every runtime value kind. Type identifies the
// variant; Display renders the value in the textual form used by string
// concatenation and the console.log builtin; Inspect renders a debug form
// distinguishing, e.g., a string from its contents. The REPL and the CLI
// print results with Display; nothing in this module calls Inspect.
type Value interface {
	Type() ValueType
	Display() string
	Inspect() string
}

// Number is a 64-bit floating point value. IEEE-754 double semantics apply
// throughout, including signed zero, infinities, and NaN.
type Number struct {
	Value float64
}

func (n *Number) Type() ValueType { return NumberType }

// Display renders the number in its natural textual form, with no
// trailing ".0" for integral values.
func (n *Number) Display() string {
	if n.Value == float64(int64(n.Value)) && !isSpecialFloat(n.Value) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) Inspect() string { return n.Display() }

func isSpecialFloat(f float64) bool {
	return f != f || f > 1e18 || f < -1e18
}

// String is a text value. Display yields the raw text verbatim; Inspect
// quotes it so it can be told apart from a bare identifier in debug output.
type String struct {
	Value string
}

func (s *String) Type() ValueType { return StringType }
func (s *String) Display() string { return s.Value }
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.Value) }

// Boolean is a true/false value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) Display() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) Inspect() string { return b.Display() }

// Null is the deliberate absence-of-value literal written as `null` in
// source. Distinct from Undefined; equality between the two is always
// false.
type Null struct{}

func (n *Null) Type() ValueType { return NullType }
func (n *Null) Display() string { return "null" }
func (n *Null) Inspect() string { return "null" }

// Undefined is the value produced by a declaration with no initializer, a
// call with missing arguments, or a function body that falls off the end
// without a return.
type Undefined struct{}

func (u *Undefined) Type() ValueType { return UndefinedType }
func (u *Undefined) Display() string { return "undefined" }
func (u *Undefined) Inspect() string { return "undefined" }

// BuiltinFunc is a host callable: it accepts the evaluated argument list
// and returns a value or an error, exactly mirroring a user function call
// from the evaluator's point of view.
type BuiltinFunc func(args []Value) (Value, error)

// Builtin wraps a BuiltinFunc as a callable Value. The sole instance in
// this interpreter's initial environment is console.log.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Type() ValueType { return BuiltinType }
func (b *Builtin) Display() string { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *Builtin) Inspect() string { return b.Display() }

// Object is a mutable map from text keys to values, shared by reference
// wherever the same Object pointer is bound. No grammar rule constructs an
// Object literal; the variant exists in the closed tagged union so that
// value-operation case analysis over Value remains exhaustive, and so a
// future property-access grammar addition (the reserved Dot token) has a
// value kind ready to operate on.
type Object struct {
	Fields map[string]Value
}

func NewObject() *Object {
	return &Object{Fields: make(map[string]Value)}
}

func (o *Object) Type() ValueType { return ObjectType }
func (o *Object) Display() string { return "<object>" }
func (o *Object) Inspect() string { return "<object>" }

// Truthy implements the coercion used by `if`, `while`, and `and`/`or`:
// false, null, undefined, 0 (and NaN), and the empty string are falsy;
// everything else is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Boolean:
		return val.Value
	case *Null:
		return false
	case *Undefined:
		return false
	case *Number:
		return val.Value != 0 && val.Value == val.Value
	case *String:
		return val.Value != ""
	default:
		return true
	}
}
