/*
File    : lumen/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaji/lumen/errs"
	"github.com/amaji/lumen/objects"
)

func TestScenario_ArithmeticPrecedence(t *testing.T) {
	v, err := Eval("var x = 1 + 2 * 3; x;")
	assert.NoError(t, err)
	num, ok := v.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float64(7), num.Value)
}

func TestScenario_FunctionCall(t *testing.T) {
	v, err := Eval("function add(a, b) { return a + b; } add(2, 3);")
	assert.NoError(t, err)
	num, ok := v.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float64(5), num.Value)
}

func TestScenario_ClosureCapture(t *testing.T) {
	src := `
		function makeCounter() {
			var c = 0;
			return function() { c = c + 1; return c; };
		}
		var n = makeCounter();
		n(); n(); n();
	`
	v, err := Eval(src)
	assert.NoError(t, err)
	num, ok := v.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float64(3), num.Value)
}

func TestScenario_StringConcatenationLeftAssociative(t *testing.T) {
	v, err := Eval(`"hi " + 1 + 2;`)
	assert.NoError(t, err)
	str, ok := v.(*objects.String)
	assert.True(t, ok)
	assert.Equal(t, "hi 12", str.Value)
}

func TestScenario_TruthinessInIf(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{`if (0) { 1; } else { 2; }`, 2},
		{`if ("") { 1; } else { 2; }`, 2},
		{`if ("x") { 1; } else { 2; }`, 1},
	}
	for _, c := range cases {
		v, err := Eval(c.src)
		assert.NoError(t, err)
		num, ok := v.(*objects.Number)
		assert.True(t, ok)
		assert.Equal(t, c.want, num.Value)
	}
}

func TestScenario_WhileReevaluatesConditionEveryIteration(t *testing.T) {
	v, err := Eval("var i = 0; while (i < 3) { i = i + 1; } i;")
	assert.NoError(t, err)
	num, ok := v.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float64(3), num.Value)
}

func TestDivisionByZeroYieldsPositiveInfinity(t *testing.T) {
	v, err := Eval("1 / 0;")
	assert.NoError(t, err)
	num, ok := v.(*objects.Number)
	assert.True(t, ok)
	assert.True(t, math.IsInf(num.Value, 1))

	v, err = Eval("-1 / 0;")
	assert.NoError(t, err)
	num, ok = v.(*objects.Number)
	assert.True(t, ok)
	assert.True(t, math.IsInf(num.Value, 1), "division by zero is always positive infinity regardless of sign")
}

func TestShortCircuit_Or(t *testing.T) {
	src := `
		var called = false;
		function g() { called = true; return true; }
		function f() { return true; }
		f() or g();
		called;
	`
	v, err := Eval(src)
	assert.NoError(t, err)
	b, ok := v.(*objects.Boolean)
	assert.True(t, ok)
	assert.False(t, b.Value, "g must not be called when f() is already truthy")
}

func TestShortCircuit_And(t *testing.T) {
	src := `
		var called = false;
		function g() { called = true; return true; }
		function f() { return false; }
		f() and g();
		called;
	`
	v, err := Eval(src)
	assert.NoError(t, err)
	b, ok := v.(*objects.Boolean)
	assert.True(t, ok)
	assert.False(t, b.Value, "g must not be called when f() is already falsy")
}

func TestEquality_CrossKindAlwaysNotEqual(t *testing.T) {
	// `undefined` has no literal; an uninitialized declaration yields it.
	v, err := Eval("var u; null == u;")
	assert.NoError(t, err)
	b, ok := v.(*objects.Boolean)
	assert.True(t, ok)
	assert.False(t, b.Value)
}

func TestFailure_ReferenceErrorOnUndeclaredRead(t *testing.T) {
	_, err := Eval("x;")
	assert.Error(t, err)
	_, ok := err.(*errs.ReferenceError)
	assert.True(t, ok)
}

func TestFailure_TypeErrorOnStringMinusNumber(t *testing.T) {
	_, err := Eval(`"a" - 1;`)
	assert.Error(t, err)
	_, ok := err.(*errs.TypeError)
	assert.True(t, ok)
}

func TestFailure_CallOfNonFunction(t *testing.T) {
	_, err := Eval("1();")
	assert.Error(t, err)
	_, ok := err.(*errs.TypeError)
	assert.True(t, ok)
}

func TestFailure_UnterminatedString(t *testing.T) {
	_, err := Eval(`"abc`)
	assert.Error(t, err)
	_, ok := err.(*errs.LexerError)
	assert.True(t, ok)
}

func TestFailure_MissingVariableName(t *testing.T) {
	_, err := Eval("var ;")
	assert.Error(t, err)
	_, ok := err.(*errs.ParserError)
	assert.True(t, ok)
}

func TestMissingCallArgumentsBecomeUndefined(t *testing.T) {
	v, err := Eval("function f(a, b) { return b; } f(1);")
	assert.NoError(t, err)
	_, ok := v.(*objects.Undefined)
	assert.True(t, ok)
}

func TestExtraCallArgumentsAreDiscarded(t *testing.T) {
	v, err := Eval("function f(a) { return a; } f(1, 2, 3);")
	assert.NoError(t, err)
	num, ok := v.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float64(1), num.Value)
}

func TestFunctionWithNoReturnYieldsUndefined(t *testing.T) {
	v, err := Eval("function f() { var x = 1; } f();")
	assert.NoError(t, err)
	_, ok := v.(*objects.Undefined)
	assert.True(t, ok)
}

func TestConsoleLogUnreachableFromSource(t *testing.T) {
	_, err := Eval("console.log(1);")
	assert.Error(t, err, "console.log is bound under a key with no grammar rule to reach it")
}
