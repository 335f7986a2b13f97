/*
File    : lumen/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements the user-function Value kind: parameter
// names, body statement, and captured environment.
package function

import (
	"fmt"
	"strings"

	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/amaji/lumen/scope"
)

// Function is a user-defined function value. Env holds a pointer to the
// scope in force at the function literal's evaluation site, not a
// snapshot copy of it: it is the same *Scope node the enclosing code
// continues to mutate, so later writes through that chain stay visible
// inside the closure.
type Function struct {
	Name   string
	Params []string
	Body   *parser.Block
	Env    *scope.Scope
}

func (f *Function) Type() objects.ValueType { return objects.FunctionType }

// Display renders a short form; a bare identifier can never spell a
// function literal back out so no fuller syntax is attempted here.
func (f *Function) Display() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s>", name)
}

func (f *Function) Inspect() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s(%s)>", name, strings.Join(f.Params, ", "))
}
