/*
File    : lumen/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the environment chain: a node owning a
// name-to-value mapping and a link to its enclosing environment, or none
// at the root.
package scope

import "github.com/amaji/lumen/objects"

// Scope is one node in the environment chain. The var, let, and const
// declaration keywords are accepted identically and bind through the same
// map; no const immutability or let type-lock is enforced, so this type
// carries no separate bookkeeping for the three keywords.
type Scope struct {
	// Variables maps names to their current values in this scope.
	Variables map[string]objects.Value

	// Parent points to the enclosing scope, or nil at the global root.
	Parent *Scope
}

// NewScope creates a scope nested inside parent. parent == nil creates the
// global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Value),
		Parent:    parent,
	}
}

// LookUp walks the chain from this scope outward to the nearest binding of
// varName.
func (s *Scope) LookUp(varName string) (objects.Value, bool) {
	if obj, ok := s.Variables[varName]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return nil, false
}

// Bind writes into this scope unconditionally, shadowing any binding of
// the same name in an enclosing scope. The bool
// result reports whether varName already existed in this exact scope.
func (s *Scope) Bind(varName string, obj objects.Value) bool {
	_, redeclared := s.Variables[varName]
	s.Variables[varName] = obj
	return redeclared
}

// Assign rewrites the innermost frame in the chain that already holds
// varName. It reports false, leaving every
// frame untouched, if no frame in the chain holds the name.
func (s *Scope) Assign(varName string, obj objects.Value) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}
