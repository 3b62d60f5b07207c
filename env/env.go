/*
File    : minilisp/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements the lexical environment (scope chain) mini-lisp
// evaluates against: a mapping from symbol name to runtime value, plus a
// pointer to an enclosing (outer) environment. Lookup walks the chain
// outward until the name is found or the chain is exhausted. Environments
// are shared by reference — closures capture a live pointer, not a
// snapshot — so that recursive top-level definitions and nested closures
// observe later mutations of the frames they were created in (spec §3/§5).
package env

import "github.com/akashmaji946/minilisp/value"

// Environment is one frame of the scope chain.
type Environment struct {
	vars  map[string]value.Value
	Outer *Environment
}

// New creates an empty frame whose enclosing scope is outer (nil for the
// global environment).
func New(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), Outer: outer}
}

// NewWithBindings creates a frame pre-populated by zipping names and values
// in order. The caller must ensure len(names) == len(values); this is the
// call-frame constructor used for function application, where the
// evaluator has already checked arity.
func NewWithBindings(names []string, values []value.Value, outer *Environment) *Environment {
	e := New(outer)
	for i, name := range names {
		e.vars[name] = values[i]
	}
	return e
}

// Lookup searches this frame and, on a miss, every enclosing frame in turn.
// It returns the bound value and true, or (nil, false) if name is unbound
// anywhere in the chain.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Outer != nil {
		return e.Outer.Lookup(name)
	}
	return nil, false
}

// Define binds name to val in this frame only, overwriting any existing
// binding of the same name in this frame. It never touches outer frames.
func (e *Environment) Define(name string, val value.Value) {
	e.vars[name] = val
}

// Bindings returns a snapshot of the names bound directly in this frame,
// mapped to their values. It does not walk Outer. Used by the REPL's /env
// command; callers must not rely on iteration order.
func (e *Environment) Bindings() map[string]value.Value {
	snapshot := make(map[string]value.Value, len(e.vars))
	for k, v := range e.vars {
		snapshot[k] = v
	}
	return snapshot
}
