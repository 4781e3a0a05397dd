/*
File    : mix-lang/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package environment implements the lexical-scope frame chain: a mapping
from name to value plus an optional link to an outer frame. It is
trimmed from the go-mix scope package down to the two operations the
language actually needs — lookup and unconditional write into the
current frame — dropping constness, per-variable declared types, and
scope copying, none of which this language has a use for.
*/
package environment

import "github.com/akashmaji946/mix-lang/objects"

// Environment is one frame in the lexical-scope chain.
type Environment struct {
	store map[string]objects.Object
	outer *Environment
}

// NewEnvironment creates an empty top-level frame.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]objects.Object)}
}

// NewEnclosedEnvironment creates a frame whose outer link is outer.
// This is how function calls build a fresh frame on top of the
// closure's captured frame, and how closures stay alive: as long as a
// Function value references outer, outer is reachable.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get walks the frame chain outward until name is found or the chain
// is exhausted.
func (e *Environment) Get(name string) (objects.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return val, ok
}

// Set writes name into the current frame unconditionally. A `let`
// rebinding in the same frame replaces the prior value in place; this
// is also what a closure observes when the frame it captured is later
// rebound in.
func (e *Environment) Set(name string, val objects.Object) objects.Object {
	e.store[name] = val
	return val
}
