/*
Package binding implements the Parser's `let`-binding environment.

File: mathnote/binding/environment.go

Unlike the teacher's scope.Scope, this environment is a single flat scope
for the lifetime of one parse (spec.md §3: "Single scope, flat, for the
duration of one parse"). There is no Parent chain, no const/type tracking —
`let` here binds an already-lowered AST node sequence, not a runtime value,
and every binding is visible for the rest of the parse once stored. Late
bindings shadow earlier ones by simple overwrite.
*/
package binding

import "github.com/mathnote/mathnote/ast"

// Environment maps a `let`-bound identifier to the node sequence its
// expression lowered to. Values are stored already deep-cloned with source
// locations stripped (spec.md §3 invariant 3, §9): the Parser must never
// store a live reference into the AST that also appears in the sequence
// returned to the caller, or a handler mutating one would corrupt the
// other.
type Environment struct {
	bindings map[string][]ast.Node
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{bindings: make(map[string][]ast.Node)}
}

// Bind stores value under name, strips its source locations, and deep
// clones it first so the caller's own copy of value remains independent
// of what is stored. A later Bind under the same name simply overwrites —
// that is what "late bindings shadow earlier ones" means in a flat scope.
func (e *Environment) Bind(name string, value []ast.Node) {
	e.bindings[name] = CloneSequence(value)
}

// Lookup returns a fresh deep clone of the node sequence bound to name, so
// every substitution site gets an independent copy (spec.md §8: "Clone
// independence"). The bool result is false when name is not bound.
func (e *Environment) Lookup(name string) ([]ast.Node, bool) {
	value, ok := e.bindings[name]
	if !ok {
		return nil, false
	}
	return CloneSequence(value), true
}

// Has reports whether name is currently bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.bindings[name]
	return ok
}
