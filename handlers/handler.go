/*
Package handlers implements the external function-handler interface the
Parser calls into for every lowered call that isn't handled natively
(spec.md §4.4). A Handler is the Parser's only way to turn a call's
mandatory/optional argument nodes into a single result node.

File: mathnote/handlers/handler.go

This is, by spec.md §1, explicitly an external collaborator — the core
only documents the interface it requires. Shipping a working default
registry here follows the teacher's builtin-table idiom
(objects/builtins.go: a name-keyed table populated at init time) so the
parser has something real to call during development and testing, not a
stub.
*/
package handlers

import (
	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/lexer"
)

// Context is what the Parser passes to every handler invocation: the name
// of the handler being invoked (which can differ from the source text:
// "sqrt" for root(...), the resolved kind for accent(...), "frac" for
// "/"), the call-site token (for diagnostics),
// and the opaque settings value threaded through from the top-level parse
// call (spec.md §4.4, §6).
type Context struct {
	FuncName string
	Token    lexer.Token
	Settings interface{}
}

// Handler turns a call's lowered mandatory and optional argument nodes
// into a single AST node. Optional arguments are passed in call order;
// an argument position with no value is represented by a nil entry (e.g.
// sqrt's single null optional index, spec.md §4.2.2).
type Handler func(ctx Context, mandatory, optional []ast.Node) (ast.Node, error)

// Spec pairs a Handler with the mandatory-argument count the Parser
// enforces before calling it. Arity of -1 means the Parser performs no
// arity check (named operators accept any number of call arguments,
// spec.md §4.2.2).
type Spec struct {
	Arity   int
	Handler Handler
}

// Registry is a read-only, name-indexed lookup table of Specs, matching
// the `handlers[name]` shape spec.md §4.4 describes.
type Registry struct {
	entries map[string]Spec
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Spec)}
}

// Register adds or replaces the Spec for name.
func (r *Registry) Register(name string, arity int, h Handler) {
	r.entries[name] = Spec{Arity: arity, Handler: h}
}

// Lookup returns the Spec registered for name. The Parser treats a
// missing entry as UnsupportedFunction.
func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.entries[name]
	return s, ok
}
