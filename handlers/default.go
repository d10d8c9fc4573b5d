/*
File: mathnote/handlers/default.go

A ready-to-use Registry covering every call name the Parser's lowering
table can dispatch to a handler (spec.md §4.2.2, §6): frac, sqrt (which
also backs root; there is no separate root entry), the accent kinds, and
the named operators. Built the same way the
teacher builds its builtin table (objects/builtins.go): a package-level
list, registered once.
*/
package handlers

import (
	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/symbols"
)

type registration struct {
	name    string
	arity   int
	handler Handler
}

var defaultRegistrations = buildDefaultRegistrations()

func buildDefaultRegistrations() []registration {
	regs := []registration{
		{"frac", 2, fracHandler},
		{"sqrt", 1, sqrtHandler},
	}
	for _, kind := range []string{
		"hat", "bar", "tilde", "dot", "ddot", "vec",
		"overline", "underline", "acute", "grave", "check", "breve",
	} {
		regs = append(regs, registration{kind, 1, accentHandler(kind)})
	}
	for name := range symbols.NamedOperators {
		regs = append(regs, registration{name, -1, namedOperatorHandler(name)})
	}
	return regs
}

// NewDefaultRegistry builds a fresh Registry containing every default
// handler. Each parse gets its own Registry instance (Parser instances
// are not shareable across inputs, spec.md §5), but the handler functions
// themselves are stateless and safely shared.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, reg := range defaultRegistrations {
		r.Register(reg.name, reg.arity, reg.handler)
	}
	return r
}

func fracHandler(_ Context, mandatory, _ []ast.Node) (ast.Node, error) {
	return &CallNode{Name: `\frac`, Mandatory: mandatory}, nil
}

// sqrtHandler backs both the bare `sqrt(radicand)` call, which the Parser
// pairs with a single nil optional index, and `root(index, radicand)`,
// which the Parser re-shapes into the same (radicand, optional index)
// call before invoking this handler (spec.md §4.2.2).
func sqrtHandler(_ Context, mandatory, optional []ast.Node) (ast.Node, error) {
	return &CallNode{Name: `\sqrt`, Mandatory: mandatory, Optional: optional}, nil
}

// accentHandler returns a Handler that wraps its single mandatory argument
// as the named accent call (spec.md §4.2.2 accent short-forms, §6 accent
// kinds accepted by accent(base, kind)).
func accentHandler(kind string) Handler {
	return func(_ Context, mandatory, _ []ast.Node) (ast.Node, error) {
		return &CallNode{Name: `\` + kind, Mandatory: mandatory}, nil
	}
}

// namedOperatorHandler returns a Handler producing the op-tagged symbol
// for name. The Parser calls this both for a bare identifier use (empty
// argument list, spec.md §4.2.1 rule 4) and for a parenthesised call,
// where the Parser itself assembles the surrounding ordgroup with the
// parenthesised arguments (spec.md §4.2.2).
func namedOperatorHandler(name string) Handler {
	return func(ctx Context, _, _ []ast.Node) (ast.Node, error) {
		return &ast.Symbol{Kind: "op", Text: `\` + name, Mode: ast.Math}, nil
	}
}
