/*
Package ast defines the tagged AST node family the parser emits.

File: mathnote/ast/node.go

Every node is a tagged variant over a fixed set of shapes (spec.md §3).
The core only ever constructs the shapes defined in this file directly;
anything a handler in package handlers returns is also a Node (handlers
import this package and build whatever shape downstream layout builders
expect), but the core treats that output opaquely — it never inspects the
fields of a handler's result, only holds and forwards it.
*/
package ast

import "github.com/mathnote/mathnote/lexer"

// Mode is the typesetting mode a leaf node was produced in. Every leaf
// carries the Parser's current mode at the point it was emitted
// (spec.md §3 invariant 1).
type Mode string

const (
	Math Mode = "math"
	Text Mode = "text"
)

// Node is the base interface every AST shape implements. Tag identifies
// which of the fixed shapes (or, for handler output, which external shape)
// a value is; callers that only care about the fixed core shapes can type
// switch on the concrete type instead.
type Node interface {
	Tag() string
}

// Symbol is a single-symbol leaf: textord, mathord, or atom{family}
// (spec.md §3). Family is only meaningful when Kind == "atom"; it is the
// atom family name the symbol table returned (ordinary/op/bin/rel/open/
// close/punct, spec.md §4.3 and the GLOSSARY).
type Symbol struct {
	Kind   string // "textord", "mathord", "atom", or another tag the symbol table returned (e.g. "op")
	Family string
	Text   string
	Mode   Mode
	Loc    *lexer.SourceLocation
}

func (s *Symbol) Tag() string { return s.Kind }

// OrdGroup is an ordered sequence of child nodes treated as one semantic
// unit (spec.md §3). Delimiters, when the group is visible (parenthesized
// or bracketed primaries), are ordinary Symbol children at the front and
// back of Body — there is no separate delimiter field.
type OrdGroup struct {
	Body []Node
}

func (*OrdGroup) Tag() string { return "ordgroup" }

// SupSub is an attachment node: a base with an optional superscript and/or
// subscript. It is only ever constructed when at least one of Sup/Sub is
// non-nil (spec.md §3 invariant 2).
type SupSub struct {
	Base Node
	Sup  Node
	Sub  Node
}

func (*SupSub) Tag() string { return "supsub" }

// LeftRight is a paired-delimiter group: \abs{}, \norm{}, \floor{},
// \ceil{}, and the outer wrapper around a `cases` array (spec.md §4.2.2,
// §4.2.4).
type LeftRight struct {
	Left  string
	Right string
	Body  []Node
}

func (*LeftRight) Tag() string { return "leftright" }

// Text is a run of literal text-mode characters, produced from a string
// literal. Body holds one Symbol{Kind: "textord", Mode: Text} per
// character (spec.md §3, §4.2 primary dispatch).
type Text struct {
	Body []Node
}

func (*Text) Tag() string { return "text" }

// Styling wraps a single cell's body with a named style — used for every
// cell of a `cases` array (spec.md §4.2.4 step 4).
type Styling struct {
	Style string
	Body  []Node
}

func (*Styling) Tag() string { return "styling" }

// Column is one column definition of an Array: its horizontal alignment
// and the gap before/after it. `cases` always produces left-aligned
// columns (spec.md §4.2.4 step 2).
type Column struct {
	Align   string // always "l" for cases (spec.md §4.2.4)
	PreGap  float64
	PostGap float64
}

// Array is a grid of cells, used for `cases` inside a LeftRight
// (spec.md §3, §4.2.4).
type Array struct {
	Cols            []Column
	Body            [][]Node
	RowGaps         []*float64
	HLinesBeforeRow [][]string
	ArrayStretch    float64
}

func (*Array) Tag() string { return "array" }
