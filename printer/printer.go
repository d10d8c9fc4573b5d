/*
Package printer renders a parsed AST sequence as an indented tree, the
way the teacher's PrintingVisitor (main/print_visitor.go) renders its own
interpreter tree: one line per node, children indented underneath.

File: mathnote/printer/printer.go

The teacher dispatches per concrete node type through a Visit* method per
type, because every one of its node types is a distinct Go type the
teacher owns. Here most of the tree is opaque past the handler boundary
(package handlers' CallNode is outside package ast on purpose), so a
type switch over ast.Node plays the role the teacher's visitor interface
played: it knows how to recurse into every shape the core owns and into
handlers.CallNode's arguments, and prints only Tag() for any other shape.
*/
package printer

import (
	"bytes"
	"fmt"

	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/handlers"
)

const indentSize = 2

// Printer accumulates a formatted tree rendering of an AST sequence.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// New returns a Printer ready to render nodes into.
func New() *Printer {
	return &Printer{}
}

// String returns the accumulated formatted output.
func (p *Printer) String() string {
	return p.buf.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.writeIndent()
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// PrintSequence renders every node in seq at the Printer's current
// indentation level.
func (p *Printer) PrintSequence(seq []ast.Node) {
	for _, n := range seq {
		p.Print(n)
	}
}

// Print renders a single node and, for the shapes package ast owns,
// recurses into its children one indent level deeper.
func (p *Printer) Print(node ast.Node) {
	if node == nil {
		p.line("<nil>")
		return
	}

	switch v := node.(type) {
	case *ast.Symbol:
		p.line("%s [text=%q mode=%s family=%s]", v.Tag(), v.Text, modeName(v.Mode), v.Family)

	case *ast.OrdGroup:
		p.line("ordgroup (%d children)", len(v.Body))
		p.descend(func() { p.PrintSequence(v.Body) })

	case *ast.SupSub:
		p.line("supsub")
		p.descend(func() {
			p.line("base:")
			p.descend(func() { p.Print(v.Base) })
			if v.Sup != nil {
				p.line("sup:")
				p.descend(func() { p.Print(v.Sup) })
			}
			if v.Sub != nil {
				p.line("sub:")
				p.descend(func() { p.Print(v.Sub) })
			}
		})

	case *ast.LeftRight:
		p.line("leftright [left=%q right=%q]", v.Left, v.Right)
		p.descend(func() { p.PrintSequence(v.Body) })

	case *ast.Text:
		p.line("text (%d children)", len(v.Body))
		p.descend(func() { p.PrintSequence(v.Body) })

	case *ast.Styling:
		p.line("styling [style=%s]", v.Style)
		p.descend(func() { p.PrintSequence(v.Body) })

	case *ast.Array:
		p.line("array [cols=%d rows=%d stretch=%v]", len(v.Cols), len(v.Body), v.ArrayStretch)
		p.descend(func() {
			for i, row := range v.Body {
				p.line("row %d:", i)
				p.descend(func() { p.PrintSequence(row) })
			}
		})

	case *handlers.CallNode:
		// CallNode is handler output, not a shape package ast owns — the
		// Parser never inspects it beyond Tag(), but a printer is a
		// downstream consumer and is free to know its fields.
		p.line("call %s (mandatory=%d optional=%d)", v.Tag(), len(v.Mandatory), len(v.Optional))
		p.descend(func() {
			if len(v.Mandatory) > 0 {
				p.line("mandatory:")
				p.descend(func() { p.PrintSequence(v.Mandatory) })
			}
			if len(v.Optional) > 0 {
				p.line("optional:")
				p.descend(func() { p.PrintSequence(v.Optional) })
			}
		})

	default:
		// Any other opaque handler output: print its tag only, since the
		// printer has no field knowledge of a shape it doesn't own.
		p.line("%s", node.Tag())
	}
}

func (p *Printer) descend(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func modeName(m ast.Mode) string {
	switch m {
	case ast.Math:
		return "math"
	case ast.Text:
		return "text"
	default:
		return "?"
	}
}

// Render is a convenience wrapper for the common case of rendering a
// whole parsed sequence to a string in one call.
func Render(seq []ast.Node) string {
	p := New()
	p.PrintSequence(seq)
	return p.String()
}
