/*
File: mathnote/binding/clone.go

Deep-clone support for the binding environment. Every fixed core shape in
package ast is cloned field-by-field; a node produced by an external
handler (anything not one of the fixed shapes) is passed through as-is,
since the core cannot know how to clone a shape it doesn't own — callers
that bind handler output are responsible for that output already being
safe to share, or for handlers themselves being side-effect-free on their
inputs.
*/
package binding

import "github.com/mathnote/mathnote/ast"

// CloneSequence deep-clones every node in seq, stripping source locations
// along the way (spec.md §3 invariant 3).
func CloneSequence(seq []ast.Node) []ast.Node {
	if seq == nil {
		return nil
	}
	out := make([]ast.Node, len(seq))
	for i, n := range seq {
		out[i] = Clone(n)
	}
	return out
}

// Clone deep-clones a single node, stripping any source location.
func Clone(n ast.Node) ast.Node {
	switch v := n.(type) {
	case nil:
		return nil
	case *ast.Symbol:
		clone := *v
		clone.Loc = nil
		return &clone
	case *ast.OrdGroup:
		return &ast.OrdGroup{Body: CloneSequence(v.Body)}
	case *ast.SupSub:
		return &ast.SupSub{
			Base: Clone(v.Base),
			Sup:  Clone(v.Sup),
			Sub:  Clone(v.Sub),
		}
	case *ast.LeftRight:
		return &ast.LeftRight{
			Left:  v.Left,
			Right: v.Right,
			Body:  CloneSequence(v.Body),
		}
	case *ast.Text:
		return &ast.Text{Body: CloneSequence(v.Body)}
	case *ast.Styling:
		return &ast.Styling{Style: v.Style, Body: CloneSequence(v.Body)}
	case *ast.Array:
		return cloneArray(v)
	default:
		// Opaque handler output: not one of the fixed shapes this package
		// knows how to deep-clone. Returned unchanged.
		return n
	}
}

func cloneArray(v *ast.Array) *ast.Array {
	cols := make([]ast.Column, len(v.Cols))
	copy(cols, v.Cols)

	body := make([][]ast.Node, len(v.Body))
	for i, row := range v.Body {
		body[i] = CloneSequence(row)
	}

	rowGaps := make([]*float64, len(v.RowGaps))
	for i, g := range v.RowGaps {
		if g == nil {
			continue
		}
		gap := *g
		rowGaps[i] = &gap
	}

	hLines := make([][]string, len(v.HLinesBeforeRow))
	for i, l := range v.HLinesBeforeRow {
		cp := make([]string, len(l))
		copy(cp, l)
		hLines[i] = cp
	}

	return &ast.Array{
		Cols:            cols,
		Body:            body,
		RowGaps:         rowGaps,
		HLinesBeforeRow: hLines,
		ArrayStretch:    v.ArrayStretch,
	}
}
