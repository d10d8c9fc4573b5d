/*
File: mathnote/parser/cases.go

`cases` lowering (spec.md §4.2.4): its own cell/row separators (comma,
semicolon) instead of the generic comma-separated argument list, and a
fixed construction recipe into an array wrapped in a leftright.
*/
package parser

import (
	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/lexer"
)

// parseCasesCall parses the body of `cases(...)` with curr positioned at
// the first token after "(".
func (par *Parser) parseCasesCall(nameTok lexer.Token) (ast.Node, error) {
	if par.curr.Kind == lexer.Punctuation && par.curr.Text == ")" {
		if err := par.advance(); err != nil {
			return nil, err
		}
		return nil, newError(EmptyCases, nameTok, "cases() requires at least one row")
	}

	var rows [][]ast.Node
	var row []ast.Node

	for {
		seq, err := par.parseComparison(stopSet(",", ";", ")"))
		if err != nil {
			return nil, err
		}
		row = append(row, collapse(seq))

		switch {
		case par.curr.Kind == lexer.Punctuation && par.curr.Text == ",":
			if err := par.advance(); err != nil {
				return nil, err
			}

		case par.curr.Kind == lexer.Punctuation && par.curr.Text == ";":
			if err := par.advance(); err != nil {
				return nil, err
			}
			rows = append(rows, row)
			row = nil
			// Trailing semicolon: the empty row that would follow is dropped
			// (spec.md §4.2.4).
			if par.curr.Kind == lexer.Punctuation && par.curr.Text == ")" {
				if err := par.advance(); err != nil {
					return nil, err
				}
				return buildCasesArray(rows), nil
			}

		case par.curr.Kind == lexer.Punctuation && par.curr.Text == ")":
			rows = append(rows, row)
			if err := par.advance(); err != nil {
				return nil, err
			}
			return buildCasesArray(rows), nil

		default:
			return nil, newError(ExpectedToken, par.curr, "expected ',', ';', or ')' in cases()")
		}
	}
}

// buildCasesArray implements spec.md §4.2.4 steps 1-6.
func buildCasesArray(rows [][]ast.Node) ast.Node {
	maxCols := 0
	for _, r := range rows {
		if len(r) > maxCols {
			maxCols = len(r)
		}
	}

	cols := make([]ast.Column, maxCols)
	for i := range cols {
		cols[i] = ast.Column{Align: "l"}
	}
	if maxCols > 1 {
		cols[0].PostGap = 1.0
	}

	body := make([][]ast.Node, len(rows))
	for i, r := range rows {
		padded := make([]ast.Node, maxCols)
		for j := 0; j < maxCols; j++ {
			var cell ast.Node
			if j < len(r) {
				cell = r[j]
			} else {
				cell = &ast.OrdGroup{}
			}
			padded[j] = &ast.Styling{Style: "text", Body: []ast.Node{cell}}
		}
		body[i] = padded
	}

	rowGaps := make([]*float64, len(rows)-1)

	hLines := make([][]string, len(rows)+1)
	for i := range hLines {
		hLines[i] = []string{}
	}

	arr := &ast.Array{
		Cols:            cols,
		Body:            body,
		RowGaps:         rowGaps,
		HLinesBeforeRow: hLines,
		ArrayStretch:    1.2,
	}
	return &ast.LeftRight{Left: `\{`, Right: ".", Body: []ast.Node{arr}}
}
