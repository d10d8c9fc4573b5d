/*
File: mathnote/parser/identifier.go

Identifier lowering (spec.md §4.2.1): the six-rule dispatch that decides
whether a just-consumed identifier becomes a call, a binding substitution,
a named symbol, a named operator, a single symbol, or a split multi-letter
ordgroup.
*/
package parser

import (
	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/lexer"
	"github.com/mathnote/mathnote/symbols"
)

func (par *Parser) parseIdentifierPrimary() (ast.Node, error) {
	nameTok := par.curr
	name := par.curr.Text
	if err := par.advance(); err != nil {
		return nil, err
	}

	// Rule 1: a call.
	if par.curr.Kind == lexer.Punctuation && par.curr.Text == "(" {
		return par.parseCall(name, nameTok)
	}

	// Rule 2: a bound identifier — substitute the already-cloned stored
	// sequence (spec.md §3 invariant 3, §9).
	if seq, ok := par.env.Lookup(name); ok {
		par.expansions++
		if par.settings.MaxExpand > 0 && par.expansions > par.settings.MaxExpand {
			return nil, newError(ExpansionLimitExceeded, nameTok, "let-substitution limit exceeded")
		}
		return collapse(seq), nil
	}

	// Rule 3: a known named symbol (Greek letters, oo/infty).
	if e, ok := symbols.Lookup(par.mode, name); ok {
		return symbols.ToNode(par.mode, e.Text, e), nil
	}

	// Rule 4: a known named operator, called with no arguments.
	if symbols.IsNamedOperator(name) {
		return par.invokeHandler(name, nameTok, nil, nil)
	}

	// Rule 5: a single character.
	runes := []rune(name)
	if len(runes) == 1 {
		return par.symbolNode(name, nameTok)
	}

	// Rule 6: split into per-character symbol nodes.
	body := make([]ast.Node, 0, len(runes))
	for _, r := range runes {
		node, err := par.symbolNode(string(r), nameTok)
		if err != nil {
			return nil, err
		}
		body = append(body, node)
	}
	return &ast.OrdGroup{Body: body}, nil
}
