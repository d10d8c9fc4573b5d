/*
File: mathnote/parser/postfix.go

Postfix attachments: at most one "^" and one "_" per base, in either order
(spec.md §4.2 "Postfix attachments").
*/
package parser

import (
	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/lexer"
)

// scriptStopTokens is the narrow stop set spec.md §4.2 requires for an
// unbraced script argument: "all operators, punctuation closers, and
// EOF".
var scriptStopTokens = stopSet(
	"+", "-", "*", "/", "^", "_", "=", "==", "!=", "<", "<=", ">", ">=",
	"->", "<-", "<->", "=>", "<=>", "!",
	")", "]", "}", ",", ";",
)

func (par *Parser) parsePostfix(stop map[string]bool) (ast.Node, error) {
	base, err := par.parsePrimary(stop)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}

	var sup, sub ast.Node
	for par.curr.Kind == lexer.Operator && (par.curr.Text == "^" || par.curr.Text == "_") && !stop[par.curr.Text] {
		isSup := par.curr.Text == "^"
		opTok := par.curr

		if isSup && sup != nil {
			return nil, newError(DoubleSuperscript, opTok, "a second '^' was attached to the same base")
		}
		if !isSup && sub != nil {
			return nil, newError(DoubleSubscript, opTok, "a second '_' was attached to the same base")
		}

		if err := par.advance(); err != nil { // consume "^" or "_"
			return nil, err
		}

		arg, err := par.parseScriptArgument()
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, newError(ExpectedScriptArgument, opTok, "expected an argument after '"+opTok.Text+"'")
		}

		if isSup {
			sup = arg
		} else {
			sub = arg
		}
	}

	if sup == nil && sub == nil {
		return base, nil
	}
	return &ast.SupSub{Base: base, Sup: sup, Sub: sub}, nil
}

// parseScriptArgument parses either a braced expression (stop set "{}")
// or a single unary-precedence expression under the narrow script stop
// set (spec.md §4.2).
func (par *Parser) parseScriptArgument() (ast.Node, error) {
	if par.curr.Kind == lexer.Punctuation && par.curr.Text == "{" {
		if err := par.advance(); err != nil {
			return nil, err
		}
		body, err := par.parseComparison(stopSet("}"))
		if err != nil {
			return nil, err
		}
		if err := par.expectPunctuation("}"); err != nil {
			return nil, err
		}
		if err := par.advance(); err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, nil
		}
		return collapse(body), nil
	}

	seq, err := par.parseUnarySeq(scriptStopTokens)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}
	return collapse(seq), nil
}
