/*
File: mathnote/parser/expr.go

The precedence ladder above postfix: unary, multiplicative (with
juxtaposition and fraction lowering), additive, comparison
(spec.md §4.2). Every level operates on and returns a flat []ast.Node
sequence, not a binary tree — concatenation is the AST shape here, the
same way an ordgroup's body is just a flat child list.
*/
package parser

import (
	"fmt"

	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/lexer"
)

// collapse implements the "Argument lowering" rule used throughout §4.2:
// a sequence of length 1 collapses to its single element; otherwise it
// becomes an ordgroup.
func collapse(seq []ast.Node) ast.Node {
	if len(seq) == 1 {
		return seq[0]
	}
	return &ast.OrdGroup{Body: seq}
}

// parseUnarySeq implements spec.md §4.2's unary level: an optional
// leading "+" (no-op, recurses) or "-" (emits a minus symbol followed by
// the body), otherwise a single postfix result.
func (par *Parser) parseUnarySeq(stop map[string]bool) ([]ast.Node, error) {
	if par.atStop(stop) {
		return nil, nil
	}

	if par.curr.Kind == lexer.Operator && par.curr.Text == "+" {
		if err := par.advance(); err != nil {
			return nil, err
		}
		return par.parseUnarySeq(stop)
	}

	if par.curr.Kind == lexer.Operator && par.curr.Text == "-" {
		minusTok := par.curr
		if err := par.advance(); err != nil {
			return nil, err
		}
		body, err := par.parseUnarySeq(stop)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, newError(ExpectedExpressionAfterOperator, minusTok, "expected an expression after unary '-'")
		}
		return append([]ast.Node{par.operatorSymbol("-")}, body...), nil
	}

	node, err := par.parsePostfix(stop)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	return []ast.Node{node}, nil
}

// parseMultiplicative implements "*", "/" (fraction lowering), and
// implicit juxtaposition (spec.md §4.2, §9).
func (par *Parser) parseMultiplicative(stop map[string]bool) ([]ast.Node, error) {
	left, err := par.parseUnarySeq(stop)
	if err != nil {
		return nil, err
	}

	for !par.atStop(stop) {
		switch {
		case par.curr.Kind == lexer.Operator && par.curr.Text == "*":
			opTok := par.curr
			if err := par.advance(); err != nil {
				return nil, err
			}
			rhs, err := par.parseUnarySeq(stop)
			if err != nil {
				return nil, err
			}
			if len(rhs) == 0 {
				return nil, newError(ExpectedExpressionAfterOperator, opTok, "expected an expression after '*'")
			}
			left = append(left, par.operatorSymbol("*"))
			left = append(left, rhs...)

		case par.curr.Kind == lexer.Operator && par.curr.Text == "/":
			opTok := par.curr
			if err := par.advance(); err != nil {
				return nil, err
			}
			rhs, err := par.parseUnarySeq(stop)
			if err != nil {
				return nil, err
			}
			if len(rhs) == 0 {
				return nil, newError(ExpectedExpressionAfterOperator, opTok, "expected a denominator after '/'")
			}
			fracNode, err := par.invokeHandler("frac", opTok, []ast.Node{collapse(left), collapse(rhs)}, nil)
			if err != nil {
				return nil, err
			}
			left = []ast.Node{fracNode}

		case par.canStartPrimary() && !par.atComparisonOp() && !par.atAdditiveOp():
			rhs, err := par.parseUnarySeq(stop)
			if err != nil {
				return nil, err
			}
			if len(rhs) == 0 {
				return left, nil
			}
			left = append(left, rhs...)

		default:
			return left, nil
		}
	}
	return left, nil
}

func (par *Parser) parseAdditive(stop map[string]bool) ([]ast.Node, error) {
	left, err := par.parseMultiplicative(stop)
	if err != nil {
		return nil, err
	}
	for !par.atStop(stop) && par.atAdditiveOp() {
		opTok := par.curr
		if err := par.advance(); err != nil {
			return nil, err
		}
		rhs, err := par.parseMultiplicative(stop)
		if err != nil {
			return nil, err
		}
		if len(rhs) == 0 {
			return nil, newError(ExpectedExpressionAfterOperator, opTok, fmt.Sprintf("expected an expression after '%s'", opTok.Text))
		}
		left = append(left, par.operatorSymbol(opTok.Text))
		left = append(left, rhs...)
	}
	return left, nil
}

func (par *Parser) parseComparison(stop map[string]bool) ([]ast.Node, error) {
	left, err := par.parseAdditive(stop)
	if err != nil {
		return nil, err
	}
	for !par.atStop(stop) && par.atComparisonOp() {
		opTok := par.curr
		if err := par.advance(); err != nil {
			return nil, err
		}
		rhs, err := par.parseAdditive(stop)
		if err != nil {
			return nil, err
		}
		if len(rhs) == 0 {
			return nil, newError(ExpectedExpressionAfterOperator, opTok, fmt.Sprintf("expected an expression after '%s'", opTok.Text))
		}
		left = append(left, par.operatorSymbol(opTok.Text))
		left = append(left, rhs...)
	}
	return left, nil
}
