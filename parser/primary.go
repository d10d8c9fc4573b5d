/*
File: mathnote/parser/primary.go

Primary dispatch (spec.md §4.2 "Primary dispatch") and the handful of
small predicates the higher precedence levels (parser/expr.go) need to
decide whether a token can start a primary at all.
*/
package parser

import (
	"strconv"

	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/lexer"
	"github.com/mathnote/mathnote/symbols"
)

// nonPrefixOperators is the set spec.md §4.2 says a bare primary dispatch
// must refuse to consume, leaving them for the level above to recognise
// as an actual operator.
var nonPrefixOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "^": true, "_": true,
	"=": true, "==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

var comparisonOperators = map[string]bool{
	"=": true, "==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"->": true, "<-": true, "<->": true, "=>": true, "<=>": true,
}

var additiveOperators = map[string]bool{"+": true, "-": true}

func (par *Parser) atComparisonOp() bool {
	return par.curr.Kind == lexer.Operator && comparisonOperators[par.curr.Text]
}

func (par *Parser) atAdditiveOp() bool {
	return par.curr.Kind == lexer.Operator && additiveOperators[par.curr.Text]
}

// canStartPrimary is the juxtaposition guard from spec.md §9: "The
// conservative set {identifier, number, string, (, [, {} is the correct
// guard" against misreading a dangling closing delimiter as an operand.
func (par *Parser) canStartPrimary() bool {
	switch par.curr.Kind {
	case lexer.Identifier, lexer.Number, lexer.String:
		return true
	case lexer.Punctuation:
		return par.curr.Text == "(" || par.curr.Text == "[" || par.curr.Text == "{"
	}
	return false
}

// normalizeDelimiter applies spec.md §4.2's delimiter normalisation:
// "{" -> "\{", "}" -> "\}"; everything else passes through unchanged.
func normalizeDelimiter(text string) string {
	switch text {
	case "{":
		return `\{`
	case "}":
		return `\}`
	default:
		return text
	}
}

// operatorSymbol builds the AST leaf for an operator token consumed at the
// multiplicative ("*"), additive, or comparison levels (or a synthesised
// unary minus), consulting
// the symbol table first and falling back to a bare rendered symbol.
func (par *Parser) operatorSymbol(text string) ast.Node {
	rendered := symbols.RenderOperator(text)
	if e, ok := symbols.Lookup(par.mode, text); ok {
		return symbols.ToNode(par.mode, rendered, e)
	}
	return &ast.Symbol{Kind: "atom", Family: "bin", Text: rendered, Mode: par.mode}
}

// parsePrimary implements spec.md §4.2's primary dispatch table. A nil,
// nil result means "nothing here" (closing delimiter or non-prefix
// operator) — the caller's level/stop logic decides what that means.
func (par *Parser) parsePrimary(stop map[string]bool) (ast.Node, error) {
	if par.atStop(stop) {
		return nil, nil
	}

	switch par.curr.Kind {
	case lexer.Identifier:
		return par.parseIdentifierPrimary()
	case lexer.Number:
		node := &ast.Symbol{Kind: "textord", Text: par.curr.Text, Mode: par.mode}
		if err := par.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case lexer.String:
		return par.parseStringPrimary()
	case lexer.Punctuation:
		switch par.curr.Text {
		case "(":
			return par.parseVisibleGroup("(", ")")
		case "[":
			return par.parseVisibleGroup("[", "]")
		case "{":
			return par.parseBraceGroup()
		case ")", "]", "}":
			return nil, nil
		}
		return par.parseSymbolLiteral()
	case lexer.Operator:
		if nonPrefixOperators[par.curr.Text] {
			return nil, nil
		}
		return par.parseSymbolLiteral()
	}
	return nil, nil
}

// symbolNode consults the symbol table for text in the Parser's current
// mode, falling back to textord{text} on a miss (spec.md §4.3). With
// Settings.Strict set, a miss is reported as UnknownSymbol instead of
// falling back (see settings.Settings.Strict).
func (par *Parser) symbolNode(text string, tok lexer.Token) (ast.Node, error) {
	if e, ok := symbols.Lookup(par.mode, text); ok {
		return symbols.ToNode(par.mode, text, e), nil
	}
	if par.settings.Strict {
		return nil, newError(UnknownSymbol, tok, "no symbol table entry for '"+text+"'")
	}
	return symbols.Fallback(par.mode, text), nil
}

// fixedPunctuationSymbol looks up a punctuation glyph the Parser itself
// synthesises (call-argument parens/commas), not one read from user
// input — Strict only governs symbols reachable from source text, so
// this bypasses it rather than threading a token that could never
// actually produce an error.
func (par *Parser) fixedPunctuationSymbol(text string) ast.Node {
	if e, ok := symbols.Lookup(par.mode, text); ok {
		return symbols.ToNode(par.mode, text, e)
	}
	return symbols.Fallback(par.mode, text)
}

// parseSymbolLiteral handles spec.md §4.2's catch-all: "Any other
// punctuation/operator token: consume and emit a symbol node for the
// literal text."
func (par *Parser) parseSymbolLiteral() (ast.Node, error) {
	tok := par.curr
	text := tok.Text
	if err := par.advance(); err != nil {
		return nil, err
	}
	return par.symbolNode(text, tok)
}

func (par *Parser) parseStringPrimary() (ast.Node, error) {
	text := par.curr.Text
	if err := par.advance(); err != nil {
		return nil, err
	}
	body := make([]ast.Node, 0, len(text))
	for _, r := range text {
		body = append(body, &ast.Symbol{Kind: "textord", Text: string(r), Mode: ast.Text})
	}
	return &ast.Text{Body: body}, nil
}

// parseVisibleGroup parses "(" … ")" or "[" … "]": the delimiters stay in
// the output as symbol nodes at both ends of the ordgroup (spec.md §4.2:
// "These are visible groups — the brackets stay in the output").
func (par *Parser) parseVisibleGroup(open, close string) (ast.Node, error) {
	openTok := par.curr
	if err := par.advance(); err != nil {
		return nil, err
	}
	inner, err := par.parseComparison(stopSet(close))
	if err != nil {
		return nil, err
	}
	if err := par.expectPunctuation(close); err != nil {
		return nil, newError(ExpectedToken, par.curr, "expected closing '"+close+"' opened at offset "+strconv.Itoa(openTok.Loc.Start))
	}
	if err := par.advance(); err != nil {
		return nil, err
	}

	body := make([]ast.Node, 0, len(inner)+2)
	body = append(body, par.delimiterSymbol(open))
	body = append(body, inner...)
	body = append(body, par.delimiterSymbol(close))
	return &ast.OrdGroup{Body: body}, nil
}

func (par *Parser) delimiterSymbol(text string) ast.Node {
	if e, ok := symbols.Lookup(par.mode, text); ok {
		return symbols.ToNode(par.mode, normalizeDelimiter(text), e)
	}
	return symbols.Fallback(par.mode, normalizeDelimiter(text))
}

// parseBraceGroup parses "{" … "}" as semantic grouping only — no visible
// delimiter symbols (spec.md §4.2).
func (par *Parser) parseBraceGroup() (ast.Node, error) {
	if err := par.advance(); err != nil { // consume "{"
		return nil, err
	}
	inner, err := par.parseComparison(stopSet("}"))
	if err != nil {
		return nil, err
	}
	if err := par.expectPunctuation("}"); err != nil {
		return nil, err
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	return &ast.OrdGroup{Body: inner}, nil
}
