/*
Package parser implements the precedence-climbing recursive-descent parser
that lowers math-notation source into a typeset AST.

File: mathnote/parser/parser.go

Unlike the teacher's Pratt parser (map of token type -> parse function,
Errors []string accumulated across the whole parse), this Parser is a
fixed ladder of precedence levels (spec.md §4.2) and fails fast: the first
error aborts the parse and is returned to the caller immediately. The
lookahead discipline — CurrToken/NextToken via advance() — is kept from
the teacher; so is the overall shape of New priming the lookahead by
advancing twice before Parse begins.
*/
package parser

import (
	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/binding"
	"github.com/mathnote/mathnote/handlers"
	"github.com/mathnote/mathnote/lexer"
	"github.com/mathnote/mathnote/settings"
)

// Parser holds all state for a single parse call. It is not reusable
// across inputs (spec.md §5: "Parser instances are not shareable or
// reusable across inputs").
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token
	next lexer.Token

	mode ast.Mode

	env      *binding.Environment
	handlers *handlers.Registry
	settings settings.Settings

	// expansions counts `let` substitutions performed so far, checked
	// against settings.MaxExpand (spec.md §6, SPEC_FULL.md §0).
	expansions int
}

// New creates a Parser over src, ready to call Parse on. Lookahead is
// primed immediately so curr/next are both valid before any parsing
// function runs.
func New(src string, st settings.Settings, reg *handlers.Registry) (*Parser, error) {
	par := &Parser{
		lex:      lexer.New(src),
		mode:     ast.Math,
		env:      binding.New(),
		handlers: reg,
		settings: st,
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	return par, nil
}

// Parse runs the top-level grammar (spec.md §4.2 "Top level"): a
// semicolon-separated statement list, returning the AST sequence produced
// by the last expression statement. The entire input must be consumed;
// any lookahead survived past the final EOF consumption is a bug, not a
// user-facing condition, so Parse enforces EOF once at the very end.
func Parse(input string, st settings.Settings, reg *handlers.Registry) ([]ast.Node, error) {
	par, err := New(input, st, reg)
	if err != nil {
		return nil, err
	}
	return par.parseProgram()
}

func (par *Parser) parseProgram() ([]ast.Node, error) {
	var result []ast.Node

	for !par.atEOF() {
		isLet, err := par.atLetKeyword()
		if err != nil {
			return nil, err
		}

		if isLet {
			if err := par.parseLetStatement(); err != nil {
				return nil, err
			}
		} else {
			nodes, err := par.parseExpressionStatement()
			if err != nil {
				return nil, err
			}
			result = nodes
		}

		if par.atEOF() {
			break
		}
		if !par.currIs(lexer.Punctuation, ";") {
			return nil, newError(ExpectedSemicolonOrEnd, par.curr, "expected ';' or end of input between statements")
		}
		if err := par.advance(); err != nil {
			return nil, err
		}
	}

	if err := par.expectEOF(); err != nil {
		return nil, err
	}
	return result, nil
}

// atLetKeyword reports whether the current token is the identifier "let"
// starting a binding statement. `let` is recognised by comparing the
// identifier text after the fact (spec.md §9: "the let keyword is
// recognised by comparing the identifier text after the fact"), not as a
// reserved lexer keyword.
func (par *Parser) atLetKeyword() (bool, error) {
	return par.curr.Kind == lexer.Identifier && par.curr.Text == "let", nil
}

func (par *Parser) parseLetStatement() error {
	if err := par.advance(); err != nil { // consume "let"
		return err
	}
	if par.curr.Kind != lexer.Identifier {
		return newError(ExpectedIdentifierAfterLet, par.curr, "expected an identifier after 'let'")
	}
	name := par.curr.Text
	if err := par.advance(); err != nil { // consume the identifier
		return err
	}
	if err := par.expectOperator("="); err != nil {
		return err
	}
	if err := par.advance(); err != nil { // consume "="
		return err
	}

	body, err := par.parseComparison(stopSet(";"))
	if err != nil {
		return err
	}
	par.env.Bind(name, body)
	return nil
}

func (par *Parser) parseExpressionStatement() ([]ast.Node, error) {
	return par.parseComparison(stopSet(";"))
}

// stopSet builds a set of punctuation/operator literals that terminate the
// current grammar level, mirroring the `stopTokens` parameter spec.md §4.2
// threads through every precedence level.
func stopSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func (par *Parser) atEOF() bool {
	return par.curr.IsEOF()
}

func (par *Parser) atStop(stop map[string]bool) bool {
	return par.atEOF() || stop[par.curr.Text]
}

// currIs reports whether the current token matches kind and literal text.
func (par *Parser) currIs(kind lexer.Kind, text string) bool {
	return par.curr.Kind == kind && par.curr.Text == text
}

func (par *Parser) expectOperator(text string) error {
	if !par.currIs(lexer.Operator, text) {
		return newError(ExpectedToken, par.curr, "expected operator '"+text+"'")
	}
	return nil
}

func (par *Parser) expectPunctuation(text string) error {
	if !par.currIs(lexer.Punctuation, text) {
		return newError(ExpectedToken, par.curr, "expected '"+text+"'")
	}
	return nil
}

// expectEOF is the Parser's only sanctioned way to consume the EOF
// sentinel (spec.md §3 invariant 5).
func (par *Parser) expectEOF() error {
	if !par.curr.IsEOF() {
		return newError(UnexpectedEnd, par.curr, "expected end of input")
	}
	return nil
}

// advance moves the lookahead window forward by one token: curr becomes
// next, and a fresh token is lexed into next. This mirrors the teacher's
// two-token lookahead (CurrToken/NextToken via advance()), adapted to
// surface lexer errors instead of panicking.
func (par *Parser) advance() error {
	par.curr = par.next
	tok, err := par.lex.Lex()
	if err != nil {
		return err
	}
	par.next = tok
	return nil
}
