/*
File: mathnote/parser/call.go

Call lowering (spec.md §4.2.2): argument-list parsing, the per-name
dispatch table, and the invokeHandler bridge into package handlers
(spec.md §4.4).
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/mathnote/mathnote/ast"
	"github.com/mathnote/mathnote/handlers"
	"github.com/mathnote/mathnote/lexer"
	"github.com/mathnote/mathnote/symbols"
)

// delimiterPairs backs the abs/norm/floor/ceil rows of the call-lowering
// table (spec.md §4.2.2): these are emitted directly as leftright nodes,
// not routed through a handler.
var delimiterPairs = map[string][2]string{
	"abs":   {"|", "|"},
	"norm":  {`\|`, `\|`},
	"floor": {`\lfloor`, `\rfloor`},
	"ceil":  {`\lceil`, `\rceil`},
}

// parseCall parses `name(arg, …)` having already consumed name and with
// the current token positioned at "(", then dispatches per
// spec.md §4.2.2's table.
func (par *Parser) parseCall(name string, nameTok lexer.Token) (ast.Node, error) {
	if err := par.advance(); err != nil { // consume "("
		return nil, err
	}

	if name == "cases" {
		return par.parseCasesCall(nameTok)
	}

	args, err := par.parseArgList()
	if err != nil {
		return nil, err
	}

	switch {
	case name == "frac":
		return par.invokeHandler("frac", nameTok, args, nil)

	case name == "sqrt":
		if len(args) != 1 {
			return nil, newError(ArityMismatch, nameTok, fmt.Sprintf("sqrt: expected 1 argument, got %d", len(args)))
		}
		return par.invokeHandler("sqrt", nameTok, args, []ast.Node{nil})

	case name == "root":
		if len(args) != 2 {
			return nil, newError(ArityMismatch, nameTok, fmt.Sprintf("root: expected 2 arguments, got %d", len(args)))
		}
		index, radicand := args[0], args[1]
		return par.invokeHandler("sqrt", nameTok, []ast.Node{radicand}, []ast.Node{index})

	case name == "accent":
		return par.parseAccentCall(nameTok, args)

	case symbols.IsAccentShortForm(name):
		if len(args) != 1 {
			return nil, newError(ArityMismatch, nameTok, fmt.Sprintf("%s: expected 1 argument, got %d", name, len(args)))
		}
		return par.invokeHandler(name, nameTok, args, nil)

	case delimiterPairs[name] != [2]string{}:
		if len(args) != 1 {
			return nil, newError(ArityMismatch, nameTok, fmt.Sprintf("%s: expected 1 argument, got %d", name, len(args)))
		}
		pair := delimiterPairs[name]
		return &ast.LeftRight{Left: pair[0], Right: pair[1], Body: []ast.Node{args[0]}}, nil

	case symbols.IsNamedOperator(name):
		opNode, err := par.invokeHandler(name, nameTok, nil, nil)
		if err != nil {
			return nil, err
		}
		return &ast.OrdGroup{Body: []ast.Node{opNode, par.parenthesizedArgsNode(args)}}, nil

	default:
		return par.fallbackCallNode(name, nameTok, args)
	}
}

// parseArgList parses the comma-separated argument list and consumes the
// closing ")"; trailing commas are rejected, an empty list is permitted
// (spec.md §4.2.2).
func (par *Parser) parseArgList() ([]ast.Node, error) {
	var args []ast.Node

	if par.curr.Kind == lexer.Punctuation && par.curr.Text == ")" {
		if err := par.advance(); err != nil {
			return nil, err
		}
		return args, nil
	}

	for {
		seq, err := par.parseComparison(stopSet(",", ")"))
		if err != nil {
			return nil, err
		}
		args = append(args, collapse(seq))

		if par.curr.Kind == lexer.Punctuation && par.curr.Text == "," {
			commaTok := par.curr
			if err := par.advance(); err != nil {
				return nil, err
			}
			if par.curr.Kind == lexer.Punctuation && par.curr.Text == ")" {
				return nil, newError(ExpectedToken, commaTok, "trailing comma is not allowed in an argument list")
			}
			continue
		}
		break
	}

	if err := par.expectPunctuation(")"); err != nil {
		return nil, err
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	return args, nil
}

// parenthesizedArgsNode assembles `( a1, a2, … )` as an ordgroup, used by
// both the named-operator and fallback call rows of the lowering table
// (spec.md §4.2.2).
func (par *Parser) parenthesizedArgsNode(args []ast.Node) ast.Node {
	body := make([]ast.Node, 0, len(args)*2+1)
	body = append(body, par.fixedPunctuationSymbol("("))
	for i, a := range args {
		if i > 0 {
			body = append(body, par.fixedPunctuationSymbol(","))
		}
		body = append(body, a)
	}
	body = append(body, par.fixedPunctuationSymbol(")"))
	return &ast.OrdGroup{Body: body}
}

// fallbackCallNode implements the "anything else" row: ordgroup{
// name-as-symbols, parenthesised args } (spec.md §4.2.2).
func (par *Parser) fallbackCallNode(name string, nameTok lexer.Token, args []ast.Node) (ast.Node, error) {
	var nameNode ast.Node
	runes := []rune(name)
	if len(runes) == 1 {
		node, err := par.symbolNode(name, nameTok)
		if err != nil {
			return nil, err
		}
		nameNode = node
	} else {
		body := make([]ast.Node, 0, len(runes))
		for _, r := range runes {
			node, err := par.symbolNode(string(r), nameTok)
			if err != nil {
				return nil, err
			}
			body = append(body, node)
		}
		nameNode = &ast.OrdGroup{Body: body}
	}
	return &ast.OrdGroup{Body: []ast.Node{nameNode, par.parenthesizedArgsNode(args)}}, nil
}

// parseAccentCall implements `accent(base, kind)`: arg2 must reduce to
// plain text, then the resolved kind dispatches to its handler with
// base as the sole mandatory argument (spec.md §4.2.2, §4.2.3, §6).
func (par *Parser) parseAccentCall(nameTok lexer.Token, args []ast.Node) (ast.Node, error) {
	if len(args) != 2 {
		return nil, newError(ArityMismatch, nameTok, fmt.Sprintf("accent: expected 2 arguments, got %d", len(args)))
	}
	base, kindArg := args[0], args[1]

	kindText, ok := plainText(kindArg)
	if !ok {
		return nil, newError(AccentKindMustBeText, nameTok, "accent's second argument must reduce to plain text")
	}
	canonical, ok := symbols.ResolveAccentKind(kindText)
	if !ok {
		return nil, newError(UnsupportedAccent, nameTok, "unknown accent kind '"+kindText+"'")
	}
	return par.invokeHandler(canonical, nameTok, []ast.Node{base}, nil)
}

// plainText implements spec.md §4.2.3's plain-text extraction: a node
// sequence (here, an already-collapsed single node) reduces to plain text
// if every node is a textord/mathord/atom leaf, an ordgroup of such, or a
// text node whose body is exclusively textord.
func plainText(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.Symbol:
		switch v.Kind {
		case "textord", "mathord", "atom":
			return v.Text, true
		}
		return "", false
	case *ast.OrdGroup:
		var sb strings.Builder
		for _, child := range v.Body {
			s, ok := plainText(child)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
		return sb.String(), true
	case *ast.Text:
		var sb strings.Builder
		for _, child := range v.Body {
			sym, ok := child.(*ast.Symbol)
			if !ok || sym.Kind != "textord" {
				return "", false
			}
			sb.WriteString(sym.Text)
		}
		return sb.String(), true
	default:
		return "", false
	}
}

// invokeHandler is the Parser's only way to reach package handlers
// (spec.md §4.4). A missing registry entry fails with UnsupportedFunction;
// an arity mismatch against the registered Spec fails with ArityMismatch,
// both carrying the call-site token.
func (par *Parser) invokeHandler(name string, callTok lexer.Token, mandatory, optional []ast.Node) (ast.Node, error) {
	spec, ok := par.handlers.Lookup(name)
	if !ok {
		return nil, newError(UnsupportedFunction, callTok, "no handler registered for '"+name+"'")
	}
	if spec.Arity >= 0 && len(mandatory) != spec.Arity {
		return nil, newError(ArityMismatch, callTok, fmt.Sprintf("%s: expected %d arguments, got %d", name, spec.Arity, len(mandatory)))
	}
	ctx := handlers.Context{FuncName: name, Token: callTok, Settings: par.settings}
	return spec.Handler(ctx, mandatory, optional)
}
