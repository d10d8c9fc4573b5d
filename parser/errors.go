/*
File: mathnote/parser/errors.go

The fail-fast error model from spec.md §7. Unlike the teacher's
Parser.Errors []string (which accumulates and keeps going), every error
here aborts the parse immediately: there is no resync / "try to continue"
policy, by design of the source spec, not as an afterthought.
*/
package parser

import (
	"fmt"

	"github.com/mathnote/mathnote/lexer"
)

// ErrorKind enumerates every structural/grammar/binding/call failure the
// Parser can report, grouped the way spec.md §7 groups them.
type ErrorKind string

const (
	// Structural
	ExpectedToken          ErrorKind = "ExpectedToken"
	ExpectedSemicolonOrEnd ErrorKind = "ExpectedSemicolonOrEnd"
	UnexpectedEnd          ErrorKind = "UnexpectedEnd"

	// Grammar
	DoubleSuperscript               ErrorKind = "DoubleSuperscript"
	DoubleSubscript                 ErrorKind = "DoubleSubscript"
	ExpectedScriptArgument          ErrorKind = "ExpectedScriptArgument"
	ExpectedExpressionAfterOperator ErrorKind = "ExpectedExpressionAfterOperator"

	// Binding
	ExpectedIdentifierAfterLet ErrorKind = "ExpectedIdentifierAfterLet"
	ExpansionLimitExceeded     ErrorKind = "ExpansionLimitExceeded"

	// Symbol table (only reachable with Settings.Strict)
	UnknownSymbol ErrorKind = "UnknownSymbol"

	// Call
	ArityMismatch        ErrorKind = "ArityMismatch"
	UnsupportedFunction  ErrorKind = "UnsupportedFunction"
	UnsupportedAccent    ErrorKind = "UnsupportedAccent"
	AccentKindMustBeText ErrorKind = "AccentKindMustBeText"
	EmptyCases           ErrorKind = "EmptyCases"
)

// Error is the single failure value a parse can produce: a message, the
// offending token, and that token's offset range (spec.md §7: "A single
// failure value carrying (message, token, offset range)").
type Error struct {
	Kind  ErrorKind
	Token lexer.Token
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Token.Loc.Start, e.Token.Loc.End, e.Msg)
}

func newError(kind ErrorKind, tok lexer.Token, msg string) *Error {
	return &Error{Kind: kind, Token: tok, Msg: msg}
}
