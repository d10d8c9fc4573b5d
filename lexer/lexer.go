/*
Package lexer turns a math-notation source string into a token stream.

File: mathnote/lexer/lexer.go

The Lexer is single-token lookahead: each call to Lex returns exactly one
token and advances the read position. It is stateful (Pos) and holds a
reference to the entire input, which is expected to already be resident in
memory — there is no streaming/incremental mode (spec.md §5).
*/
package lexer

import "unicode/utf8"

// multiCharOperators are tried longest-first. The ordering here is the
// ordering from spec.md §4.1 rule 4 and happens to already be
// longest-match-safe: every 3-byte operator is listed before any 2-byte
// operator it could be confused with ("<=>" before "<=", "<->" before
// "<-").
var multiCharOperators = []string{
	"<=>", "<->",
	"=>", "->", "<-", "<=", ">=", "!=", "==",
}

// singleCharOperators is the rule-5 set from spec.md §4.1.
//
// Note: unlike a literal reading of rule 1's "[A-Za-z_]" identifier
// classes, '_' is neither an identifier-start nor an identifier-continue
// byte here (see isIdentStart/isIdentCont). If it were, "x_1" would lex as
// the single identifier "x_1", and the worked example in spec.md §8
// ("x_1^2 + y" lowering to a supsub with sub 1, sup 2) would be
// unreachable: the postfix rule needs a standalone "_" token to introduce
// the subscript. '_' therefore always lexes as its own operator token.
const singleCharOperators = "+-*/^_=<>!"

const punctuationChars = ",:;.()[]{}|"

// Lexer performs lexical analysis over a math-notation source string. It
// holds the entire input and a single cursor; every byte is visited at
// most once across the lifetime of a Lexer.
type Lexer struct {
	Input string
	Pos   int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{Input: src}
}

func (lx *Lexer) len() int { return len(lx.Input) }

func (lx *Lexer) atEnd() bool { return lx.Pos >= lx.len() }

func (lx *Lexer) byteAt(offset int) byte {
	p := lx.Pos + offset
	if p < 0 || p >= lx.len() {
		return 0
	}
	return lx.Input[p]
}

func (lx *Lexer) current() byte { return lx.byteAt(0) }

func (lx *Lexer) loc(start int) SourceLocation {
	return SourceLocation{Start: start, End: lx.Pos, Input: lx.Input}
}

// Lex returns the next token in the stream. Past the end of input it keeps
// returning an EOF token at the final position (idempotent), as required
// by spec.md §4.1.
func (lx *Lexer) Lex() (Token, error) {
	if err := lx.skipTrivia(); err != nil {
		return Token{}, err
	}

	start := lx.Pos
	if lx.atEnd() {
		return Token{Text: "", Kind: EOF, Loc: lx.loc(start)}, nil
	}

	c := lx.current()
	switch {
	case isIdentStart(c):
		return lx.lexIdentifier(start), nil
	case isDigit(c) || (c == '.' && isDigit(lx.byteAt(1))):
		return lx.lexNumber(start), nil
	case c == '"' || c == '\'':
		return lx.lexString(start)
	}

	if tok, ok := lx.tryMultiCharOperator(start); ok {
		return tok, nil
	}
	if indexByte(singleCharOperators, c) {
		lx.Pos++
		return Token{Text: string(c), Kind: Operator, Loc: lx.loc(start)}, nil
	}
	if indexByte(punctuationChars, c) {
		lx.Pos++
		return Token{Text: string(c), Kind: Punctuation, Loc: lx.loc(start)}, nil
	}

	return lx.lexOtherRune(start, c)
}

// lexOtherRune handles rule 7's "otherwise". Every ASCII byte is already
// exhaustively classified by rules 1-6, so one reaching here is a genuine
// typo and still fails with UnexpectedCharacter. A non-ASCII rune, though,
// is exactly the "symbol written outside this notation's core alphabet"
// case spec.md §8 requires to succeed (e.g. "§" reaches the symbol
// table's textord fallback rather than aborting the parse): decode it and
// hand it back as a one-rune token instead of erroring.
func (lx *Lexer) lexOtherRune(start int, c byte) (Token, error) {
	if c < 0x80 {
		lx.Pos++
		return Token{}, newError(UnexpectedCharacter, lx.loc(start), "unexpected character '"+string(c)+"'")
	}
	r, size := utf8.DecodeRuneInString(lx.Input[lx.Pos:])
	if r == utf8.RuneError {
		lx.Pos++
		return Token{}, newError(UnexpectedCharacter, lx.loc(start), "unexpected character '"+string(c)+"'")
	}
	lx.Pos += size
	return Token{Text: lx.Input[start:lx.Pos], Kind: Punctuation, Loc: lx.loc(start)}, nil
}

// skipTrivia consumes ASCII whitespace, "//" line comments, and
// "/* */" block comments (which do not nest) ahead of the next token.
func (lx *Lexer) skipTrivia() error {
	for {
		switch {
		case isASCIISpace(lx.current()):
			lx.Pos++
		case lx.current() == '/' && lx.byteAt(1) == '/':
			lx.skipLineComment()
		case lx.current() == '/' && lx.byteAt(1) == '*':
			if err := lx.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.atEnd() && lx.current() != '\n' {
		lx.Pos++
	}
}

func (lx *Lexer) skipBlockComment() error {
	start := lx.Pos
	lx.Pos += 2 // consume "/*"
	for {
		if lx.atEnd() {
			return newError(UnterminatedBlockComment, lx.loc(start), "block comment starting here is never closed")
		}
		if lx.current() == '*' && lx.byteAt(1) == '/' {
			lx.Pos += 2
			return nil
		}
		lx.Pos++
	}
}

func (lx *Lexer) lexIdentifier(start int) Token {
	lx.Pos++ // the start byte is already known to be a valid identifier start
	for !lx.atEnd() && isIdentCont(lx.current()) {
		lx.Pos++
	}
	return Token{Text: lx.Input[start:lx.Pos], Kind: Identifier, Loc: lx.loc(start)}
}

func (lx *Lexer) lexNumber(start int) Token {
	seenDot := false
	for !lx.atEnd() {
		c := lx.current()
		if isDigit(c) {
			lx.Pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			lx.Pos++
			continue
		}
		break
	}
	return Token{Text: lx.Input[start:lx.Pos], Kind: Number, Loc: lx.loc(start)}
}

func (lx *Lexer) lexString(start int) (Token, error) {
	quote := lx.current()
	lx.Pos++ // consume opening quote
	var out []byte
	for {
		if lx.atEnd() {
			return Token{}, newError(UnterminatedString, lx.loc(start), "string literal starting here is never closed")
		}
		c := lx.current()
		if c == quote {
			lx.Pos++
			break
		}
		if c == '\\' {
			lx.Pos++
			if lx.atEnd() {
				return Token{}, newError(UnterminatedString, lx.loc(start), "string literal starting here is never closed")
			}
			out = append(out, decodeEscape(lx.current()))
			lx.Pos++
			continue
		}
		out = append(out, c)
		lx.Pos++
	}
	return Token{Text: string(out), Kind: String, Loc: lx.loc(start)}, nil
}

// decodeEscape maps the byte following a backslash to its escaped value.
// Any byte not in {n,r,t,\\,",'} decodes to itself, per spec.md §4.1 rule 3.
func decodeEscape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}

func (lx *Lexer) tryMultiCharOperator(start int) (Token, bool) {
	remaining := lx.Input[lx.Pos:]
	for _, op := range multiCharOperators {
		if hasPrefix(remaining, op) {
			lx.Pos += len(op)
			return Token{Text: op, Kind: Operator, Loc: lx.loc(start)}, true
		}
	}
	return Token{}, false
}

func isASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isLetter(c)
}

// isIdentCont deliberately excludes '_': identifiers can't safely absorb
// an underscore under this grammar's single-token lookahead, since '_' is
// also the subscript operator (spec.md §8 scenario 1: "x_1^2 + y" lexes
// as Identifier("x"), Operator("_"), Number("1"), ...).
func isIdentCont(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func indexByte(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
