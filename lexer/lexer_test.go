/*
File: mathnote/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func collect(t *testing.T, src string) []Token {
	t.Helper()
	lx := New(src)
	var toks []Token
	for {
		tok, err := lx.Lex()
		require.NoError(t, err)
		if tok.IsEOF() {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func simple(kind Kind, text string) Token {
	return Token{Text: text, Kind: kind}
}

func stripLoc(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = Token{Text: tok.Text, Kind: tok.Kind}
	}
	return out
}

func TestLex_Identifiers(t *testing.T) {
	cases := []tokenCase{
		{
			// '_' never joins an identifier: it is always the subscript
			// operator, even when it directly follows identifier bytes or
			// repeats (spec.md §8 scenario 1: "x_1^2 + y").
			Input: "alpha Beta_2 _ __hidden",
			Expected: []Token{
				simple(Identifier, "alpha"),
				simple(Identifier, "Beta"),
				simple(Operator, "_"),
				simple(Number, "2"),
				simple(Operator, "_"),
				simple(Operator, "_"),
				simple(Operator, "_"),
				simple(Identifier, "hidden"),
			},
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.Expected, stripLoc(collect(t, c.Input)))
	}
}

func TestLex_Numbers(t *testing.T) {
	cases := []tokenCase{
		{
			Input: "42 3.14 .5 0",
			Expected: []Token{
				simple(Number, "42"),
				simple(Number, "3.14"),
				simple(Number, ".5"),
				simple(Number, "0"),
			},
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.Expected, stripLoc(collect(t, c.Input)))
	}
}

func TestLex_Strings(t *testing.T) {
	cases := []tokenCase{
		{
			Input: `"hello" 'world' "a\nb" "quote:\" end" "tab\tchar" "\q"`,
			Expected: []Token{
				simple(String, "hello"),
				simple(String, "world"),
				simple(String, "a\nb"),
				simple(String, `quote:" end`),
				simple(String, "tab\tchar"),
				simple(String, "q"),
			},
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.Expected, stripLoc(collect(t, c.Input)))
	}
}

func TestLex_Operators(t *testing.T) {
	cases := []tokenCase{
		{
			Input: "+ - * / ^ _ = < > !",
			Expected: []Token{
				simple(Operator, "+"), simple(Operator, "-"), simple(Operator, "*"),
				simple(Operator, "/"), simple(Operator, "^"), simple(Operator, "_"),
				simple(Operator, "="), simple(Operator, "<"), simple(Operator, ">"),
				simple(Operator, "!"),
			},
		},
		{
			Input: "<=> <-> => -> <- <= >= != ==",
			Expected: []Token{
				simple(Operator, "<=>"), simple(Operator, "<->"), simple(Operator, "=>"),
				simple(Operator, "->"), simple(Operator, "<-"), simple(Operator, "<="),
				simple(Operator, ">="), simple(Operator, "!="), simple(Operator, "=="),
			},
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.Expected, stripLoc(collect(t, c.Input)))
	}
}

func TestLex_Punctuation(t *testing.T) {
	assert.Equal(t, []Token{
		simple(Punctuation, ","), simple(Punctuation, ":"), simple(Punctuation, ";"),
		simple(Punctuation, "."), simple(Punctuation, "("), simple(Punctuation, ")"),
		simple(Punctuation, "["), simple(Punctuation, "]"), simple(Punctuation, "{"),
		simple(Punctuation, "}"), simple(Punctuation, "|"),
	}, stripLoc(collect(t, ",:;.()[]{}|")))
}

func TestLex_TriviaSkipped(t *testing.T) {
	src := "a // line comment\n + /* block\ncomment */ b"
	assert.Equal(t, []Token{
		simple(Identifier, "a"),
		simple(Operator, "+"),
		simple(Identifier, "b"),
	}, stripLoc(collect(t, src)))
}

func TestLex_EOFIsIdempotent(t *testing.T) {
	lx := New("x")
	first, err := lx.Lex()
	require.NoError(t, err)
	assert.Equal(t, Identifier, first.Kind)

	for i := 0; i < 3; i++ {
		tok, err := lx.Lex()
		require.NoError(t, err)
		assert.True(t, tok.IsEOF())
	}
}

func TestLex_Empty(t *testing.T) {
	lx := New("")
	tok, err := lx.Lex()
	require.NoError(t, err)
	assert.True(t, tok.IsEOF())
	assert.Equal(t, 0, tok.Loc.Start)
	assert.Equal(t, 0, tok.Loc.End)
}

func TestLex_UnterminatedString(t *testing.T) {
	lx := New(`"never closes`)
	_, err := lx.Lex()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedString, lexErr.Kind)
	assert.Equal(t, 0, lexErr.Loc.Start)
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	lx := New("/* never closes")
	_, err := lx.Lex()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedBlockComment, lexErr.Kind)
}

func TestLex_UnexpectedCharacter(t *testing.T) {
	lx := New("@")
	_, err := lx.Lex()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnexpectedCharacter, lexErr.Kind)
}

// A non-ASCII rune outside the known classes still lexes successfully, so
// the Parser's symbol table can fall back to textord for it (spec.md §8).
func TestLex_NonASCIIRuneLexesAsPunctuation(t *testing.T) {
	lx := New("§")
	tok, err := lx.Lex()
	require.NoError(t, err)
	assert.Equal(t, Punctuation, tok.Kind)
	assert.Equal(t, "§", tok.Text)

	eof, err := lx.Lex()
	require.NoError(t, err)
	assert.True(t, eof.IsEOF())
}

func TestLex_SourceLocationOffsets(t *testing.T) {
	lx := New("ab + 12")
	tok, err := lx.Lex()
	require.NoError(t, err)
	assert.Equal(t, 0, tok.Loc.Start)
	assert.Equal(t, 2, tok.Loc.End)
	assert.Equal(t, "ab", tok.Loc.Text())

	tok, err = lx.Lex()
	require.NoError(t, err)
	assert.Equal(t, "+", tok.Loc.Text())

	tok, err = lx.Lex()
	require.NoError(t, err)
	assert.Equal(t, "12", tok.Loc.Text())
}
