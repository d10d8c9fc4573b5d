/*
Package diagnostic renders a parse or lex failure as a source line with a
colorized caret under the offending byte range, the way the teacher's
main/repl packages color their own error output with fatih/color rather
than printing plain text.

File: mathnote/diagnostic/diagnostic.go

Both failure layers (lexer.Error and parser.Error) already carry a
(message, offset range) pair per spec.md §7; this package only needs to
know how to get a SourceLocation and a message out of whichever one it
was handed, then render the shared caret presentation.
*/
package diagnostic

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mathnote/mathnote/lexer"
	"github.com/mathnote/mathnote/parser"
)

var (
	redColor    = color.New(color.FgRed, color.Bold)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// located is satisfied by both *lexer.Error and *parser.Error.
type located interface {
	error
	location() lexer.SourceLocation
}

type lexError struct{ *lexer.Error }

func (e lexError) location() lexer.SourceLocation { return e.Loc }

type parseError struct{ *parser.Error }

func (e parseError) location() lexer.SourceLocation { return e.Token.Loc }

// wrap adapts err to located if it is a recognized failure type, or
// reports ok=false for anything else (a caller falls back to plain
// printing in that case).
func wrap(err error) (located, bool) {
	switch v := err.(type) {
	case *lexer.Error:
		return lexError{v}, true
	case *parser.Error:
		return parseError{v}, true
	}
	return nil, false
}

// Print writes a colorized diagnostic for err to w: the error message in
// red, followed by the source line and a caret line marking the offending
// range in yellow. If err is not a recognized lexer/parser failure, it is
// printed plain.
func Print(w io.Writer, err error) {
	loc, ok := wrap(err)
	if !ok {
		redColor.Fprintf(w, "%s\n", err)
		return
	}

	redColor.Fprintf(w, "%s\n", loc.Error())

	source := loc.location()
	lineStart, lineEnd, col := lineBounds(source.Input, source.Start)
	cyanColor.Fprintf(w, "%s\n", source.Input[lineStart:lineEnd])

	width := source.End - source.Start
	if width < 1 {
		width = 1
	}
	yellowColor.Fprintf(w, "%s%s\n", strings.Repeat(" ", col), strings.Repeat("^", width))
}

// lineBounds finds the start and end offsets of the line containing pos
// within input, plus pos's column within that line.
func lineBounds(input string, pos int) (start, end, col int) {
	start = strings.LastIndexByte(input[:pos], '\n') + 1
	if rel := strings.IndexByte(input[pos:], '\n'); rel >= 0 {
		end = pos + rel
	} else {
		end = len(input)
	}
	col = pos - start
	return start, end, col
}

// Sprint is the non-writing counterpart of Print, used where a caller
// wants the formatted text rather than a direct write (e.g. to embed it
// in a REPL's own output buffering).
func Sprint(err error) string {
	var buf strings.Builder
	Print(&buf, err)
	return buf.String()
}
