/*
File: mathnote/repl/repl.go

Package repl implements the Read-Eval-Print Loop for mathnote. The REPL
provides an interactive environment where users can:
- Enter math-notation source line by line
- See the parsed AST printed immediately
- Navigate input history using arrow keys
- Receive colored caret diagnostics for lex/parse failures

The REPL uses the readline library for enhanced line editing, the same
way the teacher's REPL does, but drives mathnote's parser and printer
instead of an evaluator: there is no evaluation step (spec.md's Non-goals
exclude full evaluator semantics), so a line is parsed and its AST is
rendered, never executed.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mathnote/mathnote/diagnostic"
	"github.com/mathnote/mathnote/handlers"
	"github.com/mathnote/mathnote/parser"
	"github.com/mathnote/mathnote/printer"
	"github.com/mathnote/mathnote/settings"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: rendered AST output
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner and prompt texture shown around a session; it
// carries no parse state of its own (each line is an independent parse,
// spec.md §5: "Parser instances are not shareable or reusable across
// inputs").
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Settings settings.Settings
}

// NewRepl builds a Repl with the default Settings. Settings can be
// overridden afterward (e.g. from a loaded config file) before Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:   banner,
		Version:  version,
		Author:   author,
		Line:     line,
		License:  license,
		Prompt:   prompt,
		Settings: settings.Default(),
	}
}

// PrintBannerInfo writes the startup banner, version/author/license line,
// and usage instructions to writer.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	blueColor.Fprintf(writer, "%s\n", r.Line)

	cyanColor.Fprintf(writer, "%s\n", "Welcome to mathnote!")
	cyanColor.Fprintf(writer, "%s\n", "Type a math-notation expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate input history")

	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, then read lines
// until '.exit' or EOF, parsing and printing the AST for each one.
//
// Parameters:
//
//	reader - input source (unused directly; readline owns terminal I/O)
//	writer - output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses a single line and prints its AST, recovering
// from any panic so a single bad line never kills the session. Unlike
// file mode, the REPL always continues after an error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			diagnostic.Print(writer, recoveredError{recovered})
		}
	}()

	nodes, err := parser.Parse(line, r.Settings, handlers.NewDefaultRegistry())
	if err != nil {
		diagnostic.Print(writer, err)
		return
	}

	rendered := printer.Render(nodes)
	if rendered == "" {
		return
	}
	yellowColor.Fprint(writer, rendered)
}

// recoveredError adapts a recover() value to the error interface so it
// can flow through the same diagnostic.Print path as a lex/parse error.
type recoveredError struct{ v interface{} }

func (e recoveredError) Error() string {
	if err, ok := e.v.(error); ok {
		return "runtime error: " + err.Error()
	}
	return fmt.Sprintf("runtime error: %v", e.v)
}
