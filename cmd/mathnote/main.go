/*
File: mathnote/cmd/mathnote/main.go

Package main is the entry point for the mathnote CLI. It provides two
modes of operation, grounded on the teacher's main/main.go:
1. REPL Mode (default): interactive parse-and-print loop
2. File Mode: parse a mathnote source file and print its AST

There is no server/networking mode: the teacher's TCP REPL server carries
session/evaluator state this module's Non-goals exclude (SPEC_FULL.md §2).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mathnote/mathnote/diagnostic"
	"github.com/mathnote/mathnote/handlers"
	"github.com/mathnote/mathnote/parser"
	"github.com/mathnote/mathnote/printer"
	"github.com/mathnote/mathnote/repl"
	"github.com/mathnote/mathnote/settings"
)

// VERSION is the current version of the mathnote CLI.
var VERSION = "v0.1.0"

// AUTHOR is the contact listed in CLI banners, kept in the teacher's
// format even though authorship here is this module, not a person.
var AUTHOR = "mathnote maintainers"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "mathnote >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  _ __ ___   __ _| |_| |__  _ __   ___ | |_ ___
 | '_ ' _ \ / _' | __| '_ \| '_ \ / _ \| __/ _ \
 | | | | | | (_| | |_| | | | | | | (_) | ||  __/
 |_| |_| |_|\__,_|\__|_| |_|_| |_|\___/ \__\___|
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main determines the operating mode from command-line arguments:
//
// Usage:
//
//	mathnote                 - start in REPL (interactive) mode
//	mathnote <filename>      - parse and print the AST of a source file
//	mathnote --config <path> - load Settings from a YAML config file
//	mathnote --help          - display help information
//	mathnote --version       - display version information
func main() {
	st, args, err := parseConfigFlag(os.Args[1:])
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
		runFile(args[0], st)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Settings = st
	repler.Start(os.Stdin, os.Stdout)
}

// runFile reads, parses, and prints the AST of a mathnote source file.
func runFile(fileName string, st settings.Settings) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	nodes, perr := parser.Parse(string(source), st, handlers.NewDefaultRegistry())
	if perr != nil {
		diagnostic.Print(os.Stderr, perr)
		os.Exit(1)
	}

	fmt.Print(printer.Render(nodes))
}

// showHelp displays the help information for the mathnote CLI.
func showHelp() {
	cyanColor.Println("mathnote - a typeset-math notation parser")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  mathnote                    Start interactive REPL mode")
	fmt.Println("  mathnote <path-to-file>     Parse a mathnote file and print its AST")
	fmt.Println("  mathnote --config <path>    Load Settings from a YAML config file")
	fmt.Println("  mathnote --help             Display this help message")
	fmt.Println("  mathnote --version          Display version information")
}

// showVersion displays the version information for the mathnote CLI.
func showVersion() {
	cyanColor.Println("mathnote - a typeset-math notation parser")
	fmt.Printf("Version: %s\n", VERSION)
	fmt.Printf("License: %s\n", LICENSE)
}
