/*
Package symbols implements the read-only, mode-indexed symbol table the
Parser consults to classify a character or short identifier into an AST
leaf (spec.md §4.3).

File: mathnote/symbols/table.go

This is one of the two external interfaces the core spec documents rather
than owns (the other is package handlers) — but since the symbol/operator
catalogue's "exact contents" are explicitly out of scope for the core, we
still have to ship a concrete, usable table for the parser to run against.
The shape here follows the teacher's builtin-table idiom in
objects/builtins.go: a package-level slice populated at init time, looked
up by name.
*/
package symbols

import "github.com/mathnote/mathnote/ast"

// Entry is what the table returns for a recognised (mode, text) pair. Group
// is either one of the atom families (spec.md GLOSSARY) or a direct AST tag
// such as "mathord", "textord", "op".
type Entry struct {
	Group string
	Text  string // the symbol's rendered text, which may differ from the lookup key (e.g. "oo" -> "\infty")
}

// atomFamilies is the closed set of groups the Parser folds into
// atom{family} rather than emitting the group itself as the tag
// (spec.md §3 invariant 4, GLOSSARY "Atom family").
var atomFamilies = map[string]bool{
	"ordinary": true,
	"op":       false, // op is emitted as its own tag, not folded into atom{family:"op"} (named operators are op-tagged symbols built by package handlers)
	"bin":      true,
	"rel":      true,
	"open":     true,
	"close":    true,
	"punct":    true,
}

// IsAtomFamily reports whether group is one of the families the Parser
// folds into atom{family=group}.
func IsAtomFamily(group string) bool {
	return atomFamilies[group]
}

// entries holds every (mode, text) -> Entry mapping this table knows about.
// Keyed by mode first since lookups are always mode-qualified.
var entries = map[ast.Mode]map[string]Entry{
	ast.Math: {},
	ast.Text: {},
}

func register(mode ast.Mode, text, group, rendered string) {
	entries[mode][text] = Entry{Group: group, Text: rendered}
}

func init() {
	registerGreek()
	registerInfinity()
	registerCommonPunctuation()
	registerOperators()
}

// lowerGreek and upperGreek are the exact named-symbol sets from spec.md §6.
var lowerGreek = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "pi", "rho", "sigma",
	"tau", "upsilon", "phi", "chi", "psi", "omega",
}

var upperGreek = []string{
	"Gamma", "Delta", "Theta", "Lambda", "Xi", "Pi", "Sigma", "Upsilon",
	"Phi", "Psi", "Omega",
}

func registerGreek() {
	for _, name := range lowerGreek {
		register(ast.Math, name, "ordinary", `\`+name)
	}
	for _, name := range upperGreek {
		register(ast.Math, name, "ordinary", `\`+name)
	}
}

func registerInfinity() {
	register(ast.Math, "oo", "ordinary", `\infty`)
	register(ast.Math, "infty", "ordinary", `\infty`)
}

// registerCommonPunctuation seeds a handful of single-character rel/bin/
// punct classifications a math-mode symbol table would carry in practice;
// the catalogue's exact contents are out of scope (spec.md §1), so this is
// a representative, not exhaustive, set. Anything absent here still parses
// via the textord fallback (spec.md §4.3).
func registerCommonPunctuation() {
	register(ast.Math, ",", "punct", ",")
	register(ast.Math, ";", "punct", ";")
	register(ast.Math, ".", "punct", ".")
	register(ast.Math, "(", "open", "(")
	register(ast.Math, "[", "open", "[")
	register(ast.Math, ")", "close", ")")
	register(ast.Math, "]", "close", "]")
	register(ast.Math, "|", "ordinary", "|")
}

// registerOperators classifies the additive/multiplicative/comparison
// operator literals into the atom family the Parser's operatorSymbol
// helper renders them as. Rendered text comes from RenderOperator, so
// this table and the operator-to-symbol map in namedsets.go never drift
// apart.
func registerOperators() {
	for _, op := range []string{"+", "-", "*"} {
		register(ast.Math, op, "bin", RenderOperator(op))
	}
	for _, op := range []string{
		"=", "==", "!=", "<", "<=", ">", ">=",
		"->", "<-", "<->", "=>", "<=>",
	} {
		register(ast.Math, op, "rel", RenderOperator(op))
	}
}

// Lookup consults the table for (mode, text). The Parser calls this for
// every single-character identifier/operator/punctuation primary and for
// the operator-to-symbol map entries listed in spec.md §6; it returns
// (Entry{}, false) when nothing matches, signalling the textord fallback.
func Lookup(mode ast.Mode, text string) (Entry, bool) {
	table, ok := entries[mode]
	if !ok {
		return Entry{}, false
	}
	e, ok := table[text]
	return e, ok
}

// ToNode converts a lookup result into the AST leaf the Parser should emit:
// atom{family} if Group is one of the atom families, or a bare Symbol
// tagged with Group directly otherwise (spec.md §4.3).
func ToNode(mode ast.Mode, text string, e Entry) *ast.Symbol {
	if IsAtomFamily(e.Group) {
		return &ast.Symbol{Kind: "atom", Family: e.Group, Text: e.Text, Mode: mode}
	}
	return &ast.Symbol{Kind: e.Group, Text: e.Text, Mode: mode}
}

// Fallback builds the textord leaf the Parser emits when Lookup finds
// nothing, preserving content even for unknown characters (spec.md §4.3).
func Fallback(mode ast.Mode, text string) *ast.Symbol {
	return &ast.Symbol{Kind: "textord", Text: text, Mode: mode}
}
