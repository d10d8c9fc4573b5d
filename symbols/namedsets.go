/*
File: mathnote/symbols/namedsets.go

The fixed named-set tables spec.md §6 says the core owns outright (as
opposed to the general symbol/operator catalogue, whose exact contents are
an external concern): named operators, accent short-forms, accent kinds
accepted by accent(base, kind), and the operator-to-symbol map used when
lowering a binary operator to its rendered form.
*/
package symbols

import "strings"

// NamedOperators is the set from spec.md §6 dispatched to an external
// handler with an empty argument list when seen as a bare identifier
// (spec.md §4.2.1 rule 4), or with a parenthesised args ordgroup when
// called (spec.md §4.2.2).
var NamedOperators = map[string]bool{
	"sin": true, "cos": true, "tan": true, "ln": true, "log": true,
	"exp": true, "lim": true, "max": true, "min": true, "sum": true,
	"prod": true, "int": true,
}

func IsNamedOperator(name string) bool { return NamedOperators[name] }

// AccentShortForms are the call names from spec.md §6 that dispatch
// directly to the matching accent handler with one mandatory argument
// (spec.md §4.2.2).
var AccentShortForms = map[string]bool{
	"hat": true, "bar": true, "tilde": true, "dot": true, "ddot": true,
	"vec": true, "overline": true, "underline": true,
}

func IsAccentShortForm(name string) bool { return AccentShortForms[name] }

// accentKindAliases maps a trimmed, lower-cased accent(base, kind) kind
// string to the canonical handler name it dispatches to (spec.md §6:
// "arrow aliases vec"). Kinds not present here, after trimming and
// lower-casing, are rejected with UnsupportedAccent.
var accentKindAliases = map[string]string{
	"hat": "hat", "bar": "bar", "tilde": "tilde", "dot": "dot",
	"ddot": "ddot", "vec": "vec", "arrow": "vec",
	"acute": "acute", "grave": "grave", "check": "check", "breve": "breve",
	"overline": "overline", "underline": "underline",
}

// ResolveAccentKind normalises a plain-text accent kind (trimmed,
// case-insensitively matched) to its canonical handler name, per
// spec.md §6. The second return value is false for any kind outside the
// accepted set, which the caller turns into UnsupportedAccent.
func ResolveAccentKind(kind string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	name, ok := accentKindAliases[normalized]
	return name, ok
}

// OperatorSymbols is the operator-to-symbol map from spec.md §6, used
// whenever the Parser emits a binary-operator symbol node ("*" at the
// multiplicative level as well as the comparison/arrow tokens).
var OperatorSymbols = map[string]string{
	"*":   `\cdot`,
	"==":  "=",
	"!=":  `\ne`,
	"<=":  `\leq`,
	">=":  `\geq`,
	"->":  `\to`,
	"<-":  `\leftarrow`,
	"<->": `\leftrightarrow`,
	"=>":  `\Rightarrow`,
	"<=>": `\Leftrightarrow`,
}

// RenderOperator maps a lexed operator's text to what the AST symbol node
// should show, falling through to the literal text for operators with no
// entry in OperatorSymbols (e.g. "+", "-", "=", "<", ">").
func RenderOperator(text string) string {
	if rendered, ok := OperatorSymbols[text]; ok {
		return rendered
	}
	return text
}
