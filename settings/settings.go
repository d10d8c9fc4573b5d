/*
Package settings defines the small, opaque options value threaded through
a parse (spec.md §6: "Settings is opaque to the core except that it is
forwarded into any handler invocation").

File: mathnote/settings/settings.go
*/
package settings

// Settings carries per-parse options. The core never branches on these
// fields itself beyond Strict and MaxExpand; everything is forwarded
// into handlers.Context.Settings verbatim for external handlers to use as
// they see fit.
type Settings struct {
	// DisplayMode mirrors the typesetting system's distinction between
	// inline and display-style math; forwarded to handlers unchanged.
	DisplayMode bool

	// Strict, when true, asks the Parser to treat a symbol-table miss as
	// an error instead of the textord fallback. Off by default, matching
	// spec.md §4.3's "This preserves content even for unknown characters."
	Strict bool

	// MaxExpand bounds how many `let` substitutions a single parse may
	// perform in total, as a safety valve against pathological inputs
	// with many bindings; it is not part of the grammar itself.
	MaxExpand int
}

// Default returns the Settings a bare `parse(input)` call should use.
func Default() Settings {
	return Settings{DisplayMode: true, Strict: false, MaxExpand: 10000}
}
