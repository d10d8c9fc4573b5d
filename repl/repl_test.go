/*
File: mathnote/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecovery_RendersParsedAST(t *testing.T) {
	r := NewRepl("banner", "v0.1.0", "author", "----", "MIT", "> ")
	var buf bytes.Buffer
	r.executeWithRecovery(&buf, "frac(a, b)")
	out := buf.String()
	assert.Contains(t, out, `call \frac`)
}

func TestExecuteWithRecovery_PrintsDiagnosticOnParseError(t *testing.T) {
	r := NewRepl("banner", "v0.1.0", "author", "----", "MIT", "> ")
	var buf bytes.Buffer
	r.executeWithRecovery(&buf, "x )")
	out := buf.String()
	assert.Contains(t, out, "ExpectedSemicolonOrEnd")
}

func TestExecuteWithRecovery_StrictSettingSurfacesUnknownSymbol(t *testing.T) {
	r := NewRepl("banner", "v0.1.0", "author", "----", "MIT", "> ")
	r.Settings.Strict = true
	var buf bytes.Buffer
	r.executeWithRecovery(&buf, "§")
	out := buf.String()
	assert.Contains(t, out, "UnknownSymbol")
}

func TestPrintBannerInfo_IncludesBannerAndLicense(t *testing.T) {
	r := NewRepl("MY-BANNER", "v9.9.9", "someone", "----", "MIT", "> ")
	var buf bytes.Buffer
	r.PrintBannerInfo(&buf)
	out := buf.String()
	assert.Contains(t, out, "MY-BANNER")
	assert.Contains(t, out, "v9.9.9")
	assert.Contains(t, out, "MIT")
}
