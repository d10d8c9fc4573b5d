/*
File: mathnote/cmd/mathnote/config_test.go
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigFlag_NoFlagReturnsDefaults(t *testing.T) {
	st, rest, err := parseConfigFlag([]string{"input.mn"})
	require.NoError(t, err)
	assert.Equal(t, []string{"input.mn"}, rest)
	assert.True(t, st.DisplayMode)
	assert.False(t, st.Strict)
	assert.Equal(t, 10000, st.MaxExpand)
}

func TestParseConfigFlag_LoadsOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: true\nmax_expand: 5\n"), 0644))

	st, rest, err := parseConfigFlag([]string{"--config", path, "input.mn"})
	require.NoError(t, err)
	assert.Equal(t, []string{"input.mn"}, rest)
	assert.True(t, st.Strict)
	assert.Equal(t, 5, st.MaxExpand)
	assert.True(t, st.DisplayMode) // unset in file, keeps default
}

func TestParseConfigFlag_MissingFileIsAnError(t *testing.T) {
	_, _, err := parseConfigFlag([]string{"--config", "/no/such/file.yaml"})
	assert.Error(t, err)
}
