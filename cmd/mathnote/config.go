/*
File: mathnote/cmd/mathnote/config.go

Loads Settings from an optional YAML config file, per SPEC_FULL.md §0:
the teacher wires flags/env by hand rather than reaching for a flags
package, and this file follows that texture, just for one flag
("--config <path>") instead of many.
*/
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mathnote/mathnote/settings"
)

// fileSettings mirrors settings.Settings field-for-field with yaml tags;
// kept separate so settings.Settings itself carries no YAML-specific
// struct tags for a concern only the CLI cares about.
type fileSettings struct {
	DisplayMode *bool `yaml:"display_mode"`
	Strict      *bool `yaml:"strict"`
	MaxExpand   *int  `yaml:"max_expand"`
}

// parseConfigFlag scans args for a leading "--config <path>" pair,
// returning the resulting Settings (starting from settings.Default(),
// overridden field-by-field by whatever the file specifies) and the
// remaining arguments with the flag and its value removed.
func parseConfigFlag(args []string) (settings.Settings, []string, error) {
	st := settings.Default()

	if len(args) >= 2 && args[0] == "--config" {
		loaded, err := loadConfig(args[1])
		if err != nil {
			return st, nil, err
		}
		return loaded, args[2:], nil
	}

	return st, args, nil
}

// loadConfig reads and applies a YAML Settings file on top of the
// defaults; any field absent from the file keeps its default value.
func loadConfig(path string) (settings.Settings, error) {
	st := settings.Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("reading %s: %w", path, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return st, fmt.Errorf("parsing %s: %w", path, err)
	}

	if fs.DisplayMode != nil {
		st.DisplayMode = *fs.DisplayMode
	}
	if fs.Strict != nil {
		st.Strict = *fs.Strict
	}
	if fs.MaxExpand != nil {
		st.MaxExpand = *fs.MaxExpand
	}

	return st, nil
}
