package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	prop "github.com/signadot/prop-format"
	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/system"
)

// settings are user defaults read from <config folder>/prop/settings.prop,
// or from the file named by $PROP_SETTINGS.
//
//	include = include      ; directive key, "" disables includes
//	max_include_level = 100
//	compact = false
//	color = true           ; unset means color on terminals
type settings struct {
	Include         string
	MaxIncludeLevel int
	Compact         bool
	Color           *bool
}

func defaultSettings() *settings {
	return &settings{
		Include:         "include",
		MaxIncludeLevel: prop.DefaultMaxIncludeLevel,
	}
}

func settingsPath() (string, error) {
	if p := os.Getenv("PROP_SETTINGS"); p != "" {
		return p, nil
	}
	dir, err := system.ConfigFolder()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prop", "settings.prop"), nil
}

func loadSettings() (*settings, error) {
	path, err := settingsPath()
	if errors.Is(err, system.ErrNoConfigFolder) {
		return defaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return loadSettingsFile(path)
}

// loadSettingsFile reads path; a missing file gives the defaults.
func loadSettingsFile(path string) (*settings, error) {
	s := defaultSettings()
	node, err := prop.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if s.Include, err = ir.GetOr(node, "include", s.Include); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	if s.MaxIncludeLevel, err = ir.GetOr(node, "max_include_level", s.MaxIncludeLevel); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	if s.Compact, err = ir.GetOr(node, "compact", s.Compact); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	if c := node.Get("color"); c != nil && c.HasValue() {
		color, err := ir.ValueAs[bool](c)
		if err != nil {
			return nil, fmt.Errorf("settings %s: color: %w", path, err)
		}
		s.Color = &color
	}
	return s, nil
}
