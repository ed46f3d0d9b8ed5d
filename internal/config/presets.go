// Package config loads named traversal-option presets from a YAML file, so
// recurring flag bundles ("everything with debug", "streams and formats")
// don't have to be retyped per run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/audiohw/audiotree/internal/walker"
	"gopkg.in/yaml.v3"
)

// Presets maps preset names to lists of option toggles.
//
// File shape:
//
//	presets:
//	  io: [streams, formats]
//	  everything: [all, debug]
type Presets struct {
	Presets map[string][]string `yaml:"presets"`
}

// DefaultPath returns the per-user presets file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "audiotree", "presets.yaml")
}

// Load reads and parses a presets file.
func Load(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadDefault loads the default presets file; a missing file yields an
// empty preset set, not an error.
func LoadDefault() (*Presets, error) {
	path := DefaultPath()
	if path == "" {
		return &Presets{}, nil
	}
	p, err := Load(path)
	if os.IsNotExist(err) {
		return &Presets{}, nil
	}
	return p, err
}

// Parse decodes a presets document.
func Parse(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, toggles := range p.Presets {
		for _, t := range toggles {
			if _, err := ParseToggle(t); err != nil {
				return nil, fmt.Errorf("preset %q: %w", name, err)
			}
		}
	}
	return &p, nil
}

// Options resolves a preset name to its option bits. Toggles apply left to
// right; "all" behaves like the include-all flag (sets everything, clears
// debug), so a later "debug" can still turn debug back on.
func (p *Presets) Options(name string) (walker.Options, error) {
	toggles, ok := p.Presets[name]
	if !ok {
		return 0, fmt.Errorf("unknown preset %q", name)
	}
	var opts walker.Options
	for _, t := range toggles {
		flag, err := ParseToggle(t)
		if err != nil {
			return 0, err
		}
		if t == "all" {
			opts = opts.With(walker.All()).Without(walker.Debug)
			continue
		}
		opts = opts.With(flag)
	}
	return opts, nil
}

var toggleNames = map[string]walker.Options{
	"boxes":     walker.IncludeBoxes,
	"clocks":    walker.IncludeClocks,
	"streams":   walker.IncludeStreams,
	"formats":   walker.IncludeFormats,
	"channels":  walker.IncludeChannels,
	"controls":  walker.IncludeControls,
	"plugins":   walker.IncludePlugins,
	"processes": walker.IncludeProcesses,
	"debug":     walker.Debug,
	"all":       0, // resolved specially in Options
}

// ParseToggle maps a toggle name to its option bit.
func ParseToggle(name string) (walker.Options, error) {
	flag, ok := toggleNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown toggle %q", name)
	}
	return flag, nil
}
