package config

// This file implements named transform presets loaded from a TOML file.
// A preset is a saved TransformSet; explicit CLI flags still win over
// preset values (the CLI layer applies the preset first, then flags).

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// ErrPresetNotFound is returned when the requested preset name is absent
// from the presets file.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is the on-disk shape of a saved transform configuration.
//
//	[presets.photos]
//	sanitize = true
//	prefix = "IMG_"
//	sequential = true
//	digits = 3
type Preset struct {
	Sanitize   bool   `toml:"sanitize"`
	Replace    string `toml:"replace"`
	With       string `toml:"with"`
	Prefix     string `toml:"prefix"`
	Suffix     string `toml:"suffix"`
	Sequential bool   `toml:"sequential"`
	Digits     int    `toml:"digits"`
	Date       bool   `toml:"date"`
	DateLayout string `toml:"date_layout"`
}

type presetFile struct {
	Presets map[string]Preset `toml:"presets"`
}

// TransformSet converts a preset into a TransformSet, filling in defaults
// for unset numeric/layout fields.
func (p Preset) TransformSet() TransformSet {
	t := TransformSet{
		Sanitize:   p.Sanitize,
		Replace:    p.Replace,
		With:       p.With,
		Prefix:     p.Prefix,
		Suffix:     p.Suffix,
		Sequential: p.Sequential,
		Digits:     p.Digits,
		Date:       p.Date,
		DateLayout: p.DateLayout,
	}
	if t.Digits == 0 {
		t.Digits = DefaultDigits
	}
	if t.DateLayout == "" {
		t.DateLayout = DefaultDateLayout
	}
	return t
}

// LoadPreset reads the presets file at path and returns the named preset's
// TransformSet. A missing file and an unknown name are distinct errors so
// the CLI can hint accordingly.
func LoadPreset(path, name string) (TransformSet, error) {
	presets, err := LoadPresets(path)
	if err != nil {
		return TransformSet{}, err
	}
	p, ok := presets[name]
	if !ok {
		return TransformSet{}, fmt.Errorf("%w: %q (available: %s)", ErrPresetNotFound, name, presetNames(presets))
	}
	return p.TransformSet(), nil
}

// LoadPresets reads and parses the presets file at path.
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read presets file: %w", err)
	}
	var pf presetFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("cannot parse presets file %s: %w", path, err)
	}
	return pf.Presets, nil
}

func presetNames(presets map[string]Preset) string {
	if len(presets) == 0 {
		return "none"
	}
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
