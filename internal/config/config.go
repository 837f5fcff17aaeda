// Package config holds runtime configuration: defaults, validation, and
// TOML preset loading. A Config is built by the CLI layer and passed (by
// pointer) to the packages that need it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultDigits is the zero-pad width for the sequential transform.
const DefaultDigits = 3

// DefaultDateLayout is the Go time layout for the date-stamp transform
// (YYYYMMDD, matching the legacy script's %Y%m%d).
const DefaultDateLayout = "20060102"

// Sentinel errors for fatal configuration problems.
var (
	ErrNoTransforms = errors.New("no transform enabled (use --sanitize, --replace, --prefix, --suffix, --sequential or --date)")
	ErrNoDirectory  = errors.New("target directory is required")
)

// TransformSet describes which transforms are enabled and their parameters.
// The zero value has every transform disabled. Application order is fixed by
// the pipeline regardless of which fields are set:
// sanitize → replace → prefix → suffix → sequential → date-stamp.
type TransformSet struct {
	Sanitize bool

	// Replace is the literal substring to replace; empty means disabled.
	// With may be empty (deletes occurrences of Replace).
	Replace string
	With    string

	Prefix string
	Suffix string

	Sequential bool
	Digits     int // Zero-pad width. Default: 3.

	Date       bool
	DateLayout string // Go time layout. Default: "20060102".
}

// Any reports whether at least one transform is enabled.
func (t TransformSet) Any() bool {
	return t.Sanitize || t.Replace != "" || t.Prefix != "" ||
		t.Suffix != "" || t.Sequential || t.Date
}

// Config holds all runtime settings. Populated by [DefaultConfig] and then
// mutated by the CLI layer before being validated.
type Config struct {
	// Rename pipeline.
	Directory  string
	Recursive  bool
	Execute    bool // Default: false (dry run).
	Transforms TransformSet

	// Journal.
	JournalPath string // Default: ~/.renamekit/journal.db.
	NoJournal   bool

	// Presets.
	PresetsFile string // Default: ~/.renamekit/presets.toml.
	Preset      string

	// Display and logging.
	ColorMode ColorMode // Default: "auto".
	Verbose   bool
	LogFile   string // Optional log file path.
}

// DefaultConfig returns a Config with defaults matching the legacy script's
// behavior: dry run, non-recursive, width-3 numbering, YYYYMMDD dates.
func DefaultConfig() Config {
	return Config{
		Transforms: TransformSet{
			Digits:     DefaultDigits,
			DateLayout: DefaultDateLayout,
		},
		JournalPath: defaultStatePath("journal.db"),
		PresetsFile: defaultStatePath("presets.toml"),
		ColorMode:   ColorAuto,
	}
}

// defaultStatePath returns ~/.renamekit/<name>, or a relative fallback when
// the home directory cannot be resolved.
func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".renamekit", name)
	}
	return filepath.Join(home, ".renamekit", name)
}

// ParseColorMode validates a color mode flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the configuration before a rename run: a target directory
// and at least one enabled transform are required, and enum/parameter fields
// must hold sane values.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Directory == "" {
		return ErrNoDirectory
	}
	if !c.Transforms.Any() {
		return ErrNoTransforms
	}
	if c.Transforms.With != "" && c.Transforms.Replace == "" {
		return errors.New("--with requires --replace")
	}
	if c.Transforms.Sequential {
		if c.Transforms.Digits < 1 || c.Transforms.Digits > 10 {
			return fmt.Errorf("invalid digit width %d (use 1-10)", c.Transforms.Digits)
		}
	}
	if c.Transforms.Date && c.Transforms.DateLayout == "" {
		return errors.New("date layout must not be empty")
	}
	return nil
}
