// Package transform implements the filename transforms and their fixed
// composition order. Every transform is a pure function from one filename to
// another; the pipeline never sees partial state.
package transform

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/filedrift/renamekit/internal/config"
)

// Apply runs the enabled transforms over name in the fixed order
//
//	sanitize → replace → prefix → suffix → sequential → date-stamp
//
// each consuming the previous output. The order is a contract: sanitize runs
// first so later literal substrings match against a normalized name, and the
// sequential/date stamps run last so earlier substitutions cannot disturb
// them. seq is the entry's 1-based position in the path-sorted listing; now
// supplies the date-stamp clock.
func Apply(name string, set config.TransformSet, seq int, now time.Time) string {
	if set.Sanitize {
		name = Sanitize(name)
	}
	if set.Replace != "" {
		name = strings.ReplaceAll(name, set.Replace, set.With)
	}
	if set.Prefix != "" {
		name = set.Prefix + name
	}
	if set.Suffix != "" {
		name = insertBeforeExt(name, set.Suffix)
	}
	if set.Sequential {
		name = insertBeforeExt(name, fmt.Sprintf("_%0*d", set.Digits, seq))
	}
	if set.Date {
		name = insertBeforeExt(name, "_"+now.Format(set.DateLayout))
	}
	return name
}

// insertBeforeExt inserts s immediately before the filename's extension.
// Names without an extension get s appended.
func insertBeforeExt(name, s string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + s + ext
}
