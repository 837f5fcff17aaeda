package transform

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	reSpaceRuns      = regexp.MustCompile(`\s+`)
	reUnderscoreRuns = regexp.MustCompile(`_+`)
)

// Sanitize normalizes the base name of a filename: every rune that is not a
// letter, digit, whitespace, hyphen, or underscore is dropped, whitespace
// runs collapse into a single underscore, and underscore runs collapse into
// one. The extension is stripped first and reattached untouched.
//
// Sanitize is idempotent: a sanitized name contains no whitespace, no
// dropped runes, and no doubled underscores, so a second pass is a no-op.
func Sanitize(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	var b strings.Builder
	b.Grow(len(stem))
	for _, r := range stem {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	s := reSpaceRuns.ReplaceAllString(b.String(), "_")
	s = reUnderscoreRuns.ReplaceAllString(s, "_")
	return s + ext
}
