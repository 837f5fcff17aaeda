package display

import (
	"fmt"
)

// FormatCount returns "N noun" with a plain plural "s", e.g. "1 file",
// "3 files".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// TruncateName shortens s to max runes, replacing the tail with "…".
// max values below 2 return the ellipsis alone for non-empty overlong input.
func TruncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 2 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
