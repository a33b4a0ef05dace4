package fsutil

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeFilename lowercases name and replaces every character outside
// [a-zA-Z0-9_-] with an underscore, so recording names survive as path
// components on any filesystem.
func SanitizeFilename(name string) string {
	return strings.ToLower(unsafeFilenameChars.ReplaceAllString(name, "_"))
}

// FormatSeconds renders a duration in seconds as HH:MM:SS, truncating
// fractional seconds.
func FormatSeconds(seconds float64) string {
	total := int64(seconds)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
