package report

import (
	"regexp"
	"strings"
)

var invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]+`)

// SanitizeFilename replaces characters not allowed in Windows/Unix filenames
// with underscores and trims surrounding whitespace and underscores. It never
// fails; an empty result means there is no usable name.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "_ \t\r\n")
}
