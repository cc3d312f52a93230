// Package sections splits generated report text into titled sections.
//
// Generated reports have gone through several prompt-template revisions, so
// headings show up in more than one shape: markdown "#" runs, lines that are
// nothing but a bold span, and enumerated headings using ASCII digits or CJK
// numerals ("一、專案目標"). Each shape is handled by its own matcher and the
// matchers are tried in a fixed priority order per line.
package sections

import (
	"regexp"
	"strings"
)

// Section is one heading-delimited region of generated text.
// Title may be empty (a bare heading marker); Body keeps its internal line
// breaks verbatim so each renderer can re-split it as it needs.
type Section struct {
	Title string
	Body  string
}

// A headingMatcher reports whether a single line is a heading, and if so
// returns the captured heading text (already trimmed, possibly empty).
type headingMatcher func(line string) (title string, ok bool)

var (
	// Markdown heading, optionally behind a list marker ("- ## Title"),
	// which some model revisions emit when asked for an outline.
	markdownHeading = regexp.MustCompile(`^(?:[-*+]\s+)?#{1,6}\s+(.*)$`)

	// A line that is nothing but a bold span.
	boldHeading = regexp.MustCompile(`^\s*\*\*(.+)\*\*\s*$`)

	// "1. Title" or "一、Title". The ASCII form requires whitespace after
	// the dot so decimals like "1.5" stay body text; the 、 form does not,
	// since CJK writing puts no space after the separator.
	enumHeading = regexp.MustCompile(`^(?:[0-9]+|[一二三四五六七八九十]+)(?:\.\s+|、\s*)(.*)$`)
)

// matchers in priority order; the first match wins for a given line.
var matchers = []headingMatcher{
	func(line string) (string, bool) {
		m := markdownHeading.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	},
	func(line string) (string, bool) {
		m := boldHeading.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	},
	func(line string) (string, bool) {
		m := enumHeading.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	},
}

func matchHeading(line string) (string, bool) {
	for _, match := range matchers {
		if title, ok := match(line); ok {
			return title, ok
		}
	}
	return "", false
}

// Segment scans text line by line and splits it into sections at heading
// lines. Non-heading lines, blank lines included, are appended verbatim to
// the open section's body. Sections that end up empty in both title and
// trimmed body are dropped. If nothing but a single untitled section remains,
// no heading structure was detected and Segment returns nil; callers must
// fall back to rendering the raw text.
func Segment(text string) []Section {
	var scanned []Section
	title := ""
	var body []string

	flush := func() {
		scanned = append(scanned, Section{Title: title, Body: strings.Join(body, "\n")})
	}

	for _, line := range strings.Split(text, "\n") {
		if t, ok := matchHeading(line); ok {
			flush()
			title = t
			body = nil
			continue
		}
		body = append(body, line)
	}
	flush()

	var kept []Section
	for _, s := range scanned {
		if s.Title == "" && strings.TrimSpace(s.Body) == "" {
			continue
		}
		kept = append(kept, s)
	}

	if len(kept) == 1 && kept[0].Title == "" {
		return nil
	}
	return kept
}
