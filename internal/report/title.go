package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"reportgen-ai/internal/template"
)

// Title extraction probes the generated text with increasingly generic
// patterns because the prompt templates have changed format over time and
// both old and new outputs must keep working. These patterns are deliberately
// separate from the section segmenter's grammar.
var (
	// Old template format: the "一、專案名稱" heading with the name on the
	// next non-blank line, optionally bullet-prefixed.
	numberedTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`一、專案名稱[^\n\r]*\n\s*[-＊*]\s*(.+)`),
		regexp.MustCompile(`一、專案名稱[^\n\r]*\n\s*(.+)`),
	}

	// "專案名稱：XXX" on one line, ASCII or full-width colon.
	colonTitlePattern = regexp.MustCompile(`專案名稱[:：]\s*(.+)`)

	// First markdown H1.
	h1TitlePattern = regexp.MustCompile(`(?m)^\s*#\s*(.+)$`)

	// Trailing parenthesized remark, e.g. "排程系統（暫名）".
	trailingRemark = regexp.MustCompile(`\s*[（(][^（）()]*[）)]\s*$`)
)

// NumberedTitle extracts the project name from the legacy numbered-heading
// format. It is the only pattern the strict-title variant accepts.
func NumberedTitle(generated string) (string, bool) {
	for _, pat := range numberedTitlePatterns {
		if m := pat.FindStringSubmatch(generated); m != nil {
			title := trailingRemark.ReplaceAllString(strings.TrimSpace(m[1]), "")
			if title != "" {
				return title, true
			}
		}
	}
	return "", false
}

func colonTitle(generated string) (string, bool) {
	if m := colonTitlePattern.FindStringSubmatch(generated); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func h1Title(generated string) (string, bool) {
	if m := h1TitlePattern.FindStringSubmatch(generated); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// DecideTitle picks the canonical project title: an explicit user title
// always wins, then extraction from the generated text, then a
// kind-plus-timestamp fallback so a usable name always exists. The result is
// sanitized and never empty.
func DecideTitle(userTitle, generated string, kind template.ReportKind, now time.Time) string {
	if t := strings.TrimSpace(userTitle); t != "" {
		if s := SanitizeFilename(t); s != "" {
			return s
		}
	}

	extractors := []func(string) (string, bool){NumberedTitle, colonTitle, h1Title}
	for _, extract := range extractors {
		if t, ok := extract(generated); ok {
			if s := SanitizeFilename(t); s != "" {
				return s
			}
		}
	}

	return fmt.Sprintf("%s_%s", kind.Label(), now.Format("20060102_150405"))
}
