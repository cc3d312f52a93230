// Package template owns the report kinds and their prompt templates.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ReportKind identifies one of the two supported report formats.
type ReportKind string

const (
	ClosureReport  ReportKind = "closure-report"
	RequirementDoc ReportKind = "requirement-doc"
)

// ParseReportKind maps a request value to a ReportKind.
func ParseReportKind(s string) (ReportKind, error) {
	switch ReportKind(strings.ToLower(strings.TrimSpace(s))) {
	case ClosureReport:
		return ClosureReport, nil
	case RequirementDoc:
		return RequirementDoc, nil
	default:
		return "", fmt.Errorf("unknown report kind %q", s)
	}
}

// Label is the human-facing kind name, also used in timestamp-fallback
// filenames.
func (k ReportKind) Label() string {
	if k == RequirementDoc {
		return "需求文件"
	}
	return "結案報告"
}

// Profile binds a report kind to its template file and accent color.
type Profile struct {
	Kind         ReportKind
	TemplateFile string
	AccentColor  string // RRGGBB
}

var profiles = map[ReportKind]Profile{
	ClosureReport:  {Kind: ClosureReport, TemplateFile: "prompt_template.txt", AccentColor: "FF8C00"},
	RequirementDoc: {Kind: RequirementDoc, TemplateFile: "requirement_template.txt", AccentColor: "1E90FF"},
}

// Profile returns the lookup entry for the kind.
func (k ReportKind) Profile() Profile {
	if p, ok := profiles[k]; ok {
		return p
	}
	return profiles[ClosureReport]
}

// MissingPlaceholderError reports template placeholders with no value.
type MissingPlaceholderError struct {
	Keys []string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("template placeholders without values: %s", strings.Join(e.Keys, ", "))
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Render substitutes named {placeholder} fields into the template. Every
// placeholder appearing in the template must have a value in fields; extra
// keys in fields are ignored.
func Render(tmpl string, fields map[string]string) (string, error) {
	var missing []string
	seen := map[string]bool{}

	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := fields[key]
		if !ok {
			if !seen[key] {
				seen[key] = true
				missing = append(missing, key)
			}
			return m
		}
		return v
	})

	if len(missing) > 0 {
		return "", &MissingPlaceholderError{Keys: missing}
	}
	return out, nil
}

// Store holds the prompt templates, loaded once at startup. A missing
// template file is a configuration error and fails construction.
type Store struct {
	templates map[ReportKind]string
}

// NewStore reads every profile's template file from dir.
func NewStore(dir string) (*Store, error) {
	s := &Store{templates: make(map[ReportKind]string)}
	for kind, p := range profiles {
		path := filepath.Join(dir, p.TemplateFile)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("template file for %s: %w", kind, err)
		}
		s.templates[kind] = string(raw)
	}
	return s, nil
}

// Prompt renders the kind's template with the given field values.
func (s *Store) Prompt(kind ReportKind, fields map[string]string) (string, error) {
	tmpl, ok := s.templates[kind]
	if !ok {
		return "", fmt.Errorf("no template loaded for kind %q", kind)
	}
	return Render(tmpl, fields)
}
