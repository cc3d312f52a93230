package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseReportKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ReportKind
		wantErr bool
	}{
		{"closure-report", ClosureReport, false},
		{"requirement-doc", RequirementDoc, false},
		{" Closure-Report ", ClosureReport, false},
		{"", "", true},
		{"slide-deck", "", true},
	}
	for _, tt := range tests {
		got, err := ParseReportKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseReportKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseReportKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReportKind_Profile(t *testing.T) {
	if p := ClosureReport.Profile(); p.TemplateFile != "prompt_template.txt" || p.AccentColor != "FF8C00" {
		t.Errorf("ClosureReport profile = %+v", p)
	}
	if p := RequirementDoc.Profile(); p.TemplateFile != "requirement_template.txt" || p.AccentColor != "1E90FF" {
		t.Errorf("RequirementDoc profile = %+v", p)
	}
}

func TestRender(t *testing.T) {
	out, err := Render("專案：{title}，目標：{goal}", map[string]string{
		"title": "排程系統",
		"goal":  "自動化",
		"extra": "ignored",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "專案：排程系統，目標：自動化" {
		t.Errorf("Render() = %q", out)
	}
}

func TestRender_MissingPlaceholder(t *testing.T) {
	_, err := Render("{title} {goal} {goal}", map[string]string{"title": "x"})
	var missing *MissingPlaceholderError
	if !errors.As(err, &missing) {
		t.Fatalf("Render() error = %v, want MissingPlaceholderError", err)
	}
	if len(missing.Keys) != 1 || missing.Keys[0] != "goal" {
		t.Errorf("missing keys = %v, want [goal]", missing.Keys)
	}
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"prompt_template.txt", "requirement_template.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("請產出{title}的報告"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	prompt, err := store.Prompt(ClosureReport, map[string]string{"title": "排程系統"})
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if prompt != "請產出排程系統的報告" {
		t.Errorf("Prompt() = %q", prompt)
	}
}

func TestNewStore_MissingTemplateFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prompt_template.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(dir)
	if err == nil {
		t.Fatal("NewStore() expected error for missing requirement template")
	}
	if !strings.Contains(err.Error(), "requirement-doc") {
		t.Errorf("error %q does not name the missing kind", err)
	}
}
