package config

import (
	"strings"
	"testing"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error without GEMINI_API_KEY")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error %q does not name the missing credential", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_PATH", t.TempDir()+"/app.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.TemplatesDir != "./templates" {
		t.Errorf("TemplatesDir = %q", cfg.TemplatesDir)
	}
	if cfg.DefaultTemperature != 0.5 {
		t.Errorf("DefaultTemperature = %v", cfg.DefaultTemperature)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
}

func TestLoad_RejectsOutOfRangeTemperature(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_PATH", t.TempDir()+"/app.db")
	t.Setenv("DEFAULT_TEMPERATURE", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for temperature out of range")
	}
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_PATH", t.TempDir()+"/app.db")
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unknown log level")
	}
}
