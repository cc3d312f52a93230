package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"reportgen-ai/internal/config"
	"reportgen-ai/internal/http"
	"reportgen-ai/internal/llm"
	"reportgen-ai/internal/report"
	"reportgen-ai/internal/storage"
	"reportgen-ai/internal/template"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Load prompt templates; a missing template file is fatal before any
	// generation can be attempted.
	templates, err := template.NewStore(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	slog.Info("Templates loaded", "dir", cfg.TemplatesDir)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	sessionRepo := storage.NewSessionRepo(db)

	// Create generation client (external service layer)
	generator := llm.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)

	// Create report service
	reportService := report.NewService(sessionRepo, templates, generator)
	slog.Info("Report service initialized")

	// Create router with dependencies
	deps := &http.Deps{
		ReportService:      reportService,
		DB:                 db,
		DefaultTemperature: cfg.DefaultTemperature,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Generation configuration", "base_url", cfg.GeminiBaseURL, "model", cfg.GeminiModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
