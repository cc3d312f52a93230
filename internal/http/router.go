package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"reportgen-ai/internal/handlers"
	"reportgen-ai/internal/report"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ReportService      report.Service
	DB                 *sql.DB
	DefaultTemperature float64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS and context-logger middleware
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	generateHandler := handlers.NewGenerateHandler(deps.ReportService, deps.DefaultTemperature)
	exportHandler := handlers.NewExportHandler(deps.ReportService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/reports", generateHandler)
		r.Get("/reports/{sessionID}/slides", exportHandler.Slides)
		r.Get("/reports/{sessionID}/document", exportHandler.Document)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
