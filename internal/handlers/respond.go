package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"reportgen-ai/internal/contextutil"
	"reportgen-ai/internal/report"
	"reportgen-ai/internal/storage"
	"reportgen-ai/internal/template"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *report.ValidationError
	var missingPlaceholder *template.MissingPlaceholderError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, "Validation error: "+validationErr.Error())
	case errors.Is(err, report.ErrNoProjectName):
		writeError(w, http.StatusUnprocessableEntity,
			"No project name found: check that the generated text contains the 一、專案名稱 heading, or fill in the title field")
	case errors.Is(err, report.ErrGeneration):
		writeError(w, http.StatusBadGateway, "Generation failed: "+err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Session not found or has no generated report")
	case errors.As(err, &missingPlaceholder), errors.Is(err, report.ErrExport):
		writeError(w, http.StatusInternalServerError, defaultMsg+": "+err.Error())
	default:
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
