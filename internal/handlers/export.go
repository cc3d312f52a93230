package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"reportgen-ai/internal/contextutil"
	"reportgen-ai/internal/docgen"
	"reportgen-ai/internal/report"
)

// ExportHandler handles artifact download requests. The slide and document
// endpoints fail independently: one format's export error never blocks the
// other download.
type ExportHandler struct {
	service report.Service
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(service report.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// Slides handles GET requests for the slide-deck artifact.
// The aspect query parameter selects the canvas (4x3 or 16x9, default 16x9).
func (h *ExportHandler) Slides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	aspect, err := docgen.ParseAspect(r.URL.Query().Get("aspect"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	artifact, filename, err := h.service.ExportSlides(ctx, sessionID, aspect)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to export slides")
		return
	}

	writeArtifact(w, r, artifact, filename)
}

// Document handles GET requests for the flow-document artifact.
func (h *ExportHandler) Document(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	artifact, filename, err := h.service.ExportDocument(ctx, sessionID)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to export document")
		return
	}

	writeArtifact(w, r, artifact, filename)
}

// writeArtifact streams a binary artifact as an attachment download.
// Filenames are mostly CJK, so the RFC 5987 encoded form is the one that
// matters; the plain filename is a fallback for old clients.
func writeArtifact(w http.ResponseWriter, r *http.Request, artifact docgen.Artifact, filename string) {
	logger := contextutil.LoggerFromContext(r.Context())

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="report%s"; filename*=UTF-8''%s`,
			artifact.Ext, url.PathEscape(filename)))

	if _, err := w.Write(artifact.Data); err != nil {
		logger.ErrorContext(r.Context(), "failed to write artifact", "error", err)
	}
}
