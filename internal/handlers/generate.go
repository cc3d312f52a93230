package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"reportgen-ai/internal/contextutil"
	"reportgen-ai/internal/report"
	"reportgen-ai/internal/template"
)

// GenerateHandler handles HTTP requests for report generation.
type GenerateHandler struct {
	service            report.Service
	defaultTemperature float64
	markdown           goldmark.Markdown
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(service report.Service, defaultTemperature float64) *GenerateHandler {
	return &GenerateHandler{
		service:            service,
		defaultTemperature: defaultTemperature,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// GenerateRequest represents the HTTP request payload for generation.
type GenerateRequest struct {
	SessionID   string            `json:"session_id,omitempty"`
	ReportKind  string            `json:"report_kind"`
	Blocks      map[string]string `json:"blocks"`
	Selected    []string          `json:"selected"`
	Temperature *float64          `json:"temperature,omitempty"`
	StrictTitle bool              `json:"strict_title,omitempty"`
	DomainHint  string            `json:"domain_hint,omitempty"`
}

// GenerateResponse represents the HTTP response payload for generation.
type GenerateResponse struct {
	SessionID     string `json:"session_id"`
	FilenameBase  string `json:"filename_base"`
	GeneratedText string `json:"generated_text"`
	PreviewHTML   string `json:"preview_html"`
}

// ServeHTTP handles HTTP requests for report generation.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	kind, err := template.ParseReportKind(req.ReportKind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	temperature := h.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	svcReq := report.GenerateRequest{
		SessionID: req.SessionID,
		Kind:      kind,
		Fields: report.Fields{
			Title:      req.Blocks["title"],
			Goal:       req.Blocks["goal"],
			Benefit:    req.Blocks["benefit"],
			Process:    req.Blocks["process"],
			Schedule:   req.Blocks["schedule"],
			Assignment: req.Blocks["assignment"],
		},
		Selected:    req.Selected,
		Temperature: temperature,
		StrictTitle: req.StrictTitle,
		DomainHint:  req.DomainHint,
	}

	result, err := h.service.Generate(ctx, svcReq)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to generate report")
		return
	}

	resp := GenerateResponse{
		SessionID:     result.SessionID,
		FilenameBase:  result.FilenameBase,
		GeneratedText: result.Text,
		PreviewHTML:   h.renderPreview(result.Text),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// renderPreview converts the generated markdown to HTML for the caller's
// preview pane. A conversion failure falls back to no preview rather than
// failing the whole request.
func (h *GenerateHandler) renderPreview(text string) string {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(text), &buf); err != nil {
		return ""
	}
	return buf.String()
}
