package report

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_generator.go -package=mocks reportgen-ai/internal/report Generator
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks -mock_names=Service=MockService reportgen-ai/internal/report Service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reportgen-ai/internal/contextutil"
	"reportgen-ai/internal/docgen"
	"reportgen-ai/internal/sections"
	"reportgen-ai/internal/storage"
	"reportgen-ai/internal/template"
)

// Generator is an interface for the external text-generation backend.
// This interface is defined from the service layer's perspective (consumer-first).
type Generator interface {
	// GenerateContent sends the prompt to the model and returns the
	// generated text, which may be empty.
	GenerateContent(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Fields holds the six free-text content blocks of a report request.
type Fields struct {
	Title      string
	Goal       string
	Benefit    string
	Process    string
	Schedule   string
	Assignment string
}

// blockNames lists the selectable content blocks in display order.
var blockNames = []string{"title", "goal", "benefit", "process", "schedule", "assignment"}

func (f Fields) value(block string) (string, bool) {
	switch block {
	case "title":
		return f.Title, true
	case "goal":
		return f.Goal, true
	case "benefit":
		return f.Benefit, true
	case "process":
		return f.Process, true
	case "schedule":
		return f.Schedule, true
	case "assignment":
		return f.Assignment, true
	default:
		return "", false
	}
}

// placeholderMap builds the template substitution values. Every placeholder
// the templates may reference gets a value, so rendering never trips the
// missing-placeholder check on user input.
func (f Fields) placeholderMap(domainHint string) map[string]string {
	display := ""
	if strings.TrimSpace(domainHint) != "" {
		display = "目標領域：" + strings.TrimSpace(domainHint)
	}
	return map[string]string{
		"title":               f.Title,
		"goal":                f.Goal,
		"benefit":             f.Benefit,
		"process":             f.Process,
		"schedule":            f.Schedule,
		"assignment":          f.Assignment,
		"domain_hint":         strings.TrimSpace(domainHint),
		"domain_hint_display": display,
	}
}

// GenerateRequest carries one generation run's inputs.
type GenerateRequest struct {
	SessionID   string // empty for a new session
	Kind        template.ReportKind
	Fields      Fields
	Selected    []string
	Temperature float64
	StrictTitle bool
	DomainHint  string
}

// GenerateResult is the outcome of a successful generation run.
type GenerateResult struct {
	SessionID    string
	FilenameBase string
	Text         string
}

// Service runs the report pipeline: prompt rendering, generation, title
// decision, session persistence and artifact export.
type Service interface {
	// Generate validates the request, calls the generation backend and
	// stores the session state.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
	// ExportSlides builds the slide-deck artifact for a session.
	// It returns the artifact and its download filename.
	ExportSlides(ctx context.Context, sessionID string, aspect docgen.Aspect) (docgen.Artifact, string, error)
	// ExportDocument builds the flow-document artifact for a session.
	ExportDocument(ctx context.Context, sessionID string) (docgen.Artifact, string, error)
}

// reportService implements Service.
type reportService struct {
	store     storage.SessionStore
	templates *template.Store
	generator Generator
	now       func() time.Time
}

// NewService creates a new report Service.
func NewService(store storage.SessionStore, templates *template.Store, generator Generator) Service {
	return &reportService{
		store:     store,
		templates: templates,
		generator: generator,
		now:       time.Now,
	}
}

// Generate runs one generation: validate, render the prompt, call the
// backend, decide the filename base and overwrite the session record.
func (s *reportService) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateRequest(req); err != nil {
		logger.WarnContext(ctx, "invalid generate request", "error", err)
		return GenerateResult{}, err
	}

	prompt, err := s.templates.Prompt(req.Kind, req.Fields.placeholderMap(req.DomainHint))
	if err != nil {
		return GenerateResult{}, WrapError(err, "failed to render prompt")
	}

	text, err := s.generator.GenerateContent(ctx, prompt, req.Temperature)
	if err != nil {
		logger.ErrorContext(ctx, "generation backend failed", "error", err)
		// Reset the stored text so a stale report cannot be exported after
		// a failed regeneration.
		if req.SessionID != "" {
			reset := &storage.SessionRecord{
				ID:         req.SessionID,
				ReportKind: string(req.Kind),
				UserTitle:  req.Fields.Title,
			}
			if uerr := s.store.Upsert(ctx, reset); uerr != nil {
				logger.ErrorContext(ctx, "failed to reset session after generation error", "error", uerr)
			}
		}
		return GenerateResult{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	base := s.decideBase(req, text)

	rec := &storage.SessionRecord{
		ID:            req.SessionID,
		ReportKind:    string(req.Kind),
		UserTitle:     req.Fields.Title,
		GeneratedText: text,
		FilenameBase:  base,
	}
	if err := s.store.Upsert(ctx, rec); err != nil {
		return GenerateResult{}, WrapError(err, "failed to persist session")
	}

	if base == "" {
		// Strict mode and no project-name heading: the text is stored but
		// both exports stay blocked.
		return GenerateResult{}, ErrNoProjectName
	}

	logger.InfoContext(ctx, "report generated",
		"session_id", rec.ID, "kind", req.Kind, "text_length", len(text), "filename_base", base)
	return GenerateResult{SessionID: rec.ID, FilenameBase: base, Text: text}, nil
}

// decideBase picks the filename base. In strict mode without a user title,
// only the legacy numbered heading counts and a miss leaves the base empty.
func (s *reportService) decideBase(req GenerateRequest, text string) string {
	if req.StrictTitle && strings.TrimSpace(req.Fields.Title) == "" {
		if t, ok := NumberedTitle(text); ok {
			return SanitizeFilename(t)
		}
		return ""
	}
	return DecideTitle(req.Fields.Title, text, req.Kind, s.now())
}

// ExportSlides builds the slide deck for a session. Slide and document
// exports fail independently of each other.
func (s *reportService) ExportSlides(ctx context.Context, sessionID string, aspect docgen.Aspect) (docgen.Artifact, string, error) {
	rec, err := s.exportableSession(ctx, sessionID)
	if err != nil {
		return docgen.Artifact{}, "", err
	}

	secs := sections.Segment(rec.GeneratedText)
	accent := template.ReportKind(rec.ReportKind).Profile().AccentColor
	art, err := docgen.BuildSlides(secs, rec.GeneratedText, rec.FilenameBase, accent, aspect)
	if err != nil {
		return docgen.Artifact{}, "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return art, rec.FilenameBase + aspect.Suffix() + art.Ext, nil
}

// ExportDocument builds the flow document for a session.
func (s *reportService) ExportDocument(ctx context.Context, sessionID string) (docgen.Artifact, string, error) {
	rec, err := s.exportableSession(ctx, sessionID)
	if err != nil {
		return docgen.Artifact{}, "", err
	}

	secs := sections.Segment(rec.GeneratedText)
	art, err := docgen.BuildDocument(secs, rec.GeneratedText)
	if err != nil {
		return docgen.Artifact{}, "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return art, rec.FilenameBase + art.Ext, nil
}

// exportableSession loads a session that has text to export and a usable
// filename base.
func (s *reportService) exportableSession(ctx context.Context, sessionID string) (*storage.SessionRecord, error) {
	rec, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rec.GeneratedText) == "" {
		return nil, fmt.Errorf("session %s has no generated report: %w", sessionID, storage.ErrNotFound)
	}
	if rec.FilenameBase == "" {
		return nil, ErrNoProjectName
	}
	return rec, nil
}

// validateRequest checks the block selection: at least one block, all names
// known, no selected block left blank. Blank blocks are reported together so
// the user sees the full list at once.
func validateRequest(req GenerateRequest) error {
	if len(req.Selected) == 0 {
		return &ValidationError{Field: "selected", Message: "at least one content block must be selected"}
	}

	var blank []string
	for _, name := range req.Selected {
		v, ok := req.Fields.value(name)
		if !ok {
			return &ValidationError{
				Field:   name,
				Message: fmt.Sprintf("unknown content block (want one of %s)", strings.Join(blockNames, ", ")),
			}
		}
		if strings.TrimSpace(v) == "" {
			blank = append(blank, name)
		}
	}
	if len(blank) > 0 {
		return &ValidationError{Field: strings.Join(blank, ", "), Message: "selected blocks must not be blank"}
	}
	return nil
}
