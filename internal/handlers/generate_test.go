package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reportgen-ai/internal/report"
	"reportgen-ai/internal/report/mocks"
	"reportgen-ai/internal/template"

	"go.uber.org/mock/gomock"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGenerateHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		method        string
		body          any
		mockSetup     func(*mocks.MockService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful generation",
			method: http.MethodPost,
			body: GenerateRequest{
				ReportKind: "closure-report",
				Blocks:     map[string]string{"goal": "自動化排班"},
				Selected:   []string{"goal"},
			},
			mockSetup: func(m *mocks.MockService) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req report.GenerateRequest) (report.GenerateResult, error) {
						if req.Kind != template.ClosureReport {
							t.Errorf("kind = %q", req.Kind)
						}
						if req.Temperature != 0.5 {
							t.Errorf("temperature = %v, want handler default", req.Temperature)
						}
						return report.GenerateResult{
							SessionID:    "abc",
							FilenameBase: "排程系統",
							Text:         "# 排程系統\n內容",
						}, nil
					})
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp GenerateResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.SessionID != "abc" || resp.FilenameBase != "排程系統" {
					t.Errorf("response = %+v", resp)
				}
				if !strings.Contains(resp.PreviewHTML, "<h1") {
					t.Errorf("preview HTML missing rendered heading: %q", resp.PreviewHTML)
				}
			},
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			mockSetup:  func(m *mocks.MockService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "not json",
			mockSetup:  func(m *mocks.MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown report kind",
			method: http.MethodPost,
			body: GenerateRequest{
				ReportKind: "slide-deck",
				Selected:   []string{"goal"},
			},
			mockSetup:  func(m *mocks.MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "validation error from service",
			method: http.MethodPost,
			body: GenerateRequest{
				ReportKind: "closure-report",
				Selected:   []string{"goal"},
			},
			mockSetup: func(m *mocks.MockService) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(report.GenerateResult{}, &report.ValidationError{Field: "goal", Message: "selected blocks must not be blank"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "generation backend failure",
			method: http.MethodPost,
			body: GenerateRequest{
				ReportKind: "requirement-doc",
				Blocks:     map[string]string{"goal": "x"},
				Selected:   []string{"goal"},
			},
			mockSetup: func(m *mocks.MockService) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(report.GenerateResult{}, report.WrapError(report.ErrGeneration, "backend"))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "strict title miss",
			method: http.MethodPost,
			body: GenerateRequest{
				ReportKind:  "closure-report",
				Blocks:      map[string]string{"goal": "x"},
				Selected:    []string{"goal"},
				StrictTitle: true,
			},
			mockSetup: func(m *mocks.MockService) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(report.GenerateResult{}, report.ErrNoProjectName)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockService(ctrl)
			tt.mockSetup(mockService)
			handler := NewGenerateHandler(mockService, 0.5)

			var body bytes.Buffer
			if tt.body != nil {
				if s, ok := tt.body.(string); ok {
					body.WriteString(s)
				} else if err := json.NewEncoder(&body).Encode(tt.body); err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(tt.method, "/api/reports", &body)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGenerateHandler_ExplicitTemperature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockService(ctrl)
	mockService.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req report.GenerateRequest) (report.GenerateResult, error) {
			if req.Temperature != 0.9 {
				t.Errorf("temperature = %v, want 0.9", req.Temperature)
			}
			return report.GenerateResult{SessionID: "s", FilenameBase: "b"}, nil
		})

	handler := NewGenerateHandler(mockService, 0.5)

	temp := 0.9
	body, _ := json.Marshal(GenerateRequest{
		ReportKind:  "closure-report",
		Blocks:      map[string]string{"goal": "x"},
		Selected:    []string{"goal"},
		Temperature: &temp,
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
