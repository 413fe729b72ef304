package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postAsUser(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), "userID", int64(1)))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAnalyzeRetentionRejectsIncompleteInput(t *testing.T) {
	h := NewAPIHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing image", `{"link":"https://example.com/v/1"}`},
		{"missing link", `{"image":{"mime_type":"image/png","data":"iVBORw0K"}}`},
		{"missing both", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postAsUser(t, h.AnalyzeRetentionHandler, "/api/analysis/retention", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), msgAnalysisInputMissing) {
				t.Errorf("unexpected error body %q", rec.Body.String())
			}
		})
	}
}

func TestAnalyzeRetentionRejectsBadImageEncoding(t *testing.T) {
	h := NewAPIHandler(nil)

	body := `{"link":"https://example.com/v/1","image":{"mime_type":"image/png","data":"ليس-base64"}}`
	rec := postAsUser(t, h.AnalyzeRetentionHandler, "/api/analysis/retention", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
