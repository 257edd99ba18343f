package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuccess_WrapsPayloadInData(t *testing.T) {
	rr := httptest.NewRecorder()

	Success(rr, []string{"a", "b"})

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body["data"]) != 2 {
		t.Errorf("expected 2 items under data, got %v", body)
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantKind   string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "m") }, http.StatusBadRequest, KindValidation},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "m") }, http.StatusNotFound, KindNotFound},
		{"method not allowed", func(w http.ResponseWriter) { MethodNotAllowed(w, "m") }, http.StatusMethodNotAllowed, KindMethodNotAllowed},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "m") }, http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.write(rr)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}

			var body ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Error != tt.wantKind || body.Message != "m" {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestNoContent_HasEmptyBody(t *testing.T) {
	rr := httptest.NewRecorder()

	NoContent(rr)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rr.Body.String())
	}
}
