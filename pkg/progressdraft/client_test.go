package progressdraft

import (
	"basecase_backend/pkg/srs"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPSaverSave(t *testing.T) {
	solvedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	next := solvedAt.AddDate(0, 0, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/progress/two-sum" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("unexpected auth header %q", got)
		}

		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		if !payload.Solved {
			t.Error("expected solved=true in payload")
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Success",
			"data": Record{
				Solved:      true,
				SolvedAt:    &solvedAt,
				Interval:    1,
				NextAttempt: &next,
			},
		})
	}))
	defer server.Close()

	saver := NewHTTPSaver(server.URL, "token-123", "two-sum")
	c := srs.High
	record, err := saver.Save(context.Background(), Payload{Solved: true, ConfidenceLevel: &c})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !record.Solved || record.Interval != 1 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.SolvedAt == nil || !record.SolvedAt.Equal(solvedAt) {
		t.Fatalf("expected server solvedAt, got %v", record.SolvedAt)
	}
}

func TestHTTPSaverRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "a solved problem cannot be marked unsolved",
			"data":    nil,
		})
	}))
	defer server.Close()

	saver := NewHTTPSaver(server.URL, "token-123", "two-sum")
	if _, err := saver.Save(context.Background(), Payload{Solved: false}); err == nil {
		t.Fatal("expected rejection error")
	}
}

func TestHTTPSaverGarbageResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	saver := NewHTTPSaver(server.URL, "token-123", "two-sum")
	if _, err := saver.Save(context.Background(), Payload{}); err == nil {
		t.Fatal("expected error on non-JSON response")
	}
}
