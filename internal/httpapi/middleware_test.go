package httpapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sven-0414/nhl-data-service/internal/logging"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := LoggingMiddleware(nil, nil, next)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/2025-01-10", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if seenID != "req-123" {
		t.Fatalf("expected inbound request id propagated, got %q", seenID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := LoggingMiddleware(nil, nil, next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id generated when absent")
	}
}

func TestLoggingMiddlewareLogsStatusAndPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handler := LoggingMiddleware(logger, nil, next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	if !strings.Contains(out, `"status_code":404`) {
		t.Fatalf("expected status code logged, got %s", out)
	}
	if !strings.Contains(out, `"path":"/missing"`) {
		t.Fatalf("expected path logged, got %s", out)
	}
}

func TestLoggingMiddlewareInstallsContextLogger(t *testing.T) {
	var hadLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadLogger = logging.FromContext(r.Context(), nil) != nil
	})

	handler := LoggingMiddleware(nil, nil, next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if !hadLogger {
		t.Fatal("expected logger installed on request context")
	}
}

func TestGenerateRequestIDIsUnique(t *testing.T) {
	a := generateRequestID()
	b := generateRequestID()
	if a == "" || a == b {
		t.Fatalf("expected distinct ids, got %q and %q", a, b)
	}
}
