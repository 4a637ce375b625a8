package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSlogLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(WithOutput(&buf), WithJSON(), WithLevel(slog.LevelWarn))

	log.Info("dropped")
	log.With(String("build_id", "b1")).Warn("homepage block does not fill its layout", Int("block", 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["build_id"] != "b1" || entry["block"] != float64(2) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(WithOutput(&buf), WithJSON())

	var inner http.ResponseWriter
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = w
		L(r.Context()).Info("serving users page")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(buf.String(), `"status":418`) {
		t.Errorf("status not logged: %s", buf.String())
	}
	reqID := rec.Header().Get(RequestIDHeader)
	if reqID == "" {
		t.Fatal("no request id header")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, `"request_id":"`+reqID+`"`) {
			t.Errorf("line missing request id %s: %s", reqID, line)
		}
	}

	u, ok := inner.(interface{ Unwrap() http.ResponseWriter })
	if !ok || u.Unwrap() != rec {
		t.Error("wrapped writer does not unwrap to the original")
	}
}

func TestRequestLogger_KeepsCallerID(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(NewSlogLogger(WithOutput(&buf), WithJSON()))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken build", http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("request id header = %q", got)
	}
	out := buf.String()
	if !strings.Contains(out, `"request_id":"abc"`) || !strings.Contains(out, `"level":"WARN"`) {
		t.Errorf("failed request not logged as warning: %s", out)
	}
	if !strings.Contains(out, `"bytes":13`) {
		t.Errorf("bytes not counted: %s", out)
	}
}

func TestL_FallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(NewSlogLogger(WithOutput(&buf)))
	defer SetDefault(NopLogger{})

	L(context.Background()).Info("fallback")
	if !strings.Contains(buf.String(), "msg=fallback") {
		t.Errorf("default logger not used: %q", buf.String())
	}

	ctx := ContextWithLogger(context.Background(), NopLogger{})
	L(ctx).Info("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("context logger ignored")
	}
}
