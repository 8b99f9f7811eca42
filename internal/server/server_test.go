package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/singhprateek87/bhavna/internal/platform/correlation"
)

// captureLogs routes the default logger into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	handler := correlation.NewHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(slog.New(handler))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestRequestLogging_EmitsAccessLine(t *testing.T) {
	buf := captureLogs(t)
	srv := newTestServer(t, &mockAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	output := buf.String()
	assert.Contains(t, output, "Request handled")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "uri=/")
	assert.Contains(t, output, "status=200")
	assert.Contains(t, output, "correlation_id=")
}

func TestRequestLogging_RecordsErrorStatus(t *testing.T) {
	buf := captureLogs(t)
	srv := newTestServer(t, &mockAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	output := buf.String()
	assert.Contains(t, output, "Request handled")
	assert.Contains(t, output, "status=404")
}
