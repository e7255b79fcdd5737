// Package testutil provides test helpers shared by the calc packages.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/zephyrtronium/calculator/internal/config"
)

// NewTestLogger returns a debug-level logger that writes to t.Log, built the
// same way the CLI builds its logger. format is "text" or "json".
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB, format string) *slog.Logger {
	t.Helper()
	cfg := config.Default()
	cfg.LogFormat = format
	cfg.Verbose = true
	return cfg.NewLogger(Writer(t))
}

// Writer returns a writer that sends each write to t.Log as one entry.
func Writer(t testing.TB) io.Writer {
	return testWriter{t}
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
