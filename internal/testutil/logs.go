package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// NewBufferLogger returns a debug-level text logger and the buffer it writes to.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogged fails the test unless every fragment appears in the captured output.
func AssertLogged(t testing.TB, buf *bytes.Buffer, fragments ...string) {
	t.Helper()
	out := buf.String()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected log output to contain %q, got:\n%s", fragment, out)
		}
	}
}
