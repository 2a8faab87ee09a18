package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	got := loggerFromContext(ctx)

	got.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output, got %q", buf.String())
	}
}

func TestLoggerFromContext_FallsBackToDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("expected a usable fallback logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)

	logger.Debug("quiet")
	if strings.Contains(buf.String(), "quiet") {
		t.Error("debug message should be filtered at info level")
	}

	logger.Info("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Error("info message missing")
	}
}

func TestProgressLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)

	p := newProgress(logger)
	p.done("Packed 3 items")

	out := buf.String()
	if !strings.Contains(out, "Packed 3 items") {
		t.Errorf("expected completion message, got %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("expected elapsed duration in output, got %q", out)
	}
}
