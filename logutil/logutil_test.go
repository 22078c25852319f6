package logutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Debug("unsichtbar")
	logger.Info("sichtbar", "n", 1)

	out := buf.String()
	if strings.Contains(out, "unsichtbar") {
		t.Errorf("Debug-Ausgabe trotz Info-Level: %q", out)
	}
	if !strings.Contains(out, "msg=sichtbar") || !strings.Contains(out, "n=1") {
		t.Errorf("Info-Ausgabe fehlt: %q", out)
	}
	if strings.Contains(out, "source=") {
		t.Errorf("Quelle bei Info-Level: %q", out)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(NewLogger(&buf, LevelTrace))
	Trace("frame", "rows", 3)

	out := buf.String()
	if !strings.Contains(out, "level=TRACE") {
		t.Errorf("TRACE-Level fehlt: %q", out)
	}
	if !strings.Contains(out, "source=logutil/logutil_test.go:") {
		t.Errorf("gekuerzte Quelle fehlt: %q", out)
	}

	buf.Reset()
	slog.SetDefault(NewLogger(&buf, slog.LevelDebug))
	Trace("frame")
	if buf.Len() != 0 {
		t.Errorf("Trace bei Debug-Level: %q", buf.String())
	}
}
