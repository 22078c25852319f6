// Package logutil baut den slog-Logger fuer ranobe.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// LevelTrace liegt unter Debug und ist ueber RANOBE_DEBUG=2 erreichbar
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger. Ab Debug wird die Quelle mit
// geloggt, gekuerzt auf Verzeichnis und Datei.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level < slog.LevelInfo,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if l, ok := attr.Value.Any().(slog.Level); ok && l == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Join(filepath.Base(filepath.Dir(source.File)), filepath.Base(source.File))
				}
			}
			return attr
		},
	}))
}

// Trace loggt auf LevelTrace mit der Quelle des Aufrufers
func Trace(msg string, args ...any) {
	trace(context.Background(), msg, args...)
}

// TraceContext loggt auf LevelTrace mit Kontext
func TraceContext(ctx context.Context, msg string, args ...any) {
	trace(ctx, msg, args...)
}

func trace(ctx context.Context, msg string, args ...any) {
	logger := slog.Default()
	if !logger.Enabled(ctx, LevelTrace) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), LevelTrace, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}
