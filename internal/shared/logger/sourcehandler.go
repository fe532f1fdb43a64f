package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	next    slog.Handler
	enabled map[slog.Level]struct{}
}

// NewConditionalSourceHandler attaches the caller location to records whose
// level is listed. The wrapped handler must be built with AddSource disabled.
func NewConditionalSourceHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	enabled := make(map[slog.Level]struct{}, len(levels))
	for _, lvl := range levels {
		enabled[lvl] = struct{}{}
	}
	return &conditionalSourceHandler{next: next, enabled: enabled}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if _, ok := h.enabled[r.Level]; ok {
		r.AddAttrs(slog.Any(slog.SourceKey, callerSource()))
	}
	return h.next.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{next: h.next.WithAttrs(attrs), enabled: h.enabled}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{next: h.next.WithGroup(name), enabled: h.enabled}
}

// callerSource skips runtime.Callers, this function, Handle and the slog frame.
func callerSource() *slog.Source {
	var pcs [1]uintptr
	runtime.Callers(4, pcs[:])
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return &slog.Source{Function: frame.Function, File: frame.File, Line: frame.Line}
}
