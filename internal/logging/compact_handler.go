package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// compactHandler renders records as `[LEVEL] HH:MM:SS message | k=v k=v`,
// which reads better on a terminal than the stdlib text handler.
type compactHandler struct {
	level slog.Level
	mu    sync.Mutex
	out   io.Writer
	attrs []slog.Attr
}

func newCompactHandler(w io.Writer, level slog.Level) *compactHandler {
	return &compactHandler{level: level, out: w}
}

func (h *compactHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *compactHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)
	buf = append(buf, fmt.Sprintf("[%-5s] ", r.Level.String())...)
	buf = append(buf, r.Time.Format("15:04:05")...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	sep := false
	emit := func(a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		if !sep {
			buf = append(buf, " |"...)
			sep = true
		}
		buf = append(buf, ' ')
		buf = append(buf, a.Key...)
		buf = append(buf, '=')
		s := a.Value.String()
		if strings.ContainsAny(s, " \t\"=") {
			buf = append(buf, fmt.Sprintf("%q", s)...)
		} else {
			buf = append(buf, s...)
		}
	}
	for _, a := range h.attrs {
		emit(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		emit(a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *compactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &compactHandler{
		level: h.level,
		out:   h.out,
		attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func (h *compactHandler) WithGroup(string) slog.Handler { return h }
