// Package colorlog provides a compact, colorized log/slog handler for
// command-line tools and development builds.
package colorlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	colorReset = "\033[0m"
	colorDebug = "\033[90m" // Gray
	colorInfo  = "\033[36m" // Light blue
	colorWarn  = "\033[33m" // Yellow
	colorError = "\033[31m" // Red

	timeFormat = "2006/01/02 15:04:05"
)

type ColorLogHandler struct {
	mu       *sync.Mutex
	output   io.Writer
	label    string
	level    slog.Leveler
	useColor bool
	prefix   string // dotted group path for attribute keys
	attrs    []slog.Attr
}

// New returns a logger writing to stderr at info level. Colors are only
// emitted when stderr is a terminal.
func New(label string) *slog.Logger {
	return NewWithLevel(label, slog.LevelInfo)
}

func NewWithLevel(label string, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(os.Stderr, label, level))
}

// NewHandler returns a handler writing to w. If w is an *os.File, colors are
// enabled when it refers to a terminal.
func NewHandler(w io.Writer, label string, level slog.Leveler) *ColorLogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ColorLogHandler{
		mu:       &sync.Mutex{},
		output:   w,
		label:    label,
		level:    level,
		useColor: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (h *ColorLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ColorLogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(timeFormat))
		b.WriteByte(' ')
	}
	if h.label != "" {
		b.WriteString(h.label)
		b.WriteByte(' ')
	}
	b.WriteString(h.paint(levelToColor(r.Level), r.Level.String()))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

func (h *ColorLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

func (h *ColorLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func (h *ColorLogHandler) writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.writeAttr(b, groupPrefix, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s %s%s%v %s",
		h.paint(colorDebug, "["),
		prefix+a.Key,
		h.paint(colorDebug, "="),
		a.Value.Any(),
		h.paint(colorDebug, "]"),
	)
}

func (h *ColorLogHandler) paint(color, s string) string {
	if !h.useColor || color == "" {
		return s
	}
	return color + s + colorReset
}

func levelToColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorError
	case level >= slog.LevelWarn:
		return colorWarn
	case level >= slog.LevelInfo:
		return colorInfo
	default:
		return colorDebug
	}
}
