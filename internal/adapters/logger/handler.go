package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/Pa04rth/OpenCRE/internal/ui/output"
	"github.com/Pa04rth/OpenCRE/internal/ui/style"
	"github.com/muesli/termenv"
)

// PrettyHandler prints each record as a single colored terminal line:
// a level glyph, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler returns a handler printing to w, or to stderr when w is nil.
// opts.Level is consulted per record, so a *slog.LevelVar may be swapped at runtime.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Record is passed by value in the slog.Handler signature
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark, color := levelMark(r.Level)

	var line strings.Builder
	if mark != "" {
		line.WriteString(mark)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)
	for _, attr := range h.attrs {
		line.WriteByte(' ')
		line.WriteString(attrText(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteByte(' ')
		line.WriteString(attrText(h.group, attr))
		return true
	})

	_, err := h.out.WriteString(h.out.String(line.String()).Foreground(color).String() + "\n")
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(slices.Clip(h.attrs), attrs...)
	return &c
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name
	return &c
}

// levelMark maps a level to its glyph and color. Info lines carry no glyph.
func levelMark(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case level >= slog.LevelInfo:
		return "", termenv.RGBColor(string(style.Slate))
	default:
		return style.Dot, termenv.RGBColor(string(style.Iris))
	}
}

func attrText(group string, attr slog.Attr) string {
	if group == "" {
		return attr.Key + "=" + attr.Value.String()
	}
	return group + "." + attr.Key + "=" + attr.Value.String()
}
