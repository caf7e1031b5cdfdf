package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of pretty text output. Colors are dropped when
// the output is not a terminal.
type palette struct {
	key, str, num, yes, no, dur, time lipgloss.Style
	level                             map[Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	style := func(color string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(color)).TabWidth(lipgloss.NoTabConversion)
	}

	return palette{
		key:  style("8"),
		str:  style("6"),
		num:  style("3"),
		yes:  style("2"),
		no:   style("1"),
		dur:  style("5"),
		time: style("4"),
		level: map[Level]lipgloss.Style{
			LevelTrace: style("4"),
			LevelDebug: style("4"),
			LevelInfo:  style("2"),
			LevelWarn:  style("3"),
			LevelError: style("1"),
		},
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	colors palette
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:   *opts,
		colors: newPalette(w),
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, h.replace(nil, slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeAttr(buf, h.replace(nil, slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.replace(h.groups, a))

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)

	for _, a := range attrs {
		merged = append(merged, h.replace(h.groups, a))
	}

	return &prettyTextHandler{
		opts:   h.opts,
		colors: h.colors,
		mu:     h.mu,
		w:      h.w,
		attrs:  merged,
		groups: h.groups,
	}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &prettyTextHandler{
		opts:   h.opts,
		colors: h.colors,
		mu:     h.mu,
		w:      h.w,
		attrs:  h.attrs,
		groups: append(h.groups[:len(h.groups):len(h.groups)], name),
	}
}

// replace applies the configured ReplaceAttr hook and qualifies the key with
// any open groups.
func (h *prettyTextHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(groups, a)
	}

	if a.Key != "" && len(groups) > 0 {
		a.Key = strings.Join(groups, ".") + "." + a.Key
	}

	return a
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()

	// Empty attributes are dropped, matching slog's built-in handlers.
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			if a.Key != "" {
				ga.Key = a.Key + "." + ga.Key
			}

			h.writeAttr(buf, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.colors.key.Render(a.Key))
	buf.WriteByte('=')

	h.writeValue(buf, a.Key, a.Value)
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, key string, v slog.Value) {
	c := h.colors

	switch v.Kind() {
	case slog.KindString:
		if key == slog.LevelKey {
			buf.WriteString(c.level[ParseLevel(v.String())].Render(v.String()))

			break
		}

		buf.WriteString(c.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(c.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(c.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(c.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(c.yes.Render("true"))
		} else {
			buf.WriteString(c.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(c.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(c.time.Render(v.Time().String()))

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			name := Level(level).String()
			buf.WriteString(c.level[Level(level)].Render(strings.ToUpper(name)))

			break
		}

		fallthrough

	default:
		buf.WriteString(c.str.Render(v.String()))
	}
}
