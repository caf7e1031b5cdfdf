package stamp

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/ardnew/cppstamp/syntax"
)

// Edit replaces the bytes of Span with Text.
type Edit struct {
	Text string      `json:"text" yaml:"text"`
	Span syntax.Span `json:"span" yaml:"span"`
}

// LogValue implements slog.LogValuer.
func (e Edit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("span", e.Span.String()),
		slog.String("text", e.Text),
	)
}

// sortEdits returns a copy of edits ordered by start offset after checking
// that every span lies within size bytes and no two spans overlap.
func sortEdits(size int, edits []Edit) ([]Edit, error) {
	sorted := slices.Clone(edits)

	for _, e := range sorted {
		if !e.Span.Valid(size) {
			return nil, ErrOutOfBounds.With(
				slog.String("span", e.Span.String()),
				slog.Int("size", size),
			)
		}
	}

	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Span.Overlaps(sorted[i].Span) {
			return nil, ErrOverlap.With(
				slog.String("first", sorted[i-1].Span.String()),
				slog.String("second", sorted[i].Span.String()),
			)
		}
	}

	return sorted, nil
}

// Apply returns a new buffer with every edit applied to src. Edits may be
// given in any order. The source buffer is not modified.
func Apply(src []byte, edits ...Edit) ([]byte, error) {
	sorted, err := sortEdits(len(src), edits)
	if err != nil {
		return nil, err
	}

	size := len(src)
	for _, e := range sorted {
		size += len(e.Text) - e.Span.Len()
	}

	out := make([]byte, 0, size)
	pos := 0

	for _, e := range sorted {
		out = append(out, src[pos:e.Span.Start]...)
		out = append(out, e.Text...)
		pos = e.Span.End
	}

	return append(out, src[pos:]...), nil
}

// ApplyReverse is equivalent to [Apply] but splices the edits into a copy of
// src from the highest offset down, so earlier offsets stay valid.
func ApplyReverse(src []byte, edits ...Edit) ([]byte, error) {
	sorted, err := sortEdits(len(src), edits)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(src)
	if out == nil {
		out = []byte{}
	}

	for _, e := range slices.Backward(sorted) {
		out = slices.Replace(out, e.Span.Start, e.Span.End, []byte(e.Text)...)
	}

	return out, nil
}
