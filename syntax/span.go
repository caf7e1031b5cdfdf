package syntax

import "strconv"

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Valid reports whether s lies within a buffer of the given size.
func (s Span) Valid(size int) bool {
	return 0 <= s.Start && s.Start <= s.End && s.End <= size
}

// Overlaps reports whether s and o share at least one byte, or whether both
// start at the same offset. Two insertions at one offset have no defined
// order, so they are treated as overlapping.
func (s Span) Overlaps(o Span) bool {
	if s.Start == o.Start {
		return true
	}

	return s.Start < o.End && o.Start < s.End
}

// Slice returns the bytes of src covered by s. It panics if s is not valid
// for src, like any out-of-range slice expression.
func (s Span) Slice(src []byte) []byte { return src[s.Start:s.End] }

func (s Span) String() string {
	return "[" + strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End) + ")"
}
