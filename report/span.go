package report

import "fmt"

// Span represents a range or "span" of source text.  Spans are half-open byte
// ranges: Start is the offset of the first byte in the span and End is the
// offset just past the last byte.  Spans are values and are never mutated once
// they have been created.
type Span struct {
	Start, End int
}

// NewSpan returns a new span over the byte range [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Conjoin returns the smallest span containing both of the given spans.
func Conjoin(a, b Span) Span {
	return a.Conjoin(b)
}

// Conjoin returns the smallest span containing both s and other.
func (s Span) Conjoin(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Text returns the slice of src addressed by the span.  Out of range spans are
// clamped to the bounds of src.
func (s Span) Text(src string) string {
	start, end := s.clamp(len(src))
	return src[start:end]
}

func (s Span) clamp(n int) (int, int) {
	start := min(max(s.Start, 0), n)
	end := min(max(s.End, start), n)
	return start, end
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
