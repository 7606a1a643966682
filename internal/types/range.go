// internal/types/range.go
package types

import "fmt"

// Range is a span of the text buffer it was computed from.
// Start and Length are byte offsets into the buffer's Go string.
type Range struct {
	Start  int
	Length int
}

// End returns the exclusive end offset.
func (r Range) End() int {
	return r.Start + r.Length
}

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Length <= 0
}

// Contains reports whether offset falls inside [Start, End).
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End()
}

// Covers reports whether other lies entirely within r.
func (r Range) Covers(other Range) bool {
	return other.Start >= r.Start && other.End() <= r.End()
}

// Slice returns the text covered by r, clamped to the bounds of text.
func (r Range) Slice(text string) string {
	start, end := r.Start, r.End()
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

func (r Range) String() string {
	return fmt.Sprintf("[%d+%d]", r.Start, r.Length)
}
