// internal/buffer/lines.go
package buffer

import (
	"sort"

	"github.com/bethropolis/tidesel/internal/types"
)

// LineIndex maps between 1-based (line, column) positions and byte offsets.
// Lines are split on '\n' only; a '\r' before it stays part of the line.
type LineIndex struct {
	starts []int // Offset of the first byte of each line, ascending
	size   int   // Length of the indexed text
}

// NewLineIndex builds the index for text. Empty text still has one line.
func NewLineIndex(text string) *LineIndex {
	starts := make([]int, 1, 64)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(text)}
}

// LineCount returns the number of lines.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// LineStart returns the offset of the first byte of a 1-based line.
func (li *LineIndex) LineStart(line int) (int, bool) {
	if line < 1 || line > len(li.starts) {
		return 0, false
	}
	return li.starts[line-1], true
}

// LineRange returns the range of a 1-based line, excluding its '\n'.
func (li *LineIndex) LineRange(line int) (types.Range, bool) {
	start, ok := li.LineStart(line)
	if !ok {
		return types.Range{}, false
	}
	end := li.size
	if line < len(li.starts) {
		end = li.starts[line] - 1
	}
	return types.Range{Start: start, Length: end - start}, true
}

// Line returns the text of a 1-based line without its '\n', or "" when the
// line does not exist.
func (li *LineIndex) Line(text string, line int) string {
	r, ok := li.LineRange(line)
	if !ok {
		return ""
	}
	return r.Slice(text)
}

// Offset converts a 1-based line and 1-based byte column into an absolute
// offset: lineStart(line) + col - 1. It fails when the line does not exist,
// the column is not positive, or the result lies past the end of the text.
func (li *LineIndex) Offset(line, col int) (int, bool) {
	start, ok := li.LineStart(line)
	if !ok || col < 1 {
		return 0, false
	}
	offset := start + col - 1
	if offset > li.size {
		return 0, false
	}
	return offset, true
}

// Position converts an offset back to a 1-based line and column.
// Offsets past the end clamp to the end of the text.
func (li *LineIndex) Position(offset int) types.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > li.size {
		offset = li.size
	}
	// First line starting after offset, minus one.
	idx := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
	return types.Position{Line: idx + 1, Col: offset - li.starts[idx] + 1}
}
