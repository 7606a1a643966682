package tui

import (
	"github.com/bethropolis/tidesel/internal/buffer"
	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/types"
)

// DocumentView is the markup text as shown on screen: every byte carries a
// structural style and a match flag, set through highlight instructions.
// It implements highlight.Surface.
type DocumentView struct {
	snap *buffer.Snapshot

	class  []uint8  // Index into styles per byte; 0 means Default
	styles []string // Style names seen so far; styles[0] is ""
	match  []bool

	current types.Range // Match the viewport follows; empty when none

	top, left int // First visible line (1-based) and first visible column
}

var _ highlight.Surface = (*DocumentView)(nil)

// NewDocumentView creates an empty view.
func NewDocumentView() *DocumentView {
	v := &DocumentView{top: 1}
	v.Load(buffer.New("", ""))
	return v
}

// Load shows snap with all coloring removed and the viewport at the top.
func (v *DocumentView) Load(snap *buffer.Snapshot) {
	v.snap = snap
	v.class = make([]uint8, snap.Len())
	v.match = make([]bool, snap.Len())
	v.styles = []string{""}
	v.current = types.Range{}
	v.top, v.left = 1, 0
}

// Snapshot returns the displayed text.
func (v *DocumentView) Snapshot() *buffer.Snapshot { return v.snap }

// Apply implements highlight.Surface.
func (v *DocumentView) Apply(in highlight.Instruction) {
	start, end := in.Range.Start, in.Range.End()
	if start < 0 || end > len(v.class) || start > end {
		logger.Warnf("DocumentView: instruction %s outside text of %d bytes", in, len(v.class))
		return
	}
	if in.Range.IsEmpty() {
		return
	}

	switch in.Layer {
	case highlight.LayerStructure:
		idx := v.styleIndex(in.Style)
		for i := start; i < end; i++ {
			v.class[i] = idx
		}
	case highlight.LayerMatch:
		on := in.Style != highlight.StyleMatchClear
		for i := start; i < end; i++ {
			v.match[i] = on
		}
	}
}

func (v *DocumentView) styleIndex(name string) uint8 {
	for i, s := range v.styles {
		if s == name {
			return uint8(i)
		}
	}
	if len(v.styles) == 256 {
		logger.Warnf("DocumentView: too many styles, dropping '%s'", name)
		return 0
	}
	v.styles = append(v.styles, name)
	return uint8(len(v.styles) - 1)
}

// StyleAt returns the structural style name at offset ("" for none).
func (v *DocumentView) StyleAt(offset int) string {
	if offset < 0 || offset >= len(v.class) {
		return ""
	}
	return v.styles[v.class[offset]]
}

// MatchedAt reports whether offset is inside a painted match.
func (v *DocumentView) MatchedAt(offset int) bool {
	return offset >= 0 && offset < len(v.match) && v.match[offset]
}

// SetCurrent marks r as the current match. An empty range clears it.
func (v *DocumentView) SetCurrent(r types.Range) {
	v.current = r
}

// Current returns the current match range.
func (v *DocumentView) Current() types.Range {
	return v.current
}

// Top returns the first visible line.
func (v *DocumentView) Top() int { return v.top }

// Left returns the horizontal scroll in columns.
func (v *DocumentView) Left() int { return v.left }

// ScrollTo sets the first visible line, clamped to the document.
func (v *DocumentView) ScrollTo(line int) {
	v.top = max(1, min(line, v.snap.Lines().LineCount()))
}

// ScrollBy moves the viewport by delta lines.
func (v *DocumentView) ScrollBy(delta int) {
	v.ScrollTo(v.top + delta)
}

// ScrollHorizontal moves the viewport by delta columns.
func (v *DocumentView) ScrollHorizontal(delta int) {
	v.left = max(0, v.left+delta)
}

// Reveal scrolls so that offset is visible in a viewport of height lines,
// keeping scrollOff lines of context when possible.
func (v *DocumentView) Reveal(offset, height, scrollOff int) {
	if height <= 0 {
		return
	}
	line := v.snap.Lines().Position(offset).Line
	scrollOff = min(scrollOff, (height-1)/2)
	if line-scrollOff < v.top {
		v.ScrollTo(line - scrollOff)
	} else if line+scrollOff >= v.top+height {
		v.ScrollTo(line + scrollOff - height + 1)
	}
}
