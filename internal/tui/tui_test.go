package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidesel/internal/buffer"
	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/theme"
	"github.com/bethropolis/tidesel/internal/types"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(s, tcell.StyleDefault)
	require.NoError(t, err)
	t.Cleanup(tu.Close)
	s.SetSize(w, h)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

func rowText(s tcell.SimulationScreen, y int) string {
	_, w, _ := s.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _ := cellAt(s, x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDocumentView_Apply(t *testing.T) {
	v := NewDocumentView()
	v.Load(buffer.New(`<a href="x">y</a>`, "t.html"))

	highlight.Paint(v, []highlight.Instruction{
		{Layer: highlight.LayerStructure, Range: types.Range{Start: 0, Length: 12}, Style: highlight.StyleTag},
		{Layer: highlight.LayerStructure, Range: types.Range{Start: 1, Length: 1}, Style: highlight.StyleTagName},
		{Layer: highlight.LayerMatch, Range: types.Range{Start: 0, Length: 16}, Style: highlight.StyleMatch},
	})
	assert.Equal(t, highlight.StyleTag, v.StyleAt(0))
	assert.Equal(t, highlight.StyleTagName, v.StyleAt(1))
	assert.Equal(t, "", v.StyleAt(12))
	assert.True(t, v.MatchedAt(15))
	assert.False(t, v.MatchedAt(16))

	v.Apply(highlight.Instruction{Layer: highlight.LayerMatch, Range: types.Range{Start: 0, Length: 16}, Style: highlight.StyleMatchClear})
	assert.False(t, v.MatchedAt(0))
	assert.Equal(t, highlight.StyleTag, v.StyleAt(0), "clearing matches keeps tag colors")

	// Outside the text: ignored.
	v.Apply(highlight.Instruction{Layer: highlight.LayerMatch, Range: types.Range{Start: 10, Length: 50}, Style: highlight.StyleMatch})
	assert.False(t, v.MatchedAt(10))

	v.Apply(highlight.Instruction{Layer: highlight.LayerStructure, Range: types.Range{Start: 1}, Style: highlight.StyleTagAttribute})
	assert.Equal(t, highlight.StyleTagName, v.StyleAt(1), "empty ranges paint nothing")

	v.Load(buffer.New("plain", ""))
	assert.Equal(t, "", v.StyleAt(0))
	assert.False(t, v.MatchedAt(0))
}

func TestDocumentView_Scroll(t *testing.T) {
	v := NewDocumentView()
	text := ""
	for i := 0; i < 50; i++ {
		text += "line\n"
	}
	v.Load(buffer.New(text, ""))

	v.ScrollBy(-5)
	assert.Equal(t, 1, v.Top())
	v.ScrollTo(1000)
	assert.Equal(t, 51, v.Top())

	v.ScrollTo(1)
	offset, ok := v.Snapshot().Lines().Offset(30, 1)
	require.True(t, ok)
	v.Reveal(offset, 10, 3)
	assert.Equal(t, 24, v.Top(), "line 30 plus three lines of context at the bottom")

	v.Reveal(0, 10, 3)
	assert.Equal(t, 1, v.Top())

	v.ScrollHorizontal(-3)
	assert.Equal(t, 0, v.Left())
	v.ScrollHorizontal(4)
	assert.Equal(t, 4, v.Left())
}

func TestDrawDocument(t *testing.T) {
	s := newScreen(t, 20, 4)
	th := &theme.FizzlerLight

	v := NewDocumentView()
	v.Load(buffer.New("<p>a</p>\n\tb", ""))
	highlight.Paint(v, []highlight.Instruction{
		{Layer: highlight.LayerStructure, Range: types.Range{Start: 0, Length: 3}, Style: highlight.StyleTag},
		{Layer: highlight.LayerMatch, Range: types.Range{Start: 0, Length: 8}, Style: highlight.StyleMatch},
	})

	DrawDocument(s, Rect{Width: 20, Height: 4}, v, th, 4)
	s.Show()

	assert.Equal(t, "1 <p>a</p>          ", rowText(s, 0))
	assert.Equal(t, "2     b             ", rowText(s, 1))
	assert.Equal(t, "                    ", rowText(s, 2))

	_, matchBg, _ := th.GetStyle("Match").Decompose()
	tagFg, _, _ := th.GetStyle(highlight.StyleTag).Decompose()
	_, style := cellAt(s, 2, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, matchBg, bg)
	assert.Equal(t, tagFg, fg, "match background overlays the tag color")

	_, style = cellAt(s, 6, 1)
	_, bg, _ = style.Decompose()
	assert.NotEqual(t, matchBg, bg)

	v.SetCurrent(types.Range{Start: 0, Length: 8})
	DrawDocument(s, Rect{Width: 20, Height: 4}, v, th, 4)
	s.Show()
	_, currentBg, _ := th.GetStyle("Match.current").Decompose()
	_, style = cellAt(s, 3, 0)
	_, bg, _ = style.Decompose()
	assert.Equal(t, currentBg, bg)

	v.ScrollHorizontal(3)
	DrawDocument(s, Rect{Width: 20, Height: 4}, v, th, 4)
	s.Show()
	assert.Equal(t, "1 a</p>             ", rowText(s, 0))
}

func TestDrawInput(t *testing.T) {
	s := newScreen(t, 12, 1)

	caretX := DrawInput(s, 0, 12, "> ", "div p", 3, tcell.StyleDefault, tcell.StyleDefault)
	s.Show()
	assert.Equal(t, "> div p     ", rowText(s, 0))
	assert.Equal(t, 5, caretX)

	caretX = DrawInput(s, 0, 12, "> ", "", 0, tcell.StyleDefault, tcell.StyleDefault)
	s.Show()
	assert.Equal(t, ">           ", rowText(s, 0))
	assert.Equal(t, 2, caretX)
}

func TestDrawLine(t *testing.T) {
	s := newScreen(t, 10, 1)
	DrawLine(s, 0, 10, "Take all", tcell.StyleDefault)
	s.Show()
	assert.Equal(t, " Take all ", rowText(s, 0))
}
