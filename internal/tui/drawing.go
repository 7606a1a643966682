// internal/tui/drawing.go
package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidesel/internal/statusbar"
	"github.com/bethropolis/tidesel/internal/theme"
)

// Rect is a screen area.
type Rect struct {
	X, Y, Width, Height int
}

// DrawDocument draws the visible part of v into area with a line number gutter.
func DrawDocument(screen tcell.Screen, area Rect, v *DocumentView, th *theme.Theme, tabWidth int) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	if tabWidth <= 0 {
		tabWidth = 4
	}

	defaultStyle := th.GetStyle("Default")
	gutterStyle := th.GetStyle("Gutter")
	_, matchBg, _ := th.GetStyle("Match").Decompose()
	_, currentBg, currentAttrs := th.GetStyle("Match.current").Decompose()

	// Resolve each structural class once per frame.
	classStyles := make([]tcell.Style, len(v.styles))
	classStyles[0] = defaultStyle
	for i := 1; i < len(v.styles); i++ {
		classStyles[i] = th.GetStyle(v.styles[i])
	}

	lines := v.snap.Lines()
	text := v.snap.Text()
	lineCount := lines.LineCount()

	// --- Calculate Gutter Width ---
	maxDigits := len(strconv.Itoa(lineCount))
	gutterWidth := maxDigits + 1 // Space between number and text
	if gutterWidth >= area.Width {
		gutterWidth = 0 // Disable gutter if screen too narrow
	}
	textX := area.X + gutterWidth
	textWidth := area.Width - gutterWidth

	for row := 0; row < area.Height; row++ {
		y := area.Y + row
		lineNo := v.top + row

		for x := area.X; x < area.X+area.Width; x++ {
			screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
		lineRange, ok := lines.LineRange(lineNo)
		if !ok {
			continue // Below the document
		}

		if gutterWidth > 0 {
			num := fmt.Sprintf("%*d", maxDigits, lineNo)
			for i, r := range num {
				screen.SetContent(area.X+i, y, r, nil, gutterStyle)
			}
		}

		lineText := lineRange.Slice(text)
		gr := uniseg.NewGraphemes(lineText)
		visualX := 0
		for gr.Next() {
			from, _ := gr.Positions()
			offset := lineRange.Start + from
			runes := gr.Runes()
			clusterWidth := gr.Width()

			style := classStyles[v.class[offset]]
			if v.match[offset] {
				style = style.Background(matchBg)
				if v.current.Contains(offset) {
					style = style.Background(currentBg).Attributes(currentAttrs)
				}
			}

			if runes[0] == '\t' {
				clusterWidth = tabWidth - visualX%tabWidth
			}
			screenX := textX + visualX - v.left
			for cw := 0; cw < clusterWidth; cw++ {
				cx := screenX + cw
				if cx < textX || cx >= textX+textWidth {
					continue
				}
				if cw > 0 || runes[0] == '\t' {
					screen.SetContent(cx, y, ' ', nil, style)
				} else {
					screen.SetContent(cx, y, runes[0], runes[1:], style)
				}
			}

			visualX += clusterWidth
			if visualX-v.left >= textWidth {
				break
			}
		}
	}
}

// DrawInput draws a prompt and an editable line on row y and returns the
// screen column of the caret (a rune index into text).
func DrawInput(screen tcell.Screen, y, width int, prompt, text string, caret int, promptStyle, textStyle tcell.Style) int {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, textStyle)
	}
	x := statusbar.DrawText(screen, 0, y, width, prompt, promptStyle)

	caretX := x
	runeIndex := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		if runeIndex < caret {
			caretX = x + gr.Width()
		}
		if x+gr.Width() <= width {
			screen.SetContent(x, y, runes[0], runes[1:], textStyle)
		}
		x += gr.Width()
		runeIndex += len(runes)
	}
	return min(caretX, width-1)
}

// DrawLine draws text on row y, filling the row with style.
func DrawLine(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	statusbar.DrawText(screen, 1, y, width, text, style)
}
