package app

import (
	"time"

	"github.com/bethropolis/tidesel/internal/config"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/tui"
)

// Screen rows above the document: the selector input and its description.
const headerHeight = 2

const selectorPrompt = "Selector: "

// documentHeight is the number of rows left for the document.
func (a *App) documentHeight() int {
	_, height := a.tuiManager.Size()
	return max(0, height-headerHeight-a.cfg.UI.StatusBarHeight)
}

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.mu.Lock()
	defer a.mu.Unlock()

	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := a.documentHeight()

	logger.DebugTagf("draw", "draw: Screen Size (%d x %d), ViewHeight: %d", width, height, viewHeight)

	a.tuiManager.Clear()

	textStyle := th.GetStyle("Selector")
	if a.frame.Flagged {
		textStyle = th.GetStyle("Selector.error")
	}
	caretX := tui.DrawInput(screen, 0, width, selectorPrompt, a.line.String(), a.line.Caret(), th.GetStyle("Selector.prompt"), textStyle)
	tui.DrawLine(screen, 1, width, a.frame.Description, th.GetStyle("Description"))

	tui.DrawDocument(screen, tui.Rect{X: 0, Y: headerHeight, Width: width, Height: viewHeight}, a.view, th, a.cfg.UI.TabWidth)
	a.statusBar.Draw(screen, width, height-1)

	screen.ShowCursor(caretX, 0)
	a.tuiManager.Show()

	if a.statusBar.HasTemporaryMessage() {
		a.messageExpiry.Debounce(config.MessageTimeout+100*time.Millisecond, a.requestRedraw)
	}
}
