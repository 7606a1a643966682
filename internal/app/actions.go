package app

import (
	"context"
	"strings"

	"github.com/bethropolis/tidesel/internal/event"
	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/input"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/session"
	"github.com/bethropolis/tidesel/internal/source"
	"github.com/bethropolis/tidesel/internal/types"
)

// HandleAction applies one decoded key action and reports whether the
// screen needs a redraw.
func (a *App) HandleAction(ev input.ActionEvent) bool {
	if ev.Action == input.ActionReload {
		// Fetching may be slow; only the final load takes the lock.
		a.reload()
		return true
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev.Action {
	case input.ActionQuit:
		a.Quit()
		return false

	case input.ActionInsertRune:
		a.line.Insert(ev.Rune)
		a.evaluate()
	case input.ActionDeleteBackward:
		if !a.line.Backspace() {
			return false
		}
		a.evaluate()
	case input.ActionDeleteForward:
		if !a.line.Delete() {
			return false
		}
		a.evaluate()
	case input.ActionClearSelector:
		if !a.line.Clear() {
			return false
		}
		a.evaluate()
	case input.ActionCaretLeft:
		a.line.Left()
	case input.ActionCaretRight:
		a.line.Right()
	case input.ActionCaretHome:
		a.line.Home()
	case input.ActionCaretEnd:
		a.line.End()

	case input.ActionNextMatch:
		return a.stepMatch(1)
	case input.ActionPrevMatch:
		return a.stepMatch(-1)
	case input.ActionCopyLabels:
		a.copyLabels()

	case input.ActionScrollUp:
		a.view.ScrollBy(-1)
	case input.ActionScrollDown:
		a.view.ScrollBy(1)
	case input.ActionScrollLeft:
		a.view.ScrollHorizontal(-a.cfg.UI.TabWidth)
	case input.ActionScrollRight:
		a.view.ScrollHorizontal(a.cfg.UI.TabWidth)
	case input.ActionPageUp:
		a.view.ScrollBy(-a.documentHeight())
	case input.ActionPageDown:
		a.view.ScrollBy(a.documentHeight())
	case input.ActionDocumentStart:
		a.view.ScrollTo(1)
	case input.ActionDocumentEnd:
		a.view.ScrollTo(a.view.Snapshot().Lines().LineCount())

	case input.ActionCycleTheme:
		t := a.themeManager.Cycle()
		a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: t.Name})

	default:
		return false
	}
	return true
}

func (a *App) reload() {
	if a.target == "" {
		a.statusBar.SetTemporaryMessage("Nothing to reload")
		return
	}
	if err := a.Reload(context.Background()); err != nil {
		logger.Warnf("App: reload failed: %v", err)
		a.statusBar.SetTemporaryMessage("Reload failed: %v", err)
	}
}

// Reload opens the target again and shows it, keeping the selector.
func (a *App) Reload(ctx context.Context) error {
	doc, err := a.fetcher.Open(ctx, a.target)
	if err != nil {
		return err
	}
	if err := doc.Confirm(a.force); err != nil {
		return err
	}
	a.LoadDocument(doc)
	return nil
}

// LoadDocument shows doc and re-evaluates the current selector against it.
func (a *App) LoadDocument(doc *source.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()

	frame := a.session.Load(context.Background(), doc.Text, doc.Origin)
	a.view.Load(a.session.Snapshot())
	a.applyFrame(frame)
}

// evaluate runs one cycle for the selector line. Callers hold mu.
func (a *App) evaluate() {
	// A new selector supersedes whatever the last command reported.
	a.statusBar.ResetTemporaryMessage()
	a.applyFrame(a.session.SetSelector(a.line.String()))
}

// applyFrame paints the frame's instructions and updates the status line.
func (a *App) applyFrame(f session.Frame) {
	highlight.Paint(a.view, f.Instructions())
	a.frame = f
	a.current = -1
	a.view.SetCurrent(types.Range{})
	a.statusBar.SetStatus(f.Status, f.Flagged)
	a.statusBar.SetMatchPosition(0, len(f.Matches))
}

// stepMatch makes the next (delta 1) or previous (delta -1) match current,
// wrapping around, and scrolls it into view.
func (a *App) stepMatch(delta int) bool {
	n := len(a.frame.Matches)
	if n == 0 {
		return false
	}
	switch {
	case a.current < 0 && delta < 0:
		a.current = n - 1
	case a.current < 0:
		a.current = 0
	default:
		a.current = (a.current + delta + n) % n
	}

	m := a.frame.Matches[a.current]
	a.view.SetCurrent(m.Range)
	a.view.Reveal(m.Range.Start, a.documentHeight(), a.cfg.UI.ScrollOff)
	a.statusBar.SetMatchPosition(a.current+1, n)
	a.statusBar.SetTemporaryMessage("%s", m.Node.BeginTag())
	return true
}

// copyLabels puts the labels of every matched node on the clipboard, one per line.
func (a *App) copyLabels() {
	labels := a.frame.Labels
	if len(labels) == 0 {
		a.statusBar.SetTemporaryMessage("No matches to copy")
		return
	}
	if err := a.clipboard.Copy(strings.Join(labels, "\n")); err != nil {
		logger.Warnf("App: %v", err)
		a.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Copied %d labels", len(labels))
}
