package app

import (
	"github.com/bethropolis/tidesel/internal/config"
	"github.com/bethropolis/tidesel/internal/event"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/statusbar"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeDocumentLoaded, a.handleDocumentLoaded)
	a.eventManager.Subscribe(event.TypeSelectorEvaluated, a.handleSelectorEvaluated)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

// handleDocumentLoaded shows the new origin on the status bar.
func (a *App) handleDocumentLoaded(e event.Event) bool {
	data, ok := e.Data.(event.DocumentLoadedData)
	if !ok {
		logger.Warnf("App: DocumentLoaded event with unexpected data type: %T", e.Data)
		return false
	}
	a.statusBar.SetOrigin(data.Origin)
	if !data.Parsed {
		a.statusBar.SetTemporaryMessage("The %s parser could not read this document", data.Backend)
	}
	return false
}

func (a *App) handleSelectorEvaluated(e event.Event) bool {
	if data, ok := e.Data.(event.SelectorEvaluatedData); ok && data.Resolved < data.Nodes {
		logger.DebugTagf("app", "App: %d of %d matches for '%s' have no text range", data.Nodes-data.Resolved, data.Nodes, data.Selector)
	}
	return false
}

// handleThemeChanged restyles the status bar and the screen background.
func (a *App) handleThemeChanged(e event.Event) bool {
	th := a.themeManager.Current()
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(th, config.MessageTimeout))
	a.tuiManager.SetStyle(th.GetStyle("Default"))
	if data, ok := e.Data.(event.ThemeChangedData); ok {
		a.statusBar.SetTemporaryMessage("Theme: %s", data.Name)
	}
	return false
}
