// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidesel/internal/clipboard"
	"github.com/bethropolis/tidesel/internal/config"
	"github.com/bethropolis/tidesel/internal/event"
	"github.com/bethropolis/tidesel/internal/input"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/markup"
	"github.com/bethropolis/tidesel/internal/session"
	"github.com/bethropolis/tidesel/internal/source"
	"github.com/bethropolis/tidesel/internal/statusbar"
	"github.com/bethropolis/tidesel/internal/theme"
	"github.com/bethropolis/tidesel/internal/tui"
	"github.com/bethropolis/tidesel/internal/utils"
)

// Options configures a new App.
type Options struct {
	Config *config.Config
	Target string       // File path or URL to load; may be empty
	Force  bool         // Load documents that carry warnings
	Screen tcell.Screen // Defaults to the real terminal
}

// App encapsulates the core components and main loop of the locator.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	view           *tui.DocumentView
	statusBar      *statusbar.StatusBar
	themeManager   *theme.Manager
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	session        *session.Session
	fetcher        *source.Fetcher
	clipboard      *clipboard.Manager

	target string
	force  bool

	// Guarded by mu: key handling runs on the event goroutine, drawing on Run's.
	mu      sync.Mutex
	line    input.Line
	frame   session.Frame
	current int // Index into frame.Matches; -1 when no match is current

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	quitOnce      sync.Once
	messageExpiry utils.Debouncer // Redraws once a temporary message times out
}

// NewApp creates the application and loads opts.Target, if any.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	parser, err := markup.NewParser(cfg.Markup.Parser)
	if err != nil {
		return nil, err
	}

	themeManager := theme.NewManager(config.ThemesDir(), cfg.Theme.Name)
	if cfg.Theme.Path != "" {
		t, err := themeManager.LoadFile(cfg.Theme.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load theme file: %w", err)
		}
		if err := themeManager.SetTheme(t.Name); err != nil {
			return nil, err
		}
	}

	var tuiManager *tui.TUI
	defStyle := themeManager.Current().GetStyle("Default")
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, defStyle)
	} else {
		tuiManager, err = tui.New(defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		view:           tui.NewDocumentView(),
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(themeManager.Current(), config.MessageTimeout)),
		themeManager:   themeManager,
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		session:        session.New(parser, session.WithEvents(eventManager)),
		fetcher: &source.Fetcher{
			Client:    &http.Client{Timeout: cfg.Import.Timeout.Duration},
			MaxSize:   cfg.Import.MaxSize,
			UserAgent: config.AppName,
		},
		clipboard:     clipboard.NewManager(cfg.UI.SystemClipboard),
		target:        opts.Target,
		force:         opts.Force,
		current:       -1,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	a.frame = a.session.Frame()
	a.subscribe()

	if a.target != "" {
		if err := a.Reload(context.Background()); err != nil {
			tuiManager.Close()
			return nil, err
		}
	}
	return a, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop() // Start event loop

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Type a selector | Tab next match | Ctrl+Y copy | Esc quit")
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit:
			a.messageExpiry.Stop()
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop handles TUI events.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			actionEvent := a.inputProcessor.ProcessEvent(eventData)
			a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: eventData})
			needsRedraw = a.HandleAction(actionEvent)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// Quit stops Run. It is safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
