// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation

	"github.com/bethropolis/tidesel/internal/theme"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleError     tcell.Style // Style while the selector is invalid
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorSilver).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle("StatusBar"),
		StyleError:     th.GetStyle("StatusBarError"),
		StyleMessage:   th.GetStyle("StatusBarMessage"),
		MessageTimeout: timeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	status  string // "Ready", "Matches: N", "Error: ..."
	flagged bool
	origin  string
	current int // 1-based current match, 0 when none
	total   int // Resolved matches

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		status: "Ready",
		now:    time.Now,
	}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetStatus updates the evaluation status text.
func (sb *StatusBar) SetStatus(status string, flagged bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.status = status
	sb.flagged = flagged
}

// SetOrigin updates the document origin shown on the right.
func (sb *StatusBar) SetOrigin(origin string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.origin = origin
}

// SetMatchPosition updates the "current/total" match indicator.
func (sb *StatusBar) SetMatchPosition(current, total int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.current = current
	sb.total = total
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...any) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// HasTemporaryMessage reports whether a temporary message is pending.
func (sb *StatusBar) HasTemporaryMessage() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.tempMessage != ""
}

// Text returns the left and right parts of the status line and its style,
// expiring a stale temporary message.
func (sb *StatusBar) Text() (left, right string, style tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	origin := sb.origin
	if origin == "" {
		origin = "[No Document]"
	}
	right = origin
	if sb.current > 0 {
		right = fmt.Sprintf("%d/%d  %s", sb.current, sb.total, origin)
	}

	switch {
	case sb.tempMessage != "":
		return sb.tempMessage, right, sb.config.StyleMessage
	case sb.flagged:
		return sb.status, right, sb.config.StyleError
	default:
		return sb.status, right, sb.config.StyleDefault
	}
}

// Draw renders the status bar on row y using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, y int) {
	if width <= 0 || y < 0 {
		return
	}
	left, right, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	rightWidth := uniseg.StringWidth(right)
	leftEnd := width
	if rightWidth+2 < width {
		leftEnd = width - rightWidth - 2
		DrawText(screen, width-rightWidth-1, y, width, right, style)
	}
	DrawText(screen, 1, y, leftEnd, left, style)
}

// DrawText draws s from column x on row y, stopping before column maxX.
// It returns the column after the last cell drawn.
func DrawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break // Stop if cluster doesn't fit
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
	return x
}
