// internal/event/events.go
package event

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Document lifecycle
	TypeDocumentLoaded // Fired after a new text buffer has been loaded and scanned

	// Evaluation cycle
	TypeSelectorEvaluated // Fired when a selector compiled and was evaluated (zero matches included)
	TypeSelectorFailed    // Fired when a selector did not compile
	TypeSelectorCleared   // Fired when the selector became blank

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged // Fired when the theme is changed
)

var typeNames = map[Type]string{
	TypeUnknown:           "Unknown",
	TypeDocumentLoaded:    "DocumentLoaded",
	TypeSelectorEvaluated: "SelectorEvaluated",
	TypeSelectorFailed:    "SelectorFailed",
	TypeSelectorCleared:   "SelectorCleared",
	TypeKeyPressed:        "KeyPressed",
	TypeAppReady:          "AppReady",
	TypeAppQuit:           "AppQuit",
	TypeThemeChanged:      "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type // The kind of event
	Data any  // Payload carrying event-specific data
}

// DocumentLoadedData describes a freshly loaded document.
type DocumentLoadedData struct {
	Origin  string // File path or URL, "" for in-memory text
	Bytes   int
	Tags    int    // Tag occurrences found by the scanner
	Backend string // Markup parser that built the tree
	Parsed  bool   // False when the parser failed and no tree is available
}

// SelectorEvaluatedData carries the outcome of a successful evaluation.
type SelectorEvaluatedData struct {
	Selector string
	Nodes    int // Elements the selector matched
	Resolved int // Of those, how many mapped onto a tag in the text
}

// SelectorFailedData carries a selector syntax error.
type SelectorFailedData struct {
	Selector string
	Err      error
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the new theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
