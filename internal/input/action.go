// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionReload     // Reload the document from its origin
	ActionCycleTheme // Switch to the next theme

	// --- Selector Editing ---
	ActionInsertRune // Requires Rune argument
	ActionDeleteBackward
	ActionDeleteForward
	ActionCaretLeft
	ActionCaretRight
	ActionCaretHome
	ActionCaretEnd
	ActionClearSelector

	// --- Matches ---
	ActionNextMatch
	ActionPrevMatch
	ActionCopyLabels

	// --- Document Viewport ---
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionPageUp
	ActionPageDown
	ActionDocumentStart
	ActionDocumentEnd
)

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
