// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// Selector line editing
	p.keymap[tcell.KeyLeft] = ActionCaretLeft
	p.keymap[tcell.KeyRight] = ActionCaretRight
	p.keymap[tcell.KeyHome] = ActionCaretHome
	p.keymap[tcell.KeyEnd] = ActionCaretEnd
	p.keymap[tcell.KeyCtrlA] = ActionCaretHome
	p.keymap[tcell.KeyCtrlE] = ActionCaretEnd
	p.keymap[tcell.KeyBackspace] = ActionDeleteBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteForward
	p.keymap[tcell.KeyCtrlU] = ActionClearSelector

	// Matches
	p.keymap[tcell.KeyTab] = ActionNextMatch
	p.keymap[tcell.KeyEnter] = ActionNextMatch
	p.keymap[tcell.KeyBacktab] = ActionPrevMatch
	p.keymap[tcell.KeyCtrlY] = ActionCopyLabels

	// Document viewport
	p.keymap[tcell.KeyUp] = ActionScrollUp
	p.keymap[tcell.KeyDown] = ActionScrollDown
	p.keymap[tcell.KeyPgUp] = ActionPageUp
	p.keymap[tcell.KeyPgDn] = ActionPageDown

	// Meta
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlR] = ActionReload
	p.keymap[tcell.KeyCtrlT] = ActionCycleTheme

	altMap := make(Keymap)
	altMap[tcell.KeyLeft] = ActionScrollLeft
	altMap[tcell.KeyRight] = ActionScrollRight
	altMap[tcell.KeyUp] = ActionDocumentStart
	altMap[tcell.KeyDown] = ActionDocumentEnd
	p.modKeymap[tcell.ModAlt] = altMap

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyHome] = ActionDocumentStart
	ctrlMap[tcell.KeyEnd] = ActionDocumentEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// 1. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys already carry Ctrl in the key itself.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Simple key mappings (Shift is allowed, e.g. Shift+Tab)
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Printable runes go into the selector
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
