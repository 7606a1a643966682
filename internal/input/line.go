package input

// Line is a single-line text editor with a caret, used for the selector box.
// The caret is a rune index in [0, len].
type Line struct {
	runes []rune
	caret int
}

// String returns the text.
func (l *Line) String() string { return string(l.runes) }

// Caret returns the caret position in runes.
func (l *Line) Caret() int { return l.caret }

// Set replaces the text and moves the caret to the end.
func (l *Line) Set(s string) {
	l.runes = []rune(s)
	l.caret = len(l.runes)
}

// Insert adds r at the caret.
func (l *Line) Insert(r rune) {
	l.runes = append(l.runes, 0)
	copy(l.runes[l.caret+1:], l.runes[l.caret:])
	l.runes[l.caret] = r
	l.caret++
}

// Backspace deletes the rune before the caret. It reports whether the text changed.
func (l *Line) Backspace() bool {
	if l.caret == 0 {
		return false
	}
	l.runes = append(l.runes[:l.caret-1], l.runes[l.caret:]...)
	l.caret--
	return true
}

// Delete deletes the rune at the caret. It reports whether the text changed.
func (l *Line) Delete() bool {
	if l.caret >= len(l.runes) {
		return false
	}
	l.runes = append(l.runes[:l.caret], l.runes[l.caret+1:]...)
	return true
}

// Clear empties the line. It reports whether the text changed.
func (l *Line) Clear() bool {
	changed := len(l.runes) > 0
	l.runes = l.runes[:0]
	l.caret = 0
	return changed
}

func (l *Line) Left() {
	if l.caret > 0 {
		l.caret--
	}
}

func (l *Line) Right() {
	if l.caret < len(l.runes) {
		l.caret++
	}
}

func (l *Line) Home() { l.caret = 0 }

func (l *Line) End() { l.caret = len(l.runes) }
