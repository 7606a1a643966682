// Package selector compiles CSS selector groups and evaluates them against
// positioned markup documents.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/markup"
)

// ErrSyntax is wrapped by every selector syntax error.
var ErrSyntax = errors.New("selector syntax error")

// SyntaxError reports a selector that cannot be compiled.
type SyntaxError struct {
	Selector string
	Msg      string // Engine message, suitable for display
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Selector is a compiled selector group.
type Selector struct {
	text  string
	group cascadia.SelectorGroup
}

// Parse compiles text. On success the structure of the group is streamed to
// sink, which may be nil. On failure nothing is sent to sink and the error is
// a *SyntaxError.
func Parse(text string, sink Sink) (*Selector, error) {
	group, err := cascadia.ParseGroup(text)
	if err != nil {
		return nil, &SyntaxError{Selector: text, Msg: syntaxMessage(err)}
	}
	if sink != nil {
		if err := emit(text, sink); err != nil {
			// cascadia accepted it, so this is a gap in emit, not in the input.
			logger.Warnf("selector: describing %q: %v", text, err)
		}
	}
	return &Selector{text: text, group: group}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Selector {
	s, err := Parse(text, nil)
	if err != nil {
		panic(fmt.Sprintf("selector.MustParse(%q): %v", text, err))
	}
	return s
}

// String returns the selector text.
func (s *Selector) String() string {
	return s.text
}

// Evaluate returns the elements of doc that match, in document order.
func (s *Selector) Evaluate(doc *markup.Document) []markup.Element {
	if doc == nil || doc.Root == nil {
		return nil
	}
	nodes := cascadia.QueryAll(doc.Root, s.group)
	els := make([]markup.Element, len(nodes))
	for i, n := range nodes {
		els[i] = doc.Element(n)
	}
	logger.DebugTagf("selector", "Evaluate: %q matched %d of %d elements", s.text, len(els), doc.ElementCount())
	return els
}

// syntaxMessage capitalizes the engine's message for display.
func syntaxMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Invalid selector."
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
