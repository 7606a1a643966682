// internal/buffer/buffer.go
package buffer

import (
	"sync"

	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/scanner"
)

// Snapshot is the markup text of one document load. It is never modified
// after creation, so its line index and tag cache can be shared freely
// between evaluation cycles.
type Snapshot struct {
	text   string
	origin string // File path or URL the text came from, if any
	lines  *LineIndex

	tagsOnce sync.Once
	tags     []scanner.TagOccurrence
}

// New creates a snapshot of text. The line index is built eagerly; tags are
// scanned on first use.
func New(text, origin string) *Snapshot {
	return &Snapshot{
		text:   text,
		origin: origin,
		lines:  NewLineIndex(text),
	}
}

// Text returns the raw markup.
func (s *Snapshot) Text() string {
	return s.text
}

// Origin returns where the text was loaded from ("" for in-memory text).
func (s *Snapshot) Origin() string {
	return s.origin
}

// Len returns the length of the text in bytes.
func (s *Snapshot) Len() int {
	return len(s.text)
}

// Lines returns the line index of the text.
func (s *Snapshot) Lines() *LineIndex {
	return s.lines
}

// Tags returns every tag occurrence in the text, in ascending start order.
// Callers must not modify the returned slice.
func (s *Snapshot) Tags() []scanner.TagOccurrence {
	s.tagsOnce.Do(func() {
		s.tags = scanner.ScanAll(s.text)
		logger.DebugTagf("buffer", "Snapshot: scanned %d tags in %d bytes (%s)", len(s.tags), len(s.text), s.origin)
	})
	return s.tags
}
