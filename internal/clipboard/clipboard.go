// Package clipboard copies text to the system clipboard, keeping an
// internal copy so the last value survives when no system clipboard exists.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/tidesel/internal/logger"
)

// Manager handles clipboard operations.
type Manager struct {
	mu       sync.Mutex
	system   bool
	internal string
}

// NewManager creates a manager. With useSystem false only the internal
// clipboard is used.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("Clipboard: no system clipboard available, using internal clipboard")
		useSystem = false
	}
	return &Manager{system: useSystem}
}

// Copy stores text. The internal copy is always updated; a system
// clipboard failure is returned but does not lose the text.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.internal = text
	if !m.system {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	logger.DebugTagf("clipboard", "Clipboard: copied %d bytes to system clipboard", len(text))
	return nil
}

// Text returns the last copied text.
func (m *Manager) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.internal
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.system
}
