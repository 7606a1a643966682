// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidesel/internal/logger"
)

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	mutex       sync.RWMutex
	themes      map[string]*Theme // Map theme name (lowercase) -> Theme object
	activeTheme *Theme
}

// NewManager registers the built-in themes, then every *.toml file in
// themesDir (if non-empty and present), and activates defaultName.
func NewManager(themesDir, defaultName string) *Manager {
	mgr := &Manager{
		themes: make(map[string]*Theme),
	}
	mgr.register(&FizzlerLight)
	mgr.register(&DevComfortDark)

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(themesDir); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	if err := mgr.SetTheme(defaultName); err != nil {
		logger.Warnf("Theme '%s' not found, using '%s'", defaultName, FizzlerLight.Name)
		mgr.activeTheme = &FizzlerLight
	}
	return mgr
}

func (m *Manager) register(t *Theme) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in dir. A missing directory is not an error.
func (m *Manager) LoadThemesFromDir(dir string) error {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logger.Debugf("Theme directory '%s' does not exist. No custom themes loaded.", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		if _, err := m.LoadFile(filepath.Join(dir, file.Name())); err != nil {
			logger.Warnf("%v", err)
			continue
		}
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes from %s.", loadedCount, dir)
	return nil
}

// LoadFile loads one TOML theme file and registers it.
func (m *Manager) LoadFile(path string) (*Theme, error) {
	t, err := LoadThemeFromFile(path)
	if err != nil {
		return nil, err
	}
	m.register(t)
	return t, nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.activeTheme == nil {
		return &Theme{Name: "Failsafe", Styles: map[string]tcell.Style{"Default": tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// Cycle activates the theme after the current one in ListThemes order and returns it.
func (m *Manager) Cycle() *Theme {
	names := m.ListThemes()
	current := m.Current().Name
	next := names[0]
	for i, n := range names {
		if n == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	_ = m.SetTheme(next)
	return m.Current()
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a specific theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}
