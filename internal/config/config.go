// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tidesel/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Markup MarkupConfig  `toml:"markup"`
	Theme  ThemeConfig   `toml:"theme"`
	UI     UIConfig      `toml:"ui"`
	Import ImportConfig  `toml:"import"`
}

// MarkupConfig selects the markup parser backend.
type MarkupConfig struct {
	Parser string `toml:"parser"` // "tokenizer" or "tree-sitter"
}

// ThemeConfig names the active theme and an optional TOML theme file.
type ThemeConfig struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// UIConfig holds terminal surface settings.
type UIConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	StatusBarHeight int  `toml:"status_bar_height"`
}

// ImportConfig bounds URL imports.
type ImportConfig struct {
	MaxSize int64    `toml:"max_size"` // Bytes; larger documents need --force
	Timeout Duration `toml:"timeout"`
}

// Duration lets TOML files spell timeouts as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Set by flag or file; the TUI owns the terminal
		},
		Markup: MarkupConfig{Parser: ParserTokenizer},
		Theme:  ThemeConfig{Name: DefaultThemeName},
		UI: UIConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Import: ImportConfig{
			MaxSize: DefaultImportMaxSize,
			Timeout: Duration{DefaultImportTimeout},
		},
	}
}

// DefaultPath returns ~/.config/tidesel/config.toml, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// ThemesDir returns ~/.config/tidesel/themes, or "" when the user config
// directory is unknown.
func ThemesDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, ThemesDirName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// Undecoded keys are returned so the caller can warn once logging is up.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.UI.TabWidth <= 0 {
		c.UI.TabWidth = defaults.UI.TabWidth
	}
	if c.UI.ScrollOff < 0 { // Allow 0
		c.UI.ScrollOff = defaults.UI.ScrollOff
	}
	if c.UI.StatusBarHeight <= 0 {
		c.UI.StatusBarHeight = defaults.UI.StatusBarHeight
	}

	switch c.Markup.Parser {
	case ParserTokenizer, ParserTreeSitter:
	default:
		c.Markup.Parser = defaults.Markup.Parser
	}

	if c.Theme.Name == "" {
		c.Theme.Name = defaults.Theme.Name
	}
	if c.Import.MaxSize <= 0 {
		c.Import.MaxSize = defaults.Import.MaxSize
	}
	if c.Import.Timeout.Duration <= 0 {
		c.Import.Timeout = defaults.Import.Timeout
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load merges defaults, the TOML file and flag overrides, in that order, and
// validates the result. Flags may be nil. The returned warnings list unknown
// keys found in the file; they are not fatal.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var warnings []string
	if effectivePath != "" {
		undecoded, err := loadFromFile(effectivePath, cfg)
		if err != nil {
			return nil, nil, err
		}
		for _, key := range undecoded {
			warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized key %s", effectivePath, key))
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, warnings, nil
}
