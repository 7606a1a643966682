package config

import "time"

// Base application details
const AppName = "tidesel"
const ConfigDirName = "tidesel"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Markup backends
const (
	ParserTokenizer  = "tokenizer"
	ParserTreeSitter = "tree-sitter"
)

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultThemeName = "Fizzler Light"

// Import limits. Larger downloads need confirmation (--force).
const DefaultImportMaxSize = 512 * 1024
const DefaultImportTimeout = 30 * time.Second
