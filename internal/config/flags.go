// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds values bound to command-line flags. Only flags the user
// actually set override the configuration file.
type Flags struct {
	set *pflag.FlagSet

	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	Parser          string
	Theme           string
	ThemeFile       string
	TabWidth        int
	ScrollOff       int
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
	DebugLog        bool
	SystemClipboard bool
	Force           bool
}

// DefineFlags registers the flags on fs (usually a cobra command's persistent flags).
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.StringVar(&f.Parser, "parser", "", "Markup parser backend (tokenizer, tree-sitter) - Overrides config file")
	fs.StringVar(&f.Theme, "theme", "", "Theme name - Overrides config file")
	fs.StringVar(&f.ThemeFile, "theme-file", "", "Path to a TOML theme file - Overrides config file")
	fs.IntVar(&f.TabWidth, "tabwidth", 0, "Number of spaces per tab - Overrides config file")
	fs.IntVar(&f.ScrollOff, "scrolloff", -1, "Lines of context kept around the current match - Overrides config file")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	fs.BoolVar(&f.DebugLog, "debug-log", false, "Enable verbose debug logging for the logger filtering system")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", false, "Use system clipboard instead of internal clipboard")
	fs.BoolVarP(&f.Force, "force", "f", false, "Load non-HTML or oversized downloads without asking")
}

// ApplyOverrides updates cfg with the values of flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	// Cobra parses persistent flags through a merged FlagSet; only Flag.Changed is set here.
	f.set.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath // Empty string is valid
		case "parser":
			if f.Parser != "" {
				cfg.Markup.Parser = f.Parser
			}
		case "theme":
			if f.Theme != "" {
				cfg.Theme.Name = f.Theme
			}
		case "theme-file":
			cfg.Theme.Path = f.ThemeFile
		case "tabwidth":
			if f.TabWidth > 0 {
				cfg.UI.TabWidth = f.TabWidth
			}
		case "scrolloff":
			if f.ScrollOff >= 0 {
				cfg.UI.ScrollOff = f.ScrollOff
			}
		case "system-clipboard":
			cfg.UI.SystemClipboard = f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
		}
	})
}

// Helper function to split comma-separated list
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
