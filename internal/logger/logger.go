// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	logOutput     io.Closer
)

func init() {
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Setup configures the package logger from cfg. It returns a function that
// closes the log file, if one was opened.
//
// A file path gets a plain slog text handler. "-" logs to stderr through
// charmbracelet/log, which renders levels and attributes for a terminal.
// An empty path discards everything.
func Setup(cfg Config) (func(), error) {
	cfg.process()

	var base slog.Handler
	var closer io.Closer
	switch cfg.LogFilePath {
	case "":
		base = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: cfg.level})
	case "-":
		cl := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			ReportCaller:    true,
			Level:           charmLevel(cfg.level.Level()),
		})
		base = cl
	default:
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return func() {}, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
		}
		closer = f
		base = newTextHandler(f, cfg.level)
	}

	install(newFilteringHandler(base, &cfg), closer)
	Infof("Logger initialized (level=%s, output=%q)", cfg.level.Level(), cfg.LogFilePath)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if logOutput != nil {
			_ = logOutput.Close()
			logOutput = nil
		}
	}, nil
}

// Init points the logger at output with no filtering. Tests use it to
// capture log lines.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	install(newTextHandler(output, level), nil)
}

func install(h slog.Handler, closer io.Closer) {
	mu.Lock()
	defer mu.Unlock()
	if logOutput != nil {
		_ = logOutput.Close()
	}
	defaultLogger = slog.New(h)
	logOutput = closer
}

func newTextHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	})
}

func charmLevel(level slog.Level) charmlog.Level {
	switch {
	case level <= slog.LevelDebug:
		return charmlog.DebugLevel
	case level <= slog.LevelInfo:
		return charmlog.InfoLevel
	case level <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a tag that the filter can select on.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
