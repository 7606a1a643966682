package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestFilteringHandler_Tags(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: "debug", EnabledTags: []string{"Session"}, DisabledTags: []string{"noisy"}}
	cfg.process()
	h := newFilteringHandler(slog.NewTextHandler(&buf, nil), &cfg)

	require.NoError(t, h.Handle(context.Background(), record("kept", slog.String(tagKey, "session"))))
	require.NoError(t, h.Handle(context.Background(), record("untagged")))
	require.NoError(t, h.Handle(context.Background(), record("other", slog.String(tagKey, "draw"))))

	out := buf.String()
	assert.Contains(t, out, "kept")
	assert.NotContains(t, out, "untagged")
	assert.NotContains(t, out, "other")
}

func TestFilteringHandler_DisabledWins(t *testing.T) {
	assert.False(t, passes(sliceToSet([]string{"a"}), sliceToSet([]string{"A"}), "a"))
	assert.True(t, passes(nil, nil, "anything"))
	assert.False(t, passes(sliceToSet([]string{"x"}), nil, "y"))
}

func TestConfigProcess_Levels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := Config{LogLevel: in}
		cfg.process()
		assert.Equal(t, want, cfg.level.Level(), in)
	}
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidesel.log")
	cleanup, err := Setup(Config{LogLevel: "debug", LogFilePath: path, DisabledPackages: []string{"skipme"}})
	require.NoError(t, err)

	DebugTagf("session", "evaluated %d nodes", 3)
	cleanup()
	Init(slog.LevelInfo, nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "evaluated 3 nodes")
	assert.Contains(t, string(data), "tag=session")
	assert.Contains(t, string(data), "logger_test.go")
}

func TestSetup_BadPath(t *testing.T) {
	_, err := Setup(Config{LogFilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
	Init(slog.LevelInfo, nil)
}
