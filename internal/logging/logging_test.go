package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"DuckSplash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"":       slog.LevelInfo,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewTagsComponentAndFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelWarn, "sound")

	log.Info("hidden")
	log.Warn("missing file", "path", "assets/boss_music.mp3")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "component=sound")
	assert.Contains(t, out, "path=assets/boss_music.mp3")
}
