package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{"-env", noEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, 2, cfg.WindowSize)
	assert.Equal(t, 1000, cfg.InitialCoins)
	assert.Equal(t, 1000, cfg.LaunchBonus)
	assert.NotEmpty(t, cfg.PrefsPath)
}

func TestLoadLayersFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ducksplash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"assets_dir: /srv/ducks\nlog_level: debug\nmusic_volume: 0.25\ninitial_coins: 50\n"), 0o644))

	t.Setenv("DUCKSPLASH_LOG_LEVEL", "warn")
	t.Setenv("DUCKSPLASH_SFX_VOLUME", "0.5")

	cfg, err := Load([]string{"-config", path, "-env", noEnv(t), "-seed", "99", "-prefs", filepath.Join(dir, "p.yaml")})
	require.NoError(t, err)

	assert.Equal(t, "/srv/ducks", cfg.AssetsDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.InDelta(t, 0.25, cfg.MusicVolume, 1e-9)
	assert.InDelta(t, 0.5, cfg.SFXVolume, 1e-9)
	assert.Equal(t, 50, cfg.InitialCoins)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, filepath.Join(dir, "p.yaml"), cfg.PrefsPath)
}

func TestLoadReadsDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DUCKSPLASH_LAUNCH_BONUS=25\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DUCKSPLASH_LAUNCH_BONUS") })

	cfg, err := Load([]string{"-env", envFile})
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.LaunchBonus)
}

func TestMergeEnvRejectsBadNumbers(t *testing.T) {
	cfg := Default()
	err := cfg.mergeEnv(func(key string) (string, bool) {
		if key == "DUCKSPLASH_WINDOW_SIZE" {
			return "big", true
		}
		return "", false
	})
	assert.ErrorContains(t, err, "DUCKSPLASH_WINDOW_SIZE")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window size", func(c *Config) { c.WindowSize = 4 }},
		{"music volume", func(c *Config) { c.MusicVolume = 1.5 }},
		{"sfx volume", func(c *Config) { c.SFXVolume = -0.1 }},
		{"coins", func(c *Config) { c.LaunchBonus = -1 }},
		{"prefs", func(c *Config) { c.PrefsPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml"), "-env", noEnv(t)})
	assert.Error(t, err)
}
