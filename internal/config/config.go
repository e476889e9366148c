// Package config loads runtime settings: built-in defaults, then an
// optional YAML file, then .env / DUCKSPLASH_* variables, then flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"DuckSplash/internal/viewport"
)

const envPrefix = "DUCKSPLASH_"

type Config struct {
	AssetsDir   string  `yaml:"assets_dir"`
	PrefsPath   string  `yaml:"prefs_path"`
	LogLevel    string  `yaml:"log_level"`
	Fullscreen  bool    `yaml:"fullscreen"`
	WindowSize  int     `yaml:"window_size"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	// Coins credited when no preference exists yet.
	InitialCoins int `yaml:"initial_coins"`
	// Coins credited on every launch.
	LaunchBonus int   `yaml:"launch_bonus"`
	Seed        int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		AssetsDir:    "assets",
		PrefsPath:    defaultPrefsPath(),
		LogLevel:     "info",
		WindowSize:   viewport.DefaultSizeIndex,
		MusicVolume:  0.5,
		SFXVolume:    1.0,
		InitialCoins: 1000,
		LaunchBonus:  1000,
	}
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ducksplash_prefs.yaml"
	}
	return filepath.Join(dir, "ducksplash", "prefs.yaml")
}

// Load builds a Config from args (without the program name).
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("ducksplash", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	envPath := fs.String("env", ".env", "path to a .env file")
	assets := fs.String("assets", "", "asset directory")
	prefsPath := fs.String("prefs", "", "preference file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	fullscreen := fs.Bool("fullscreen", false, "start in fullscreen")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		if err := cfg.mergeFile(*configPath); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", *envPath, err)
	}
	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.AssetsDir = *assets
		case "prefs":
			cfg.PrefsPath = *prefsPath
		case "log-level":
			cfg.LogLevel = *logLevel
		case "fullscreen":
			cfg.Fullscreen = *fullscreen
		case "seed":
			cfg.Seed = *seed
		}
	})

	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get("ASSETS_DIR"); ok {
		c.AssetsDir = v
	}
	if v, ok := get("PREFS_PATH"); ok {
		c.PrefsPath = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("FULLSCREEN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sFULLSCREEN: %w", envPrefix, err)
		}
		c.Fullscreen = b
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"WINDOW_SIZE", &c.WindowSize},
		{"INITIAL_COINS", &c.InitialCoins},
		{"LAUNCH_BONUS", &c.LaunchBonus},
	}
	for _, it := range ints {
		if v, ok := get(it.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, it.key, err)
			}
			*it.dst = n
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"MUSIC_VOLUME", &c.MusicVolume},
		{"SFX_VOLUME", &c.SFXVolume},
	}
	for _, it := range floats {
		if v, ok := get(it.key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, it.key, err)
			}
			*it.dst = f
		}
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.WindowSize < 0 || c.WindowSize >= len(viewport.WindowSizes) {
		return fmt.Errorf("window_size %d out of range 0..%d", c.WindowSize, len(viewport.WindowSizes)-1)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("music_volume %.2f out of range 0..1", c.MusicVolume)
	}
	if c.SFXVolume < 0 || c.SFXVolume > 1 {
		return fmt.Errorf("sfx_volume %.2f out of range 0..1", c.SFXVolume)
	}
	if c.InitialCoins < 0 || c.LaunchBonus < 0 {
		return errors.New("coin amounts must not be negative")
	}
	if c.PrefsPath == "" {
		return errors.New("prefs_path is empty")
	}
	return nil
}
