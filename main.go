package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"DuckSplash/internal/assets"
	"DuckSplash/internal/config"
	"DuckSplash/internal/game"
	"DuckSplash/internal/logging"
	"DuckSplash/internal/prefs"
	"DuckSplash/internal/sound"
	"DuckSplash/internal/viewport"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ducksplash:", err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ducksplash:", err)
		os.Exit(2)
	}
	log := logging.New(os.Stderr, level, "main")

	if err := run(cfg, level); err != nil {
		log.Error("ducksplash stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, level slog.Level) error {
	log := logging.New(os.Stderr, level, "main")

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	log.Debug("preferences loaded", "path", store.Path())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	profile := game.LoadProfile(store, cfg.InitialCoins, cfg.LaunchBonus, logging.New(os.Stderr, level, "profile"))
	mixer := sound.New(cfg.AssetsDir, cfg.MusicVolume, cfg.SFXVolume, logging.New(os.Stderr, level, "sound"))
	images := assets.NewImages(cfg.AssetsDir, logging.New(os.Stderr, level, "assets"))

	preload := []string{
		assets.Player, assets.Duck, assets.DuckIcon, assets.PlayerShot, assets.EnemyShot,
		assets.BossShot, assets.Coin, assets.Life, assets.Dead,
		assets.MenuBackground, assets.ShopBackground, assets.BossBackground,
	}
	for _, gun := range game.Guns {
		preload = append(preload, gun.Sprite)
	}
	for _, d := range []game.Difficulty{game.Easy, game.Normal, game.Hard} {
		preload = append(preload, d.Settings().Background, d.Settings().BossSprite)
	}
	if n := images.Preload(preload...); n > 0 {
		log.Warn("some images are missing", "missing", n, "dir", cfg.AssetsDir)
	}

	session := game.NewSession(viewport.MinWorldWidth, viewport.MinWorldHeight, profile, mixer, rng,
		logging.New(os.Stderr, level, "game"))
	modes := viewport.NewModes(cfg.Fullscreen, cfg.WindowSize)
	g := newGame(session, mixer, images, modes, text.NewGoXFace(bitmapfont.Face), log)

	size := modes.Size()
	ebiten.SetWindowTitle("DuckSplash")
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(modes.Fullscreen)

	log.Info("starting", "seed", seed, "coins", profile.Coins(), "high_score", profile.HighScore())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
