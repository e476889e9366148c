package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"DuckSplash/internal/assets"
	"DuckSplash/internal/game"
	"DuckSplash/internal/viewport"
)

// musicPlayer is the part of the mixer the host drives every tick.
type musicPlayer interface {
	SetTrack(game.Track)
}

// Game adapts a game.Session to ebiten: it polls input, forwards host
// actions to the window and draws the current state.
type Game struct {
	session *game.Session
	music   musicPlayer
	images  *assets.Images
	modes   viewport.Modes
	face    text.Face
	log     *slog.Logger
}

func newGame(s *game.Session, music musicPlayer, images *assets.Images, modes viewport.Modes, face text.Face, log *slog.Logger) *Game {
	return &Game{
		session: s,
		music:   music,
		images:  images,
		modes:   modes,
		face:    face,
		log:     log,
	}
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	switch g.session.Update(pollInput(), dt) {
	case game.ActionQuit:
		g.log.Info("quit requested")
		return ebiten.Termination
	case game.ActionToggleFullscreen:
		g.modes.ToggleFullscreen()
		ebiten.SetFullscreen(g.modes.Fullscreen)
		g.log.Debug("fullscreen toggled", "fullscreen", g.modes.Fullscreen)
	case game.ActionCycleWindowSize:
		if g.modes.CycleSize() {
			sz := g.modes.Size()
			ebiten.SetWindowSize(sz.W, sz.H)
			g.log.Debug("window resized", "w", sz.W, "h", sz.H)
		}
	}

	g.music.SetTrack(g.session.Music())
	return nil
}

// pollInput reads keyboard, mouse and touch. The logical screen is the
// world, so cursor positions are already in world units.
func pollInput() game.Input {
	in := game.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),

		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause:      inpututil.IsKeyJustPressed(ebiten.KeyP),
		Space:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Fullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		CycleSize:  inpututil.IsKeyJustPressed(ebiten.KeyF10),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click, in.ClickX, in.ClickY = true, float64(x), float64(y)
	} else if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		in.Click, in.ClickX, in.ClickY = true, float64(x), float64(y)
	}
	return in
}

// Layout extends the minimum world along one axis to fill the window.
func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	w, h := viewport.Extend(outsideW, outsideH, viewport.MinWorldWidth, viewport.MinWorldHeight)
	iw, ih := int(w), int(h)
	g.session.Resize(float64(iw), float64(ih))
	return iw, ih
}
