package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"DuckSplash/internal/assets"
	"DuckSplash/internal/game"
)

var (
	colSky       = color.RGBA{0x10, 0x1c, 0x3a, 0xff}
	colWater     = color.RGBA{0x1e, 0x6f, 0xb8, 0xff}
	colButton    = color.RGBA{0x2a, 0x4d, 0x8f, 0xff}
	colButtonOff = color.RGBA{0x44, 0x44, 0x55, 0xff}
	colEdge      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colGold      = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colPlayer    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colShot      = color.RGBA{0x60, 0xd0, 0xff, 0xff}
	colEnemyShot = color.RGBA{0xff, 0x80, 0x30, 0xff}
	colBoss      = color.RGBA{0x80, 0x20, 0x80, 0xff}
	colHP        = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	colShade     = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// bitmapfont glyphs are 12 px high; labels scale them up.
const (
	textSmall = 1.5
	textBig   = 2.5
	textTitle = 4
)

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	w := s.World

	switch s.State {
	case game.StateMenu:
		g.drawMenu(screen)
	case game.StateShop:
		g.drawShop(screen)
	case game.StateGunSelect:
		g.drawGunSelect(screen)
	default:
		g.drawWorld(screen)
	}

	cx, cy := w.W/2, w.H/2
	switch s.State {
	case game.StatePaused:
		shade(screen)
		g.label(screen, "PAUSED", cx, cy-40, textTitle, colEdge, text.AlignCenter)
		g.label(screen, "Press P to resume", cx, cy+30, textSmall, colEdge, text.AlignCenter)
	case game.StateInGameMenu:
		shade(screen)
		l := s.Layout
		g.button(screen, l.Continue, "CONTINUE", true)
		g.button(screen, l.MainMenu, "MAIN MENU", true)
		g.button(screen, l.InGameQuit, "QUIT", true)
	case game.StateLevelComplete:
		g.drawLevelComplete(screen)
	case game.StateGameOver:
		g.drawGameOver(screen)
	case game.StateGameComplete:
		shade(screen)
		g.label(screen, "CONGRATULATIONS!", cx, cy-80, textTitle, colGold, text.AlignCenter)
		g.label(screen, "Every duck is soaked.", cx, cy, textBig, colEdge, text.AlignCenter)
		g.label(screen, fmt.Sprintf("Score %d   High score %d", w.Score, s.Profile.HighScore()), cx, cy+60, textSmall, colEdge, text.AlignCenter)
	}
}

func (g *Game) label(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, g.face, op)
}

func (g *Game) button(dst *ebiten.Image, r game.Rect, s string, enabled bool) {
	fill := colButton
	if !enabled {
		fill = colButtonOff
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, colEdge, false)
	cx, cy := r.Center()
	g.label(dst, s, cx, cy-9, textSmall, colEdge, text.AlignCenter)
}

func shade(dst *ebiten.Image) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), colShade, false)
}

// sprite draws img stretched over the box, or a flat rectangle when the
// image is missing. tint multiplies the image colours.
func sprite(dst, img *ebiten.Image, x, y, w, h float64, tint color.Color, alpha float64, fallback color.Color) {
	if img == nil {
		r, gg, b, _ := fallback.RGBA()
		c := color.NRGBA{uint8(r >> 8), uint8(gg >> 8), uint8(b >> 8), uint8(alpha * 255)}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (g *Game) background(dst *ebiten.Image, name string) {
	img := g.images.Get(name)
	if img == nil {
		dst.Fill(colSky)
		g.drawStars(dst)
		return
	}
	b := dst.Bounds()
	sprite(dst, img, 0, 0, float64(b.Dx()), float64(b.Dy()), nil, 1, colSky)
}

func (g *Game) drawStars(dst *ebiten.Image) {
	for _, st := range g.session.Stars {
		v := uint8(st.Brightness * 255)
		vector.DrawFilledRect(dst, float32(st.X), float32(st.Y), float32(st.Size), float32(st.Size), color.RGBA{v, v, v, 0xff}, false)
	}
}

func (g *Game) drawMenu(dst *ebiten.Image) {
	s := g.session
	l := s.Layout
	g.background(dst, assets.MenuBackground)

	w := s.World
	g.label(dst, "DUCK SPLASH", w.W/2, w.H/2-220, textTitle, colGold, text.AlignCenter)
	g.button(dst, l.Start, "START", true)
	g.button(dst, l.Difficulty, "DIFFICULTY: "+s.Difficulty().String(), true)
	g.button(dst, l.Quit, "QUIT", true)
	g.button(dst, l.Shop, "SHOP", true)

	g.label(dst, fmt.Sprintf("High score: %d", s.Profile.HighScore()), 20, 20, textSmall, colEdge, text.AlignStart)
	g.label(dst, fmt.Sprintf("Coins: %d", s.Profile.Coins()), 20, 50, textSmall, colGold, text.AlignStart)
	g.label(dst, "Arrows move, SPACE shoots, P pauses, ESC menu, F11 fullscreen, F10 window size",
		w.W/2, w.H-40, textSmall, colEdge, text.AlignCenter)
}

func (g *Game) drawShop(dst *ebiten.Image) {
	s := g.session
	p := s.Profile
	w := s.World
	g.background(dst, assets.ShopBackground)

	g.button(dst, s.Layout.ShopBack, "BACK", true)
	g.label(dst, "SHOP", w.W/2, 30, textTitle, colGold, text.AlignCenter)
	g.label(dst, fmt.Sprintf("Coins: %d", p.Coins()), w.W-20, 30, textSmall, colGold, text.AlignEnd)

	for i, r := range s.Layout.ShopRows {
		id := game.GunID(i)
		gun := id.Gun()

		fill := colButtonOff
		if p.Unlocked(id) {
			fill = colButton
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
		edge := colEdge
		if id == p.Current() {
			edge = colGold
		}
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, edge, false)

		sprite(dst, g.images.Get(gun.Sprite), r.X+10, r.Y+10, 60, 60, nil, 1, colPlayer)
		g.label(dst, gun.Name, r.X+80, r.Y+8, textSmall, colEdge, text.AlignStart)

		var status string
		switch {
		case !p.Unlocked(id):
			status = fmt.Sprintf("Price: %d", gun.Price)
		case p.CanUpgrade(id):
			status = fmt.Sprintf("Lv %d  Upgrade: %d", p.Level(id), game.UpgradePrice(p.Level(id)))
		default:
			status = fmt.Sprintf("Lv %d  MAX", p.Level(id))
		}
		g.label(dst, status, r.X+80, r.Y+32, textSmall, colGold, text.AlignStart)
		g.label(dst, gun.Description, r.X+80, r.Y+58, 1, colEdge, text.AlignStart)
	}
}

func (g *Game) drawGunSelect(dst *ebiten.Image) {
	s := g.session
	p := s.Profile
	w := s.World
	g.background(dst, assets.ShopBackground)

	g.label(dst, "CHOOSE YOUR WATER GUN", w.W/2, w.H*0.2, textBig, colGold, text.AlignCenter)
	for i, r := range s.Layout.GunSlots {
		id := game.GunID(i)
		gun := id.Gun()
		alpha := 1.0
		if !p.Unlocked(id) {
			alpha = 0.3
		}
		sprite(dst, g.images.Get(gun.Sprite), r.X, r.Y, r.W, r.H, nil, alpha, colPlayer)

		edge := colEdge
		if id == p.Current() {
			edge = colGold
		}
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, edge, false)

		cx, _ := r.Center()
		name := gun.Name
		if !p.Unlocked(id) {
			name = "LOCKED"
		}
		g.label(dst, name, cx, r.Y+r.H+10, 1, colEdge, text.AlignCenter)
	}
	g.label(dst, p.Current().Gun().Description, w.W/2, w.H*0.7-70, textSmall, colEdge, text.AlignCenter)
	g.button(dst, s.Layout.Select, "SELECT", true)
}

func (g *Game) drawWorld(dst *ebiten.Image) {
	s := g.session
	w := s.World
	p := &w.Player
	ox, oy := p.ShakeX, p.ShakeY

	bg := w.Difficulty.Settings().Background
	if w.Boss.Active {
		bg = assets.BossBackground
	}
	g.background(dst, bg)

	duckImg := g.images.Get(assets.Duck)
	for _, m := range w.Monsters {
		sprite(dst, duckImg, m.X+ox, m.Y+oy, game.DuckSize, game.DuckSize, m.Type.Color(), m.Alpha(), m.Type.Color())
	}

	if w.Boss.Active {
		b := &w.Boss
		sprite(dst, g.images.Get(w.Difficulty.Settings().BossSprite), b.X+ox, b.Y+oy, game.BossSize, game.BossSize, nil, 1, colBoss)
		const barH = 8
		x, y := float32(b.X+ox), float32(b.Y+oy-barH-4)
		vector.DrawFilledRect(dst, x, y, game.BossSize, barH, colButtonOff, false)
		vector.DrawFilledRect(dst, x, y, float32(game.BossSize*b.HealthFraction()), barH, colHP, false)
	}

	shotImg := g.images.Get(assets.PlayerShot)
	enemyImg := g.images.Get(assets.EnemyShot)
	bossShotImg := g.images.Get(assets.BossShot)
	for _, b := range w.Bullets {
		switch {
		case b.FromBoss:
			sprite(dst, bossShotImg, b.X+ox, b.Y+oy, game.BossBulletSize, game.BossBulletSize, nil, 1, colEnemyShot)
		case b.Enemy:
			sprite(dst, enemyImg, b.X+ox, b.Y+oy, game.BulletWidth, game.BulletHeight, nil, 1, colEnemyShot)
		default:
			sprite(dst, shotImg, b.X+ox, b.Y+oy, game.BulletWidth, game.BulletHeight, nil, 1, colShot)
		}
	}

	coinImg := g.images.Get(assets.Coin)
	for _, c := range w.Coins {
		sprite(dst, coinImg, c.X+ox, c.Y+oy, game.CoinSize, game.CoinSize, nil, 1, colGold)
	}

	// red flash fades from full red to the sprite's own colours
	f := p.Flash()
	tint := color.RGBA{0xff, uint8(255 * (1 - f)), uint8(255 * (1 - f)), 0xff}
	sprite(dst, g.images.Get(s.Profile.Current().Gun().Sprite), p.X+ox, p.Y+oy, game.PlayerSize, game.PlayerSize, tint, p.Alpha(), colPlayer)

	g.drawHUD(dst)
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	s := g.session
	w := s.World

	lifeImg := g.images.Get(assets.Life)
	for i := range w.Player.Lives {
		sprite(dst, lifeImg, 20+float64(i)*36, 20, 32, 32, nil, 1, colHP)
	}

	sprite(dst, g.images.Get(assets.DuckIcon), 20, 62, 32, 32, nil, 1, colWater)
	g.label(dst, fmt.Sprintf("x %d", w.Kills), 60, 68, textSmall, colEdge, text.AlignStart)
	sprite(dst, g.images.Get(assets.Coin), 20, 102, 32, 32, nil, 1, colGold)
	g.label(dst, fmt.Sprintf("x %d", w.LevelCoins), 60, 108, textSmall, colGold, text.AlignStart)

	g.label(dst, fmt.Sprintf("Score %d", w.Score), w.W-20, 20, textSmall, colEdge, text.AlignEnd)
	g.label(dst, w.Difficulty.String(), w.W-20, 48, textSmall, colGold, text.AlignEnd)
	if w.Boss.Active {
		g.label(dst, "BOSS", w.W/2, 20, textBig, colHP, text.AlignCenter)
	}
}

func (g *Game) drawLevelComplete(dst *ebiten.Image) {
	s := g.session
	w := s.World
	l := s.Layout
	shade(dst)

	g.label(dst, "LEVEL COMPLETE", w.W/2, w.H/2-240, textTitle, colGold, text.AlignCenter)
	g.label(dst, fmt.Sprintf("Ducks %d   Coins %d   Score %d", w.Kills, w.LevelCoins, w.Score),
		w.W/2, w.H/2-170, textSmall, colEdge, text.AlignCenter)

	g.button(dst, l.Retry, "RETRY", true)
	g.button(dst, l.NextLevel, "NEXT LEVEL", !w.Difficulty.Last())
	g.button(dst, l.BackToMenu, "MENU", true)
}

func (g *Game) drawGameOver(dst *ebiten.Image) {
	s := g.session
	w := s.World
	shade(dst)

	fade := math.Min(1, s.GameOverTimer/game.GameOverDelay)
	if img := g.images.Get(assets.Dead); img != nil {
		const size = 256
		sprite(dst, img, w.W/2-size/2, w.H/2-size/2-60, size, size, nil, fade, colHP)
	}
	g.label(dst, "GAME OVER", w.W/2, w.H/2+90, textTitle, color.NRGBA{0xff, 0x30, 0x30, uint8(255 * fade)}, text.AlignCenter)
	g.label(dst, fmt.Sprintf("Score %d   High score %d", w.Score, s.Profile.HighScore()), w.W/2, w.H/2+160, textSmall, colEdge, text.AlignCenter)
	if s.GameOverTimer >= game.GameOverDelay {
		g.label(dst, "Press SPACE to return to the menu", w.W/2, w.H/2+200, textSmall, colEdge, text.AlignCenter)
	}
}
