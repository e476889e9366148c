package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
)

// Rect is an axis-aligned box with its top-left corner at X, Y.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

type MonsterType int

const (
	MonsterNormal MonsterType = iota
	MonsterFast
	MonsterTough
	monsterTypes
)

// Color is the tint each duck breed is drawn with.
func (t MonsterType) Color() color.RGBA {
	switch t {
	case MonsterFast:
		return color.RGBA{0x00, 0xff, 0x00, 0xff}
	case MonsterTough:
		return color.RGBA{0x00, 0x00, 0xff, 0xff}
	}
	return color.RGBA{0xff, 0x00, 0x00, 0xff}
}

// Monster is a duck.
type Monster struct {
	X, Y          float64
	VY            float64
	Active        bool
	Health        int
	ShootTimer    float64
	ShootInterval float64
	Type          MonsterType

	sh resolv.IShape
}

func newMonster(x, y float64, t MonsterType, vSpeed float64, rng *rand.Rand) *Monster {
	vy := vSpeed
	if rng.Intn(2) == 0 {
		vy = -vy
	}
	return &Monster{
		X:             x,
		Y:             y,
		VY:            vy,
		Active:        true,
		Health:        DuckHealth,
		ShootTimer:    rng.Float64() * 2,
		ShootInterval: 1.5 + rng.Float64()*1.5,
		Type:          t,
	}
}

// Alpha fades wounded ducks.
func (m *Monster) Alpha() float64 { return float64(m.Health) / DuckHealth }

type Bullet struct {
	X, Y     float64
	VX, VY   float64
	Enemy    bool
	Blocks   bool // cancels enemy bullets it touches
	FromBoss bool

	spent bool
	sh    resolv.IShape
}

// Coin stays where its duck died until it is collected or the level resets.
type Coin struct {
	X, Y   float64
	Active bool

	sh resolv.IShape
}

type Star struct {
	X, Y       float64
	Size       float64
	Brightness float64
}

func newStars(n int, w, h float64, rng *rand.Rand) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:          rng.Float64() * w,
			Y:          rng.Float64() * h,
			Size:       1 + rng.Float64()*2,
			Brightness: 0.5 + rng.Float64()*0.5,
		}
	}
	return stars
}

// twinkle drifts each star's brightness, kept within [0.5, 1].
func twinkle(stars []Star, dt float64, rng *rand.Rand) {
	for i := range stars {
		b := stars[i].Brightness + (rng.Float64()-0.5)*dt
		stars[i].Brightness = math.Max(0.5, math.Min(1, b))
	}
}

type Boss struct {
	X, Y       float64
	Active     bool
	Health     int
	MaxHealth  int
	TargetY    float64
	MoveTimer  float64
	ShootTimer float64

	sh resolv.IShape
}

// HealthFraction feeds the health bar.
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

type Player struct {
	X, Y  float64
	Lives int

	Invincible      bool
	InvincibleTimer float64
	HitTimer        float64 // counts down the red flash
	ShakeTimer      float64 // counts down the shake
	ShakeX, ShakeY  float64

	fireTimer float64
	autoTimer float64
}

// Alpha pulses while invincible.
func (p *Player) Alpha() float64 {
	if !p.Invincible {
		return 1
	}
	return 0.5 + math.Abs(math.Sin(p.InvincibleTimer*2))*0.5
}

// Flash is the red tint strength in [0, 1], fading out after a hit.
func (p *Player) Flash() float64 {
	if p.HitTimer <= 0 {
		return 0
	}
	return p.HitTimer / HitFlashFor
}
