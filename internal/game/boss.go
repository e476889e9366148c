package game

import (
	"math"

	"github.com/solarlune/resolv"
)

func (w *World) bossX() float64 { return w.W - BossInset - BossSize }

// spawnBoss brings the boss in once the score reaches the difficulty's
// threshold. Every bullet in flight is cleared.
func (w *World) spawnBoss() {
	s := w.settings()
	y := w.H/2 - BossSize/2
	w.Boss = Boss{
		X:         w.bossX(),
		Y:         y,
		Active:    true,
		Health:    s.BossHealth,
		MaxHealth: s.BossHealth,
		TargetY:   y,
	}
	w.Boss.sh = resolv.NewRectangleFromTopLeft(w.Boss.X, w.Boss.Y, BossSize, BossSize)
	w.Boss.sh.Tags().Set(tagBoss)
	w.space.Add(w.Boss.sh)
	w.clearBullets()
	w.log.Debug("boss spawned", "difficulty", w.Difficulty, "score", w.Score)
}

func (w *World) updateBoss(dt float64) {
	b := &w.Boss
	if !b.Active {
		if !w.bossBeaten && w.Score >= w.settings().BossSpawnScore {
			w.spawnBoss()
		}
		return
	}

	b.MoveTimer += dt
	if b.MoveTimer >= BossRetarget {
		b.MoveTimer = 0
		b.TargetY = w.rng.Float64() * (w.H - BossSize)
	}

	step := BossSpeed * dt
	if dy := b.TargetY - b.Y; math.Abs(dy) <= step {
		b.Y = b.TargetY
	} else {
		b.Y += math.Copysign(step, dy)
	}
	b.X = w.bossX()
	b.Y = clamp(b.Y, 0, w.H-BossSize)
	place(b.sh, b.X, b.Y, BossSize, BossSize)

	b.ShootTimer += dt
	if b.ShootTimer >= w.settings().BossFireInterval {
		b.ShootTimer = 0
		w.bossVolley()
	}
}

// bossVolley fires the difficulty's pattern from the boss's left edge.
// Heights are fractions of the boss sprite.
func (w *World) bossVolley() {
	switch w.Difficulty {
	case Hard:
		w.trackingShot(0.25, 400)
		w.trackingShot(0.75, 400)
		w.straightShot(1.0/3, -500, 100)
		w.straightShot(2.0/3, -500, -100)
	case Normal:
		w.trackingShot(1.0/3, 350)
		w.trackingShot(2.0/3, 350)
		w.straightShot(0.5, -450, 0)
	default:
		w.trackingShot(0.5, 300)
		w.straightShot(0.5, -400, 0)
	}
	w.sounds.Play(CueShoot)
}

func (w *World) bossMuzzle(frac float64) (float64, float64) {
	return w.Boss.X - BossBulletSize, w.Boss.Y + BossSize*frac - BossBulletSize/2
}

// trackingShot aims at the player's centre.
func (w *World) trackingShot(frac, speed float64) {
	x, y := w.bossMuzzle(frac)
	px, py := w.Player.X+PlayerSize/2, w.Player.Y+PlayerSize/2
	vx, vy := aim(x+BossBulletSize/2, y+BossBulletSize/2, px, py, speed)
	w.addBullet(&Bullet{X: x, Y: y, VX: vx, VY: vy, Enemy: true, FromBoss: true})
}

func (w *World) straightShot(frac, vx, vy float64) {
	x, y := w.bossMuzzle(frac)
	w.addBullet(&Bullet{X: x, Y: y, VX: vx, VY: vy, Enemy: true, FromBoss: true})
}

// hitBoss lets b damage the boss and reports whether this shot beat it.
func (w *World) hitBoss(b *Bullet) bool {
	b.sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: b.sh.SelectTouchingCells(0).FilterShapes().ByTags(tagBoss),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			b.spent = true
			return false
		},
	})
	if !b.spent {
		return false
	}

	w.Boss.Health--
	w.sounds.Play(CueHit)
	if w.Boss.Health > 0 {
		return false
	}

	w.Boss.Active = false
	w.space.Remove(w.Boss.sh)
	w.bossBeaten = true
	w.Score += BossDefeatPoints
	w.Player.Lives = min(w.Player.Lives+1, MaxLives)
	w.profile.RecordScore(w.Score)
	w.sounds.Play(CueBossDown)
	w.log.Info("boss defeated", "difficulty", w.Difficulty, "score", w.Score)
	return true
}
