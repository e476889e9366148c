package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
)

// tags let resolv filter which shapes a test runs against
var (
	tagPlayer     = resolv.NewTag("player")
	tagDuck       = resolv.NewTag("duck")
	tagBoss       = resolv.NewTag("boss")
	tagPlayerShot = resolv.NewTag("playerShot")
	tagEnemyShot  = resolv.NewTag("enemyShot")
	tagCoin       = resolv.NewTag("coin")
)

const cellSize = 32

// Outcome is what a tick means for the run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerDown
	OutcomeBossDefeated
)

// World is one level run: the player, the ducks, the boss and everything
// they shoot or drop, in a W×H world with y growing downwards.
type World struct {
	W, H       float64
	Difficulty Difficulty

	Player   Player
	Monsters []*Monster
	Bullets  []*Bullet
	Coins    []*Coin
	Boss     Boss

	Score      int
	Kills      int
	LevelCoins int
	Over       bool

	rng     *rand.Rand
	profile *Profile
	sounds  SoundPlayer
	log     *slog.Logger

	space      *resolv.Space
	playerSh   resolv.IShape
	spawnTimer float64
	bossBeaten bool

	monsterOf map[resolv.IShape]*Monster
	bulletOf  map[resolv.IShape]*Bullet
	coinOf    map[resolv.IShape]*Coin
}

func NewWorld(w, h float64, d Difficulty, profile *Profile, sounds SoundPlayer, rng *rand.Rand, log *slog.Logger) *World {
	if sounds == nil {
		sounds = nopSounds{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	wd := &World{
		W:          w,
		H:          h,
		Difficulty: d,
		rng:        rng,
		profile:    profile,
		sounds:     sounds,
		log:        log,
	}
	wd.Reset()
	return wd
}

func (w *World) settings() Settings { return w.Difficulty.Settings() }

// Reset starts a fresh run: totals are zeroed as well as the level.
func (w *World) Reset() {
	w.Kills = 0
	w.LevelCoins = 0
	w.ResetLevel()
}

// ResetLevel restarts the level and keeps the kill and coin totals.
func (w *World) ResetLevel() {
	w.Score = 0
	w.Over = false
	w.bossBeaten = false
	w.spawnTimer = 0
	w.Boss = Boss{}
	w.Monsters = w.Monsters[:0]
	w.Bullets = w.Bullets[:0]
	w.Coins = w.Coins[:0]

	w.Player = Player{
		X:     PlayerSize,
		Y:     w.H/2 - PlayerSize/2,
		Lives: StartLives,
	}

	w.monsterOf = make(map[resolv.IShape]*Monster)
	w.bulletOf = make(map[resolv.IShape]*Bullet)
	w.coinOf = make(map[resolv.IShape]*Coin)
	w.space = resolv.NewSpace(int(w.W), int(w.H), cellSize, cellSize)
	w.playerSh = resolv.NewRectangleFromTopLeft(w.Player.X, w.Player.Y, PlayerSize, PlayerSize)
	w.playerSh.Tags().Set(tagPlayer)
	w.space.Add(w.playerSh)

	s := w.settings()
	for i := range s.DuckCount {
		x := w.Difficulty.formationX(i, w.W, w.rng)
		y := w.rng.Float64() * (w.H - DuckSize)
		w.addMonster(newMonster(x, y, s.DuckType, s.DuckVerticalSpeed, w.rng))
	}
}

func (w *World) SetDifficulty(d Difficulty) { w.Difficulty = d }

// place moves a shape so that its top-left corner sits at x, y. resolv
// positions rectangles by their centre.
func place(sh resolv.IShape, x, y, width, height float64) {
	sh.SetPosition(x+width/2, y+height/2)
}

func (w *World) addMonster(m *Monster) {
	m.sh = resolv.NewRectangleFromTopLeft(m.X, m.Y, DuckSize, DuckSize)
	m.sh.Tags().Set(tagDuck)
	w.space.Add(m.sh)
	w.monsterOf[m.sh] = m
	w.Monsters = append(w.Monsters, m)
}

func (b *Bullet) size() (float64, float64) {
	if b.FromBoss {
		return BossBulletSize, BossBulletSize
	}
	return BulletWidth, BulletHeight
}

func (w *World) addBullet(b *Bullet) {
	bw, bh := b.size()
	b.sh = resolv.NewRectangleFromTopLeft(b.X, b.Y, bw, bh)
	if b.Enemy {
		b.sh.Tags().Set(tagEnemyShot)
	} else {
		b.sh.Tags().Set(tagPlayerShot)
	}
	w.space.Add(b.sh)
	w.bulletOf[b.sh] = b
	w.Bullets = append(w.Bullets, b)
}

func (w *World) addCoin(cx, cy float64) {
	c := &Coin{X: cx - CoinSize/2, Y: cy - CoinSize/2, Active: true}
	c.sh = resolv.NewRectangleFromTopLeft(c.X, c.Y, CoinSize, CoinSize)
	c.sh.Tags().Set(tagCoin)
	w.space.Add(c.sh)
	w.coinOf[c.sh] = c
	w.Coins = append(w.Coins, c)
}

// Step advances the world by dt seconds.
func (w *World) Step(in Input, dt float64) Outcome {
	if w.Over {
		return OutcomePlayerDown
	}

	w.tickPlayer(dt)
	w.movePlayer(in, dt)
	w.updateBullets(in, dt)
	w.updateMonsters(dt)
	w.updateBoss(dt)
	out := w.collide()
	w.compact()
	return out
}

func (w *World) tickPlayer(dt float64) {
	p := &w.Player
	if p.Invincible {
		p.InvincibleTimer -= dt
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}
	if p.HitTimer > 0 {
		p.HitTimer = math.Max(0, p.HitTimer-dt)
	}
	if p.ShakeTimer > 0 {
		p.ShakeTimer = math.Max(0, p.ShakeTimer-dt)
		damp := p.ShakeTimer / ShakeFor
		p.ShakeX = (w.rng.Float64()*2 - 1) * ShakeStrength * damp
		p.ShakeY = (w.rng.Float64()*2 - 1) * ShakeStrength * damp
	} else {
		p.ShakeX, p.ShakeY = 0, 0
	}
}

func (w *World) movePlayer(in Input, dt float64) {
	p := &w.Player
	step := PlayerSpeed * dt
	if in.Left {
		p.X -= step
	}
	if in.Right {
		p.X += step
	}
	if in.Up {
		p.Y -= step
	}
	if in.Down {
		p.Y += step
	}
	p.X = clamp(p.X, 0, w.W-PlayerSize)
	p.Y = clamp(p.Y, 0, w.H-PlayerSize)
	place(w.playerSh, p.X, p.Y, PlayerSize, PlayerSize)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func (w *World) updateBullets(in Input, dt float64) {
	for _, b := range w.Bullets {
		if b.spent {
			continue
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
		bw, bh := b.size()
		if b.X > w.W || b.X+bw < 0 || b.Y > w.H || b.Y+bh < 0 {
			b.spent = true
			continue
		}
		place(b.sh, b.X, b.Y, bw, bh)
	}

	p := &w.Player
	gun := w.profile.Current()
	p.fireTimer += dt
	if in.Fire && p.fireTimer >= w.settings().FireInterval {
		p.fireTimer = 0
		w.fire(gun)
	}

	if gun.AutoAims() {
		p.autoTimer += dt
		if p.autoTimer >= AutoAimInterval {
			p.autoTimer = 0
			w.autoFire(gun)
		}
	}
}

// fire shoots one stream per muzzle from the player's right edge.
func (w *World) fire(gun GunID) {
	p := &w.Player
	speed := BulletSpeed(w.profile.Level(gun))
	for _, off := range gun.muzzleOffsets() {
		w.addBullet(&Bullet{
			X:      p.X + PlayerSize,
			Y:      p.Y + PlayerSize/2 + off - BulletHeight/2,
			VX:     speed,
			Blocks: gun.Blocks(),
		})
	}
	w.sounds.Play(CueShoot)
}

// autoFire aims one shot at the nearest active duck.
func (w *World) autoFire(gun GunID) {
	p := &w.Player
	sx, sy := p.X+PlayerSize, p.Y+PlayerSize/2-BulletHeight/2

	var target *Monster
	best := math.Inf(1)
	for _, m := range w.Monsters {
		if !m.Active {
			continue
		}
		if d := math.Hypot(m.X-sx, m.Y-sy); d < best {
			best, target = d, m
		}
	}
	if target == nil {
		return
	}

	vx, vy := aim(sx, sy, target.X+DuckSize/2, target.Y+DuckSize/2, BulletSpeed(w.profile.Level(gun)))
	w.addBullet(&Bullet{X: sx, Y: sy, VX: vx, VY: vy, Blocks: gun.Blocks()})
	w.sounds.Play(CueShoot)
}

// aim returns a velocity of the given speed pointing from (x, y) to
// (tx, ty). A zero-length vector shoots straight left.
func aim(x, y, tx, ty, speed float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return -speed, 0
	}
	return dx / d * speed, dy / d * speed
}

func (w *World) updateMonsters(dt float64) {
	s := w.settings()

	if !w.Boss.Active {
		w.spawnTimer += dt
		if w.spawnTimer >= DuckSpawnInterval {
			w.spawnTimer = 0
			t := MonsterType(w.rng.Intn(int(monsterTypes)))
			y := w.rng.Float64() * (w.H - DuckSize)
			w.addMonster(newMonster(w.W, y, t, s.DuckVerticalSpeed, w.rng))
		}
	}

	for _, m := range w.Monsters {
		if !m.Active {
			continue
		}
		m.X -= s.DuckSpeed * dt
		m.Y += m.VY * dt
		if m.Y < 0 {
			m.Y = 0
			m.VY = math.Abs(m.VY)
		} else if m.Y > w.H-DuckSize {
			m.Y = w.H - DuckSize
			m.VY = -math.Abs(m.VY)
		}
		if m.X+DuckSize < 0 {
			m.Active = false
			continue
		}
		place(m.sh, m.X, m.Y, DuckSize, DuckSize)

		m.ShootTimer += dt
		if m.ShootTimer >= m.ShootInterval {
			m.ShootTimer = 0
			w.addBullet(&Bullet{
				X:     m.X - BulletWidth,
				Y:     m.Y + DuckSize/2 - BulletHeight/2,
				VX:    -DuckShotSpeed,
				Enemy: true,
			})
		}
	}
}

func (w *World) collide() Outcome {
	out := OutcomeNone
	p := &w.Player

	if !p.Invincible {
		w.playerSh.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: w.playerSh.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemyShot),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				b := w.bulletOf[set.OtherShape]
				if b == nil || b.spent {
					return true
				}
				b.spent = true
				w.sounds.Play(CueHit)
				w.loseLife()
				return false
			},
		})
	}

	for _, b := range w.Bullets {
		if b.Enemy || b.spent {
			continue
		}
		if w.hitMonster(b) {
			continue
		}
		if w.Boss.Active {
			if w.hitBoss(b) {
				out = OutcomeBossDefeated
			}
			if b.spent {
				continue
			}
		}
		if b.Blocks {
			w.block(b)
		}
	}

	w.playerSh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: w.playerSh.SelectTouchingCells(0).FilterShapes().ByTags(tagCoin),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if c := w.coinOf[set.OtherShape]; c != nil && c.Active {
				c.Active = false
				w.LevelCoins++
				w.profile.AddCoin()
				w.sounds.Play(CueCoin)
			}
			return true
		},
	})

	if !p.Invincible && !w.Over {
		w.playerSh.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: w.playerSh.SelectTouchingCells(0).FilterShapes().ByTags(tagDuck),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				if m := w.monsterOf[set.OtherShape]; m == nil || !m.Active {
					return true
				}
				w.loseLife()
				return false
			},
		})
	}

	if w.Over {
		return OutcomePlayerDown
	}
	return out
}

// hitMonster lets b wound the first active duck it overlaps.
func (w *World) hitMonster(b *Bullet) bool {
	b.sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: b.sh.SelectTouchingCells(0).FilterShapes().ByTags(tagDuck),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			m := w.monsterOf[set.OtherShape]
			if m == nil || !m.Active {
				return true
			}
			b.spent = true
			m.Health--
			w.sounds.Play(CueHit)
			if m.Health <= 0 {
				w.killMonster(m)
			}
			return false
		},
	})
	return b.spent
}

func (w *World) killMonster(m *Monster) {
	m.Active = false
	w.Kills++
	w.Score += PointsPerDuck
	w.profile.RecordScore(w.Score)
	w.addCoin(m.X+DuckSize/2, m.Y+DuckSize/2)
}

// block cancels the first enemy bullet a blocking stream touches.
func (w *World) block(b *Bullet) {
	b.sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: b.sh.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemyShot),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			e := w.bulletOf[set.OtherShape]
			if e == nil || e.spent {
				return true
			}
			e.spent = true
			b.spent = true
			return false
		},
	})
}

func (w *World) loseLife() {
	p := &w.Player
	if p.Invincible || w.Over {
		return
	}
	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		w.Over = true
		w.log.Debug("player down", "score", w.Score, "kills", w.Kills)
		return
	}
	p.Invincible = true
	p.InvincibleTimer = InvincibleFor
	p.HitTimer = HitFlashFor
	p.ShakeTimer = ShakeFor
}

// compact drops dead ducks, spent bullets and collected coins in place.
func (w *World) compact() {
	n := 0
	for _, m := range w.Monsters {
		if m.Active {
			w.Monsters[n] = m
			n++
			continue
		}
		w.space.Remove(m.sh)
		delete(w.monsterOf, m.sh)
	}
	clear(w.Monsters[n:])
	w.Monsters = w.Monsters[:n]

	n = 0
	for _, b := range w.Bullets {
		if !b.spent {
			w.Bullets[n] = b
			n++
			continue
		}
		w.space.Remove(b.sh)
		delete(w.bulletOf, b.sh)
	}
	clear(w.Bullets[n:])
	w.Bullets = w.Bullets[:n]

	n = 0
	for _, c := range w.Coins {
		if c.Active {
			w.Coins[n] = c
			n++
			continue
		}
		w.space.Remove(c.sh)
		delete(w.coinOf, c.sh)
	}
	clear(w.Coins[n:])
	w.Coins = w.Coins[:n]
}

// clearBullets removes every bullet in flight.
func (w *World) clearBullets() {
	for _, b := range w.Bullets {
		w.space.Remove(b.sh)
		delete(w.bulletOf, b.sh)
	}
	clear(w.Bullets)
	w.Bullets = w.Bullets[:0]
}

// Resize moves the world to a new size. Ducks keep their relative
// position, everything else is clamped back inside.
func (w *World) Resize(width, height float64) {
	if width == w.W && height == w.H {
		return
	}
	sx, sy := width/w.W, height/w.H
	w.W, w.H = width, height

	for _, m := range w.Monsters {
		m.X *= sx
		m.Y *= sy
	}
	w.Player.X = clamp(w.Player.X, 0, w.W-PlayerSize)
	w.Player.Y = clamp(w.Player.Y, 0, w.H-PlayerSize)
	if w.Boss.Active {
		w.Boss.X = w.bossX()
		w.Boss.Y = clamp(w.Boss.Y, 0, w.H-BossSize)
		w.Boss.TargetY = clamp(w.Boss.TargetY, 0, w.H-BossSize)
	}

	w.space = resolv.NewSpace(int(w.W), int(w.H), cellSize, cellSize)
	place(w.playerSh, w.Player.X, w.Player.Y, PlayerSize, PlayerSize)
	w.space.Add(w.playerSh)
	for _, m := range w.Monsters {
		place(m.sh, m.X, m.Y, DuckSize, DuckSize)
		w.space.Add(m.sh)
	}
	for _, b := range w.Bullets {
		bw, bh := b.size()
		place(b.sh, b.X, b.Y, bw, bh)
		w.space.Add(b.sh)
	}
	for _, c := range w.Coins {
		w.space.Add(c.sh)
	}
	if w.Boss.Active {
		place(w.Boss.sh, w.Boss.X, w.Boss.Y, BossSize, BossSize)
		w.space.Add(w.Boss.sh)
	}
}
