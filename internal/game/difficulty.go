package game

import "math/rand"

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Settings is the per-difficulty tuning table.
type Settings struct {
	DuckSpeed         float64
	DuckVerticalSpeed float64
	DuckCount         int
	FireInterval      float64 // player
	DuckType          MonsterType

	BossSpawnScore   int
	BossHealth       int
	BossFireInterval float64

	Background string
	BossSprite string
}

var settings = [...]Settings{
	Easy: {
		DuckSpeed:         100,
		DuckVerticalSpeed: 50,
		DuckCount:         4,
		FireInterval:      0.6,
		DuckType:          MonsterNormal,
		BossSpawnScore:    500,
		BossHealth:        10,
		BossFireInterval:  1.5,
		Background:        "pool_background.png",
		BossSprite:        "boss.png",
	},
	Normal: {
		DuckSpeed:         150,
		DuckVerticalSpeed: 100,
		DuckCount:         6,
		FireInterval:      0.4,
		DuckType:          MonsterFast,
		BossSpawnScore:    750,
		BossHealth:        15,
		BossFireInterval:  1.2,
		Background:        "beach_background.png",
		BossSprite:        "boss2.png",
	},
	Hard: {
		DuckSpeed:         200,
		DuckVerticalSpeed: 150,
		DuckCount:         8,
		FireInterval:      0.3,
		DuckType:          MonsterTough,
		BossSpawnScore:    1000,
		BossHealth:        20,
		BossFireInterval:  1.0,
		Background:        "park_background.png",
		BossSprite:        "boss3.png",
	},
}

func (d Difficulty) valid() bool { return d >= Easy && d <= Hard }

// Settings falls back to Easy for out-of-range values.
func (d Difficulty) Settings() Settings {
	if !d.valid() {
		return settings[Easy]
	}
	return settings[d]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Normal:
		return "NORMAL"
	case Hard:
		return "HARD"
	}
	return "EASY"
}

// Next is the menu cycle: Easy, Normal, Hard, Easy.
func (d Difficulty) Next() Difficulty {
	if d >= Hard || !d.valid() {
		return Easy
	}
	return d + 1
}

// Last reports whether there is no level after this one.
func (d Difficulty) Last() bool { return d == Hard }

// formationX places the i-th duck of the opening wave beyond the right
// edge of a world w units wide.
func (d Difficulty) formationX(i int, w float64, rng *rand.Rand) float64 {
	switch d {
	case Normal:
		return w + float64(i%2)*100
	case Hard:
		return w + float64(i%3)*80
	}
	return w + rng.Float64()*200
}
