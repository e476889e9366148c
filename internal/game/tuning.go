package game

// Sizes are in world units, speeds in units per second, times in seconds.
const (
	PlayerSize    = 48.0
	PlayerSpeed   = 500.0
	StartLives    = 3
	MaxLives      = 5
	InvincibleFor = 2.0 // after a hit
	HitFlashFor   = 0.3
	ShakeFor      = 0.3
	ShakeStrength = 5.0

	DuckSize          = 48.0
	DuckHealth        = 3
	DuckSpawnInterval = 3.0
	DuckShotSpeed     = 400.0
	PointsPerDuck     = 100

	BulletWidth     = 24.0
	BulletHeight    = 12.0
	BossBulletSize  = 24.0
	BaseBulletSpeed = 300.0
	LevelSpeedBonus = 0.2 // per gun level above 1
	AutoAimInterval = 0.5

	BossSize         = 96.0
	BossInset        = 100.0 // gap between the boss and the right edge
	BossSpeed        = 200.0
	BossRetarget     = 2.0
	BossDefeatPoints = 500

	CoinSize = 24.0

	StarCount = 100

	GameOverDelay   = 2.0 // before Space returns to the menu
	CompleteDisplay = 3.0
)
