package game

type GunID int

const (
	GunBasic GunID = iota
	GunSuperSoaker
	GunHydroCannon
	GunUltimateBlaster
)

const (
	GunCount    = 4
	MaxGunLevel = 3
)

type Gun struct {
	ID          GunID
	Name        string
	Price       int
	Sprite      string
	Description string
}

var Guns = [GunCount]Gun{
	{GunBasic, "Basic Water Gun", 0, "plane.png", "Standard Water Gun: Balanced speed and power"},
	{GunSuperSoaker, "Super Soaker", 100, "water_gun2.png", "Super Soaker: Two parallel streams"},
	{GunHydroCannon, "Hydro Cannon", 200, "water_gun3.png", "Hydro Cannon: Three streams that block enemy shots"},
	{GunUltimateBlaster, "Ultimate Blaster", 300, "water_gun4.png", "Ultimate Blaster: Three streams plus auto-aim"},
}

func (id GunID) Valid() bool { return id >= GunBasic && id < GunCount }

// Gun returns the catalog entry, Basic for unknown ids.
func (id GunID) Gun() Gun {
	if !id.Valid() {
		return Guns[GunBasic]
	}
	return Guns[id]
}

// UpgradePrice is what it costs to go from level to level+1.
func UpgradePrice(level int) int { return level * 10 }

// BulletSpeed grows by LevelSpeedBonus per level above 1.
func BulletSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return BaseBulletSpeed * (1 + float64(level-1)*LevelSpeedBonus)
}

// muzzleOffsets are the vertical offsets of each stream, relative to the
// player's mid-height.
func (id GunID) muzzleOffsets() []float64 {
	switch id {
	case GunSuperSoaker:
		return []float64{-10, 10}
	case GunHydroCannon, GunUltimateBlaster:
		return []float64{0, -15, 15}
	}
	return []float64{0}
}

// Blocks reports whether the gun's streams cancel enemy bullets.
func (id GunID) Blocks() bool {
	return id == GunHydroCannon || id == GunUltimateBlaster
}

func (id GunID) AutoAims() bool { return id == GunUltimateBlaster }
