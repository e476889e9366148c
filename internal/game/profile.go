package game

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kamstrup/intmap"
)

// Preference keys.
const (
	keyHighScore    = "highScore"
	keyTotalCoins   = "totalCoins"
	keyUnlockedGuns = "unlockedGuns"
	keyCurrentGun   = "currentGun"
	keyGunLevelFmt  = "gun_level_%d"
)

// Store is the key-value preference backend.
type Store interface {
	Int(key string, def int) int
	SetInt(key string, v int)
	String(key, def string) string
	SetString(key, v string)
	Flush() error
}

// Profile is the persistent player progress: high score, coin wallet and
// water-gun armory. Every change is flushed straight away.
type Profile struct {
	store Store
	log   *slog.Logger

	highScore int
	coins     int
	unlocked  *intmap.Set[GunID]
	levels    *intmap.Map[GunID, int]
	current   GunID
}

// LoadProfile reads the profile from store. initialCoins is used when no
// wallet was saved yet; bonus is credited on every load.
func LoadProfile(store Store, initialCoins, bonus int, log *slog.Logger) *Profile {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	p := &Profile{
		store:    store,
		log:      log,
		unlocked: intmap.NewSet[GunID](GunCount),
		levels:   intmap.New[GunID, int](GunCount),
	}

	p.highScore = store.Int(keyHighScore, 0)
	p.coins = store.Int(keyTotalCoins, initialCoins) + bonus
	store.SetInt(keyTotalCoins, p.coins)

	p.unlocked.Add(GunBasic)
	for _, part := range strings.Split(store.String(keyUnlockedGuns, "0"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			log.Warn("skipping unlocked gun id", "id", part, "err", err)
			continue
		}
		if !GunID(id).Valid() {
			log.Warn("skipping unknown gun id", "id", id)
			continue
		}
		p.unlocked.Add(GunID(id))
	}

	for _, g := range Guns {
		lvl := store.Int(levelKey(g.ID), 1)
		lvl = max(1, min(lvl, MaxGunLevel))
		p.levels.Put(g.ID, lvl)
	}

	p.current = GunBasic
	if id := GunID(store.Int(keyCurrentGun, int(GunBasic))); p.unlocked.Has(id) {
		p.current = id
	}

	p.flush()
	return p
}

func levelKey(id GunID) string { return fmt.Sprintf(keyGunLevelFmt, int(id)) }

func (p *Profile) flush() {
	if err := p.store.Flush(); err != nil {
		p.log.Warn("saving preferences failed", "err", err)
	}
}

func (p *Profile) HighScore() int { return p.highScore }
func (p *Profile) Coins() int { return p.coins }
func (p *Profile) Current() GunID { return p.current }
func (p *Profile) Unlocked(id GunID) bool { return p.unlocked.Has(id) }

func (p *Profile) Level(id GunID) int {
	lvl, ok := p.levels.Get(id)
	if !ok {
		return 1
	}
	return lvl
}

func (p *Profile) CanUpgrade(id GunID) bool {
	return p.Unlocked(id) && p.Level(id) < MaxGunLevel
}

// RecordScore stores score as the new high score when it beats the old
// one and reports whether it did.
func (p *Profile) RecordScore(score int) bool {
	if score <= p.highScore {
		return false
	}
	p.highScore = score
	p.store.SetInt(keyHighScore, score)
	p.flush()
	return true
}

func (p *Profile) AddCoin() {
	p.coins++
	p.store.SetInt(keyTotalCoins, p.coins)
	p.flush()
}

// Select equips an unlocked gun.
func (p *Profile) Select(id GunID) bool {
	if !p.Unlocked(id) {
		return false
	}
	p.current = id
	p.store.SetInt(keyCurrentGun, int(id))
	p.flush()
	return true
}

type ShopResult int

const (
	ShopNone ShopResult = iota
	ShopSelected
	ShopUpgraded
	ShopBought
	ShopTooPoor
)

func (r ShopResult) String() string {
	switch r {
	case ShopSelected:
		return "selected"
	case ShopUpgraded:
		return "upgraded"
	case ShopBought:
		return "bought"
	case ShopTooPoor:
		return "too-poor"
	}
	return "none"
}

// Shop applies a click on a gun's shop row: an owned gun is upgraded
// when affordable and then equipped, a locked gun is bought when
// affordable.
func (p *Profile) Shop(id GunID) ShopResult {
	if !id.Valid() {
		return ShopNone
	}

	if p.Unlocked(id) {
		res := ShopSelected
		if p.CanUpgrade(id) {
			price := UpgradePrice(p.Level(id))
			if p.coins >= price {
				p.coins -= price
				lvl := p.Level(id) + 1
				p.levels.Put(id, lvl)
				p.store.SetInt(levelKey(id), lvl)
				p.store.SetInt(keyTotalCoins, p.coins)
				res = ShopUpgraded
			}
		}
		p.Select(id)
		return res
	}

	price := id.Gun().Price
	if p.coins < price {
		return ShopTooPoor
	}
	p.coins -= price
	p.unlocked.Add(id)
	p.current = id
	p.store.SetString(keyUnlockedGuns, p.unlockedList())
	p.store.SetInt(keyCurrentGun, int(id))
	p.store.SetInt(keyTotalCoins, p.coins)
	p.flush()
	return ShopBought
}

// unlockedList renders the unlocked ids in catalog order, "0,2,3".
func (p *Profile) unlockedList() string {
	ids := make([]string, 0, p.unlocked.Len())
	for _, g := range Guns {
		if p.unlocked.Has(g.ID) {
			ids = append(ids, strconv.Itoa(int(g.ID)))
		}
	}
	return strings.Join(ids, ",")
}
