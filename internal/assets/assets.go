// Package assets loads the sprites and backgrounds from the assets
// directory. A missing image is logged once and drawn as a coloured
// rectangle by the caller.
package assets

import (
	_ "image/jpeg" // let ebiten load .jpg backgrounds
	_ "image/png"  // let ebiten load .png sprites
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprite and background file names.
const (
	Player         = "plane.png"
	Duck           = "monster.png"
	DuckIcon       = "monster2.png"
	PlayerShot     = "bullet.png"
	EnemyShot      = "bullet2.png"
	BossShot       = "boss_shoot.png"
	Coin           = "coin.png"
	Life           = "Lives.png"
	Dead           = "dead.png"
	MenuBackground = "menu_background.png"
	ShopBackground = "background.png"
	BossBackground = "storm_background.png"
)

// Images is a lazy, cached image loader rooted at a directory.
type Images struct {
	dir string
	log *slog.Logger

	mu    sync.Mutex
	cache map[string]*ebiten.Image // nil value: known missing
	load  func(path string) (*ebiten.Image, error)
}

func NewImages(dir string, log *slog.Logger) *Images {
	return &Images{
		dir:   dir,
		log:   log,
		cache: make(map[string]*ebiten.Image),
		load: func(path string) (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			return img, err
		},
	}
}

func (im *Images) Path(name string) string { return filepath.Join(im.dir, name) }

// Get returns the named image or nil when it cannot be loaded.
func (im *Images) Get(name string) *ebiten.Image {
	im.mu.Lock()
	defer im.mu.Unlock()

	if img, ok := im.cache[name]; ok {
		return img
	}
	img, err := im.load(im.Path(name))
	if err != nil {
		im.log.Warn("image unavailable, drawing a placeholder", "name", name, "err", err)
		img = nil
	}
	im.cache[name] = img
	return img
}

// Preload warms the cache so missing files are reported at startup.
func (im *Images) Preload(names ...string) (missing int) {
	for _, n := range names {
		if im.Get(n) == nil {
			missing++
		}
	}
	return missing
}
