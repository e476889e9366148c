// Package viewport holds the screen-space math that sits between the
// window and the game world.
package viewport

// Minimum world size. The world grows along one axis when the window
// aspect ratio differs, never shrinks below this.
const (
	MinWorldWidth  = 1280.0
	MinWorldHeight = 720.0
)

// Extend returns the world size for a window of outW x outH pixels so
// that at least minW x minH world units stay visible and the remaining
// axis is extended to fill the window.
func Extend(outW, outH int, minW, minH float64) (float64, float64) {
	if outW <= 0 || outH <= 0 {
		return minW, minH
	}
	sx := float64(outW) / minW
	sy := float64(outH) / minH
	scale := sx
	if sy < scale {
		scale = sy
	}
	return float64(outW) / scale, float64(outH) / scale
}

// Size is a windowed-mode resolution.
type Size struct{ W, H int }

// WindowSizes are the resolutions F10 cycles through.
var WindowSizes = []Size{
	{800, 600},
	{1024, 768},
	{1280, 720},
	{1920, 1080},
}

// DefaultSizeIndex points at 1280x720.
const DefaultSizeIndex = 2

// Modes tracks fullscreen state and the selected windowed size.
type Modes struct {
	Fullscreen bool
	SizeIndex  int
}

func NewModes(fullscreen bool, sizeIndex int) Modes {
	if sizeIndex < 0 || sizeIndex >= len(WindowSizes) {
		sizeIndex = DefaultSizeIndex
	}
	return Modes{Fullscreen: fullscreen, SizeIndex: sizeIndex}
}

func (m *Modes) ToggleFullscreen() { m.Fullscreen = !m.Fullscreen }

// CycleSize advances to the next windowed size. It reports false and
// does nothing in fullscreen.
func (m *Modes) CycleSize() bool {
	if m.Fullscreen {
		return false
	}
	m.SizeIndex = (m.SizeIndex + 1) % len(WindowSizes)
	return true
}

func (m Modes) Size() Size { return WindowSizes[m.SizeIndex] }
