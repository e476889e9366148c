package game

// Input is one tick's worth of polled controls. Held keys are level
// triggered, the rest fire once per press. Click coordinates are in
// world units.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool

	Escape     bool
	Pause      bool
	Space      bool
	Fullscreen bool
	CycleSize  bool

	Click          bool
	ClickX, ClickY float64
}

func (in Input) clicked(r Rect) bool {
	return in.Click && r.Contains(in.ClickX, in.ClickY)
}

// Action asks the host for something the game cannot do itself.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFullscreen
	ActionCycleWindowSize
)

// Cue is a one-shot sound effect.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueBossDown
	CuePurchase
	CueCoin
)

// Volume is the playback volume before the player's sfx setting.
func (c Cue) Volume() float64 {
	switch c {
	case CueShoot, CuePurchase:
		return 0.5
	case CueHit:
		return 0.8
	case CueCoin:
		return 0.1
	}
	return 1.0
}

type SoundPlayer interface {
	Play(Cue)
}

type nopSounds struct{}

func (nopSounds) Play(Cue) {}

// Track is a looping music track. TrackKeep leaves whatever is playing.
type Track int

const (
	TrackKeep Track = iota
	TrackMenu
	TrackGame
	TrackBoss
)
