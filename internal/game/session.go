package game

import (
	"log/slog"
	"math/rand"
)

type State int

const (
	StateMenu State = iota
	StateShop
	StateGunSelect
	StatePlaying
	StatePaused
	StateInGameMenu
	StateLevelComplete
	StateGameOver
	StateGameComplete
)

var stateNames = [...]string{
	StateMenu:          "menu",
	StateShop:          "shop",
	StateGunSelect:     "gun-select",
	StatePlaying:       "playing",
	StatePaused:        "paused",
	StateInGameMenu:    "in-game-menu",
	StateLevelComplete: "level-complete",
	StateGameOver:      "game-over",
	StateGameComplete:  "game-complete",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Session is the whole game behind the host: screen state, the current
// world and the player's profile. It is driven one tick at a time.
type Session struct {
	State   State
	World   *World
	Profile *Profile
	Layout  Layout
	Stars   []Star

	GameOverTimer float64
	CompleteTimer float64

	rng    *rand.Rand
	sounds SoundPlayer
	log    *slog.Logger
}

func NewSession(w, h float64, profile *Profile, sounds SoundPlayer, rng *rand.Rand, log *slog.Logger) *Session {
	if sounds == nil {
		sounds = nopSounds{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		State:   StateMenu,
		World:   NewWorld(w, h, Easy, profile, sounds, rng, log),
		Profile: profile,
		Layout:  NewLayout(w, h),
		Stars:   newStars(StarCount, w, h, rng),
		rng:     rng,
		sounds:  sounds,
		log:     log,
	}
}

func (s *Session) Difficulty() Difficulty { return s.World.Difficulty }

func (s *Session) setState(st State) {
	if st == s.State {
		return
	}
	s.log.Debug("state change", "from", s.State, "to", st)
	s.State = st
	switch st {
	case StateGameOver:
		s.GameOverTimer = 0
	case StateGameComplete:
		s.CompleteTimer = 0
	}
}

// Update advances one tick of dt seconds and returns what the host has
// to do, if anything.
func (s *Session) Update(in Input, dt float64) Action {
	twinkle(s.Stars, dt, s.rng)

	if s.State == StateMenu || s.State == StatePlaying {
		if in.Fullscreen {
			return ActionToggleFullscreen
		}
		if in.CycleSize {
			return ActionCycleWindowSize
		}
	}

	switch s.State {
	case StateMenu:
		return s.updateMenu(in)
	case StateShop:
		s.updateShop(in)
	case StateGunSelect:
		s.updateGunSelect(in)
	case StatePlaying:
		s.updatePlaying(in, dt)
	case StatePaused:
		if in.Pause {
			s.setState(StatePlaying)
		}
	case StateInGameMenu:
		return s.updateInGameMenu(in)
	case StateLevelComplete:
		s.updateLevelComplete(in)
	case StateGameOver:
		s.GameOverTimer += dt
		if s.GameOverTimer >= GameOverDelay && in.Space {
			s.World.Reset()
			s.setState(StateMenu)
		}
	case StateGameComplete:
		s.CompleteTimer += dt
		if s.CompleteTimer >= CompleteDisplay || in.Escape {
			s.World.SetDifficulty(Easy)
			s.World.Reset()
			s.setState(StateMenu)
		}
	}
	return ActionNone
}

func (s *Session) updateMenu(in Input) Action {
	l := &s.Layout
	switch {
	case in.clicked(l.Shop):
		s.setState(StateShop)
	case in.clicked(l.Start):
		s.setState(StateGunSelect)
	case in.clicked(l.Difficulty):
		s.World.SetDifficulty(s.Difficulty().Next())
		s.World.Reset()
		s.log.Debug("difficulty changed", "difficulty", s.Difficulty())
	case in.clicked(l.Quit):
		return ActionQuit
	}
	return ActionNone
}

func (s *Session) updateShop(in Input) {
	if in.clicked(s.Layout.ShopBack) {
		s.setState(StateMenu)
		return
	}
	for i, r := range s.Layout.ShopRows {
		if !in.clicked(r) {
			continue
		}
		id := GunID(i)
		res := s.Profile.Shop(id)
		switch res {
		case ShopBought, ShopUpgraded:
			s.sounds.Play(CuePurchase)
		}
		s.log.Debug("shop", "gun", id.Gun().Name, "result", res, "coins", s.Profile.Coins())
		return
	}
}

func (s *Session) updateGunSelect(in Input) {
	for i, r := range s.Layout.GunSlots {
		if in.clicked(r) {
			s.Profile.Select(GunID(i))
			return
		}
	}
	if in.clicked(s.Layout.Select) {
		s.World.ResetLevel()
		s.setState(StatePlaying)
	}
}

func (s *Session) updatePlaying(in Input, dt float64) {
	switch {
	case in.Escape:
		s.setState(StateInGameMenu)
		return
	case in.Pause:
		s.setState(StatePaused)
		return
	}

	switch s.World.Step(in, dt) {
	case OutcomePlayerDown:
		s.setState(StateGameOver)
	case OutcomeBossDefeated:
		if s.Difficulty().Last() {
			s.setState(StateGameComplete)
		} else {
			s.setState(StateLevelComplete)
		}
	}
}

func (s *Session) updateInGameMenu(in Input) Action {
	l := &s.Layout
	switch {
	case in.Escape, in.clicked(l.Continue):
		s.setState(StatePlaying)
	case in.clicked(l.MainMenu):
		s.World.Reset()
		s.setState(StateMenu)
	case in.clicked(l.InGameQuit):
		return ActionQuit
	}
	return ActionNone
}

func (s *Session) updateLevelComplete(in Input) {
	l := &s.Layout
	switch {
	case in.clicked(l.Retry):
		s.World.Reset()
		s.setState(StatePlaying)
	case in.clicked(l.NextLevel) && !s.Difficulty().Last():
		s.World.SetDifficulty(s.Difficulty().Next())
		s.World.ResetLevel()
		s.setState(StatePlaying)
	case in.clicked(l.BackToMenu):
		s.World.SetDifficulty(Easy)
		s.World.Reset()
		s.setState(StateMenu)
	}
}

// Resize follows a change of world size.
func (s *Session) Resize(w, h float64) {
	if w == s.World.W && h == s.World.H {
		return
	}
	s.World.Resize(w, h)
	s.Layout = NewLayout(w, h)
	s.Stars = newStars(StarCount, w, h, s.rng)
}

// Music is the track that should be playing in the current state.
func (s *Session) Music() Track {
	switch s.State {
	case StateMenu:
		return TrackMenu
	case StatePlaying:
		if s.World.Boss.Active {
			return TrackBoss
		}
		return TrackGame
	}
	return TrackKeep
}
