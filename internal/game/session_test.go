package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, coins int) (*Session, *recordSounds) {
	t.Helper()
	p, _ := newTestProfile(t, coins)
	snd := &recordSounds{}
	s := NewSession(testW, testH, p, snd, rand.New(rand.NewSource(5)), discard)
	return s, snd
}

func click(r Rect) Input {
	x, y := r.Center()
	return Input{Click: true, ClickX: x, ClickY: y}
}

// startPlaying goes Menu, Start, Select and clears the opening wave.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	s.Update(click(s.Layout.Start), tickDT)
	require.Equal(t, StateGunSelect, s.State)
	s.Update(click(s.Layout.Select), tickDT)
	require.Equal(t, StatePlaying, s.State)
	clearMonsters(s.World)
}

func TestSessionMenuFlow(t *testing.T) {
	s, _ := newTestSession(t, 0)
	assert.Equal(t, StateMenu, s.State)
	assert.Equal(t, TrackMenu, s.Music())

	s.Update(click(s.Layout.Difficulty), tickDT)
	assert.Equal(t, Normal, s.Difficulty())
	assert.Len(t, s.World.Monsters, 6)
	s.Update(click(s.Layout.Difficulty), tickDT)
	s.Update(click(s.Layout.Difficulty), tickDT)
	assert.Equal(t, Easy, s.Difficulty())

	s.Update(click(s.Layout.Shop), tickDT)
	assert.Equal(t, StateShop, s.State)
	assert.Equal(t, TrackKeep, s.Music())
	s.Update(click(s.Layout.ShopBack), tickDT)
	assert.Equal(t, StateMenu, s.State)

	assert.Equal(t, ActionQuit, s.Update(click(s.Layout.Quit), tickDT))
	assert.Equal(t, ActionNone, s.Update(Input{Click: true, ClickX: 1, ClickY: testH - 1}, tickDT))
}

func TestSessionWindowKeys(t *testing.T) {
	s, _ := newTestSession(t, 0)
	assert.Equal(t, ActionToggleFullscreen, s.Update(Input{Fullscreen: true}, tickDT))
	assert.Equal(t, ActionCycleWindowSize, s.Update(Input{CycleSize: true}, tickDT))

	s.Update(click(s.Layout.Shop), tickDT)
	assert.Equal(t, ActionNone, s.Update(Input{Fullscreen: true}, tickDT))
}

func TestSessionShopPurchase(t *testing.T) {
	s, snd := newTestSession(t, 120)
	s.Update(click(s.Layout.Shop), tickDT)

	s.Update(click(s.Layout.ShopRows[GunHydroCannon]), tickDT)
	assert.False(t, s.Profile.Unlocked(GunHydroCannon))
	assert.Zero(t, snd.count(CuePurchase))

	s.Update(click(s.Layout.ShopRows[GunSuperSoaker]), tickDT)
	assert.True(t, s.Profile.Unlocked(GunSuperSoaker))
	assert.Equal(t, GunSuperSoaker, s.Profile.Current())
	assert.Equal(t, 20, s.Profile.Coins())
	assert.Equal(t, 1, snd.count(CuePurchase))
}

func TestSessionGunSelect(t *testing.T) {
	s, _ := newTestSession(t, 100)
	require.Equal(t, ShopBought, s.Profile.Shop(GunSuperSoaker))
	require.True(t, s.Profile.Select(GunBasic))

	s.Update(click(s.Layout.Start), tickDT)
	s.Update(click(s.Layout.GunSlots[GunHydroCannon]), tickDT)
	assert.Equal(t, GunBasic, s.Profile.Current(), "locked guns cannot be picked")
	s.Update(click(s.Layout.GunSlots[GunSuperSoaker]), tickDT)
	assert.Equal(t, GunSuperSoaker, s.Profile.Current())
	assert.Equal(t, StateGunSelect, s.State)
}

func TestSessionPauseAndInGameMenu(t *testing.T) {
	s, _ := newTestSession(t, 0)
	startPlaying(t, s)
	assert.Equal(t, TrackGame, s.Music())

	s.Update(Input{Pause: true}, tickDT)
	assert.Equal(t, StatePaused, s.State)
	x := s.World.Player.X
	s.Update(Input{Right: true}, tickDT)
	assert.Equal(t, x, s.World.Player.X, "paused world stands still")
	s.Update(Input{Pause: true}, tickDT)
	assert.Equal(t, StatePlaying, s.State)

	s.Update(Input{Escape: true}, tickDT)
	assert.Equal(t, StateInGameMenu, s.State)
	s.Update(Input{Escape: true}, tickDT)
	assert.Equal(t, StatePlaying, s.State)

	s.Update(Input{Escape: true}, tickDT)
	s.Update(click(s.Layout.Continue), tickDT)
	assert.Equal(t, StatePlaying, s.State)

	s.World.Kills = 3
	s.Update(Input{Escape: true}, tickDT)
	s.Update(click(s.Layout.MainMenu), tickDT)
	assert.Equal(t, StateMenu, s.State)
	assert.Zero(t, s.World.Kills)

	startPlaying(t, s)
	s.Update(Input{Escape: true}, tickDT)
	assert.Equal(t, ActionQuit, s.Update(click(s.Layout.InGameQuit), tickDT))
}

func TestSessionGameOver(t *testing.T) {
	s, _ := newTestSession(t, 0)
	startPlaying(t, s)

	w := s.World
	w.Player.Lives = 1
	w.addBullet(&Bullet{X: w.Player.X + 10, Y: w.Player.Y + 10, Enemy: true})
	s.Update(Input{}, tickDT)
	require.Equal(t, StateGameOver, s.State)

	s.Update(Input{Space: true}, 1)
	assert.Equal(t, StateGameOver, s.State, "too early")
	s.Update(Input{}, 1)
	s.Update(Input{Space: true}, tickDT)
	assert.Equal(t, StateMenu, s.State)
	assert.Equal(t, StartLives, w.Player.Lives)
	assert.False(t, w.Over)
}

func TestSessionLevelComplete(t *testing.T) {
	s, _ := newTestSession(t, 0)
	startPlaying(t, s)

	beatBoss(t, s)
	require.Equal(t, StateLevelComplete, s.State)
	kills := s.World.Kills

	s.Update(click(s.Layout.NextLevel), tickDT)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, Normal, s.Difficulty())
	assert.Equal(t, kills, s.World.Kills)
	assert.Zero(t, s.World.Score)
	assert.Len(t, s.World.Monsters, 6)

	clearMonsters(s.World)
	beatBoss(t, s)
	require.Equal(t, StateLevelComplete, s.State)
	s.World.Kills = 9
	s.Update(click(s.Layout.Retry), tickDT)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, Normal, s.Difficulty())
	assert.Zero(t, s.World.Kills)

	clearMonsters(s.World)
	beatBoss(t, s)
	s.Update(click(s.Layout.BackToMenu), tickDT)
	assert.Equal(t, StateMenu, s.State)
	assert.Equal(t, Easy, s.Difficulty())
}

func TestSessionHardBossCompletesGame(t *testing.T) {
	s, _ := newTestSession(t, 0)
	s.Update(click(s.Layout.Difficulty), tickDT)
	s.Update(click(s.Layout.Difficulty), tickDT)
	require.Equal(t, Hard, s.Difficulty())
	startPlaying(t, s)

	beatBoss(t, s)
	require.Equal(t, StateGameComplete, s.State)

	s.Update(Input{}, CompleteDisplay/2)
	assert.Equal(t, StateGameComplete, s.State)
	s.Update(Input{}, CompleteDisplay/2)
	assert.Equal(t, StateMenu, s.State)
	assert.Equal(t, Easy, s.Difficulty())
}

func TestSessionGameCompleteEscape(t *testing.T) {
	s, _ := newTestSession(t, 0)
	s.World.SetDifficulty(Hard)
	startPlaying(t, s)
	beatBoss(t, s)
	require.Equal(t, StateGameComplete, s.State)

	s.Update(Input{Escape: true}, tickDT)
	assert.Equal(t, StateMenu, s.State)
}

func TestSessionResize(t *testing.T) {
	s, _ := newTestSession(t, 0)
	s.Resize(1920, 1080)
	assert.Equal(t, 1920.0, s.World.W)
	assert.Equal(t, NewLayout(1920, 1080), s.Layout)
	for _, st := range s.Stars {
		assert.LessOrEqual(t, st.X, 1920.0)
	}
}

func TestSessionStarsTwinkleEverywhere(t *testing.T) {
	s, _ := newTestSession(t, 0)
	s.State = StateGameOver
	before := append([]Star(nil), s.Stars...)
	s.Update(Input{}, 1)
	changed := false
	for i := range s.Stars {
		assert.GreaterOrEqual(t, s.Stars[i].Brightness, 0.5)
		assert.LessOrEqual(t, s.Stars[i].Brightness, 1.0)
		if s.Stars[i].Brightness != before[i].Brightness {
			changed = true
		}
	}
	assert.True(t, changed)
}

// beatBoss spawns the boss and lands the final hit in one tick.
func beatBoss(t *testing.T, s *Session) {
	t.Helper()
	w := s.World
	spawnBossNow(t, w)
	assert.Equal(t, TrackBoss, s.Music())
	w.Boss.Health = 1
	w.addBullet(&Bullet{X: w.Boss.X + 10, Y: w.Boss.Y + 10})
	s.Update(Input{}, tickDT)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "level-complete", StateLevelComplete.String())
	assert.Equal(t, "unknown", State(99).String())
}
