package game

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"DuckSplash/internal/prefs"
)

const (
	testW  = 1280.0
	testH  = 720.0
	tickDT = 1.0 / 60
)

var discard = slog.New(slog.DiscardHandler)

type recordSounds struct{ cues []Cue }

func (r *recordSounds) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordSounds) count(c Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

func newTestProfile(t *testing.T, coins int) (*Profile, *prefs.Store) {
	t.Helper()
	store := prefs.NewMemory()
	return LoadProfile(store, coins, 0, discard), store
}

// newTestWorld builds a world with the opening wave removed so tests
// can place exactly what they need.
func newTestWorld(t *testing.T, d Difficulty) (*World, *recordSounds) {
	t.Helper()
	p, _ := newTestProfile(t, 0)
	snd := &recordSounds{}
	w := NewWorld(testW, testH, d, p, snd, rand.New(rand.NewSource(1)), discard)
	clearMonsters(w)
	return w, snd
}

func clearMonsters(w *World) {
	for _, m := range w.Monsters {
		m.Active = false
	}
	w.compact()
}

func spawnBossNow(t *testing.T, w *World) {
	t.Helper()
	w.Score = w.settings().BossSpawnScore
	w.updateBoss(0)
	require.True(t, w.Boss.Active)
}
