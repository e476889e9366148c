package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyNextCycles(t *testing.T) {
	assert.Equal(t, Normal, Easy.Next())
	assert.Equal(t, Hard, Normal.Next())
	assert.Equal(t, Easy, Hard.Next())
	assert.Equal(t, Easy, Difficulty(7).Next())
	assert.True(t, Hard.Last())
	assert.False(t, Normal.Last())
}

func TestDifficultySettings(t *testing.T) {
	tests := []struct {
		d         Difficulty
		name      string
		ducks     int
		bossScore int
		bossHP    int
		duck      MonsterType
	}{
		{Easy, "EASY", 4, 500, 10, MonsterNormal},
		{Normal, "NORMAL", 6, 750, 15, MonsterFast},
		{Hard, "HARD", 8, 1000, 20, MonsterTough},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.d.Settings()
			assert.Equal(t, tt.name, tt.d.String())
			assert.Equal(t, tt.ducks, s.DuckCount)
			assert.Equal(t, tt.bossScore, s.BossSpawnScore)
			assert.Equal(t, tt.bossHP, s.BossHealth)
			assert.Equal(t, tt.duck, s.DuckType)
		})
	}

	assert.Equal(t, Easy.Settings(), Difficulty(-1).Settings())
}

func TestFormationX(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := range 10 {
		x := Easy.formationX(i, testW, rng)
		assert.GreaterOrEqual(t, x, testW)
		assert.Less(t, x, testW+200)
	}

	assert.Equal(t, []float64{testW, testW + 100, testW},
		[]float64{Normal.formationX(0, testW, rng), Normal.formationX(1, testW, rng), Normal.formationX(2, testW, rng)})
	assert.Equal(t, []float64{testW, testW + 80, testW + 160, testW},
		[]float64{Hard.formationX(0, testW, rng), Hard.formationX(1, testW, rng), Hard.formationX(2, testW, rng), Hard.formationX(3, testW, rng)})
}
