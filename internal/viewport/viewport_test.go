package viewport_test

import (
	"fmt"
	"testing"

	"DuckSplash/internal/viewport"
	"github.com/stretchr/testify/assert"
)

func TestExtend(t *testing.T) {
	tests := []struct {
		outW, outH int
		wantW      float64
		wantH      float64
	}{
		{1280, 720, 1280, 720},
		{2560, 1440, 1280, 720},
		{800, 600, 1280, 960},
		{1920, 720, 1920, 720},
		{0, 0, 1280, 720},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.outW, tt.outH), func(t *testing.T) {
			w, h := viewport.Extend(tt.outW, tt.outH, viewport.MinWorldWidth, viewport.MinWorldHeight)
			assert.InDelta(t, tt.wantW, w, 0.001)
			assert.InDelta(t, tt.wantH, h, 0.001)
		})
	}
}

func TestModesCycleWrapsAndSkipsFullscreen(t *testing.T) {
	m := viewport.NewModes(false, 3)
	assert.True(t, m.CycleSize())
	assert.Equal(t, viewport.Size{W: 800, H: 600}, m.Size())

	m.ToggleFullscreen()
	assert.False(t, m.CycleSize())
	assert.Equal(t, 0, m.SizeIndex)
}

func TestNewModesClampsIndex(t *testing.T) {
	m := viewport.NewModes(false, 9)
	assert.Equal(t, viewport.DefaultSizeIndex, m.SizeIndex)
}
