package assets

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestMissingImageIsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	im := NewImages(t.TempDir(), slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Nil(t, im.Get(Duck))
	assert.Nil(t, im.Get(Duck))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("image unavailable")))
	assert.Contains(t, buf.String(), "name=monster.png")
}

func TestPreloadCountsMissing(t *testing.T) {
	im := NewImages("assets", slog.New(slog.DiscardHandler))
	var asked []string
	im.load = func(path string) (*ebiten.Image, error) {
		asked = append(asked, path)
		return nil, errors.New("nope")
	}

	assert.Equal(t, 3, im.Preload(Coin, Life, Coin))
	assert.Equal(t, []string{filepath.Join("assets", Coin), filepath.Join("assets", Life)}, asked)
}
