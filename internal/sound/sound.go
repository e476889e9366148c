// Package sound plays the game's cues and music through ebiten's audio
// context. Missing effects fall back to synthesized beeps, missing music
// is silence.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"DuckSplash/internal/game"
)

const SampleRate = 44100

var cueFiles = map[game.Cue]string{
	game.CueShoot:    "water_shoot.mp3",
	game.CueHit:      "duck_hit.mp3",
	game.CueBossDown: "powerup.mp3",
	game.CuePurchase: "powerup.mp3",
	game.CueCoin:     "powerup.mp3",
}

// beep pitches used when a cue's file is missing
var cueBeeps = map[game.Cue]float64{
	game.CueShoot:    950,
	game.CueHit:      240,
	game.CueBossDown: 520,
	game.CuePurchase: 660,
	game.CueCoin:     880,
}

var trackFiles = map[game.Track]string{
	game.TrackMenu: "menu_music.wav",
	game.TrackGame: "game_music.mp3",
	game.TrackBoss: "boss_music.mp3",
}

// Mixer implements game.SoundPlayer and switches looping music.
type Mixer struct {
	ctx *audio.Context
	log *slog.Logger

	sfxVolume   float64
	musicVolume float64

	cues    map[game.Cue]*audio.Player
	tracks  map[game.Track]*audio.Player
	current game.Track
}

// New opens the audio context and loads everything under dir.
func New(dir string, musicVolume, sfxVolume float64, log *slog.Logger) *Mixer {
	m := &Mixer{
		ctx:         audio.NewContext(SampleRate),
		log:         log,
		sfxVolume:   sfxVolume,
		musicVolume: musicVolume,
		cues:        make(map[game.Cue]*audio.Player),
		tracks:      make(map[game.Track]*audio.Player),
	}

	pcm := make(map[string][]byte)
	for cue, name := range cueFiles {
		data, ok := pcm[name]
		if !ok {
			var err error
			data, err = loadPCM(filepath.Join(dir, name), SampleRate)
			if err != nil {
				log.Warn("sound unavailable, using a beep", "name", name, "err", err)
				data = nil // a partial decode is not worth playing
			}
			pcm[name] = data
		}
		if data == nil {
			data = Beep(cueBeeps[cue], 0.1, SampleRate)
		}
		m.cues[cue] = m.ctx.NewPlayerFromBytes(data)
	}

	for t, name := range trackFiles {
		p, err := m.loadLoop(filepath.Join(dir, name))
		if err != nil {
			log.Warn("music unavailable", "name", name, "err", err)
			continue
		}
		p.SetVolume(musicVolume)
		m.tracks[t] = p
	}
	return m
}

// Play fires a one-shot cue, restarting it if it is still playing.
func (m *Mixer) Play(c game.Cue) {
	p := m.cues[c]
	if p == nil {
		return
	}
	p.SetVolume(c.Volume() * m.sfxVolume)
	if err := p.Rewind(); err != nil {
		m.log.Debug("rewind failed", "cue", c, "err", err)
		return
	}
	p.Play()
}

// SetTrack switches the looping music. TrackKeep leaves it alone.
func (m *Mixer) SetTrack(t game.Track) {
	if t == game.TrackKeep || t == m.current {
		return
	}
	if p := m.tracks[m.current]; p != nil {
		p.Pause()
	}
	m.current = t
	if p := m.tracks[t]; p != nil {
		if err := p.Rewind(); err != nil {
			m.log.Debug("rewind failed", "track", t, "err", err)
		}
		p.Play()
	}
}

func (m *Mixer) loadLoop(path string) (*audio.Player, error) {
	s, err := decodeFile(path, SampleRate)
	if err != nil {
		return nil, err
	}
	return m.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

// decodeFile picks a decoder by file extension.
func decodeFile(path string, sampleRate int) (stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	r := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
}

func loadPCM(path string, sampleRate int) ([]byte, error) {
	s, err := decodeFile(path, sampleRate)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(s)
}

// Beep synthesizes a sine tone as 16-bit little-endian stereo PCM with a
// short linear fade out.
func Beep(freq, seconds float64, sampleRate int) []byte {
	n := int(float64(sampleRate) * seconds)
	pcm := make([]byte, n*4)
	const amp = 0.35
	for i := range n {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * amp * fade
		s := int16(v * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
