package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/neighbors/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches the sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // 16-bit stereo PCM
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	def, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = Synthesize(def, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// Synthesize renders a sine sweep from StartHz to EndHz with a linear fade-out
// as signed 16-bit little-endian stereo.
func Synthesize(def cfg.ToneDef, sampleRate int) []byte {
	n := int(def.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := def.StartHz + (def.EndHz-def.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		v := math.Sin(phase) * (1 - t) * def.Volume
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
