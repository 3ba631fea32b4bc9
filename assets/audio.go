package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/gravwalk/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneLoader synthesises the configured blips and caches their PCM bytes.
type ToneLoader struct {
	cache   map[cfg.SoundID][]byte
	context *audio.Context
}

// NewToneLoader creates a new tone loader with the given context
func NewToneLoader(ctx *audio.Context) *ToneLoader {
	return &ToneLoader{
		cache:   make(map[cfg.SoundID][]byte),
		context: ctx,
	}
}

// Preload synthesises every configured tone.
func (l *ToneLoader) Preload() {
	for id := range cfg.Audio.Tones {
		l.bytes(id)
	}
}

// NewPlayer returns a fresh player for the sound, or nil if it has no tone.
func (l *ToneLoader) NewPlayer(id cfg.SoundID) *audio.Player {
	data := l.bytes(id)
	if data == nil {
		return nil
	}
	return l.context.NewPlayerFromBytes(data)
}

func (l *ToneLoader) bytes(id cfg.SoundID) []byte {
	if data, ok := l.cache[id]; ok {
		return data
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil
	}
	data := SynthesizeTone(tone, l.context.SampleRate())
	l.cache[id] = data
	return data
}

// SynthesizeTone renders a sine sweep with a linear fade-out as 16-bit
// little-endian stereo PCM.
func SynthesizeTone(tone cfg.ToneConfig, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.Frequency + tone.Sweep*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		v := int16(math.Sin(phase) * (1 - t) * tone.Volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
