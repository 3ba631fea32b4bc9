package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundShoot
	SoundImpact
)

// ToneConfig describes a synthesised blip.
type ToneConfig struct {
	Frequency float64 // Hz at the start of the blip
	Sweep     float64 // Hz added over the blip's length
	Duration  float64 // seconds
	Volume    float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Tones      map[SoundID]ToneConfig
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]ToneConfig{
			SoundJump:   {Frequency: 220, Sweep: 220, Duration: 0.12, Volume: 0.6},
			SoundShoot:  {Frequency: 880, Sweep: -440, Duration: 0.08, Volume: 0.4},
			SoundImpact: {Frequency: 110, Sweep: -60, Duration: 0.1, Volume: 0.5},
		},
	}
}
