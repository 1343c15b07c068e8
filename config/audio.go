package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundType         // one tick per revealed rune
	SoundPop          // tap reaction
	SoundPickUp       // drag start
	SoundDrop         // drag end
	SoundSceneChange
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneDef describes a synthesized blip: a sine sweep with a linear fade-out.
type ToneDef struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64 // 0.0 - 1.0 multiplier on the SFX volume
}

// SoundConfig maps sound IDs to tone definitions
type SoundConfig struct {
	Tones map[SoundID]ToneDef
	// TypeEvery plays the typing tick only every N revealed runes
	TypeEvery int
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneDef{
			SoundType:        {StartHz: 880, EndHz: 880, Duration: 0.02, Volume: 0.25},
			SoundPop:         {StartHz: 440, EndHz: 990, Duration: 0.12, Volume: 0.8},
			SoundPickUp:      {StartHz: 330, EndHz: 520, Duration: 0.08, Volume: 0.5},
			SoundDrop:        {StartHz: 520, EndHz: 260, Duration: 0.10, Volume: 0.5},
			SoundSceneChange: {StartHz: 262, EndHz: 392, Duration: 0.30, Volume: 0.6},
		},
		TypeEvery: 3,
	}
}
