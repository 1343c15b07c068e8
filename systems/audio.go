package systems

import (
	"sync"

	"github.com/automoto/neighbors/assets"
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup to avoid a hitch on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		_ = globalAudioLoader.PreloadSFX(id)
	}
}

// UpdateAudio plays the sound effects queued this tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	muted := GetOrCreateSettings(e).Muted
	for _, soundID := range audioData.PendingSFX {
		if !muted {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	// Per-sound volume is baked into the tone
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played on the next audio update
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// ToggleMute flips the mute flag and remembers it
func ToggleMute(e *ecs.ECS) bool {
	settings := GetOrCreateSettings(e)
	settings.Muted = !settings.Muted
	muted := settings.Muted
	UpdatePreferences(func(p *Preferences) { p.Muted = muted })
	return muted
}
