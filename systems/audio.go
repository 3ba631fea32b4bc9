package systems

import (
	"sync"

	"github.com/automoto/gravwalk/assets"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalToneLoader   *assets.ToneLoader
	globalSFXVolume    = cfg.Audio.SFXVolume
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalToneLoader = assets.NewToneLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesises every blip at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	globalToneLoader.Preload()
}

// UpdateAudio plays the sounds queued during the previous tick.
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
	for _, id := range audioData.PendingSFX {
		playSFX(id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player := globalToneLoader.NewPlayer(id)
	if player == nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect; UpdateAudio plays it.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}
