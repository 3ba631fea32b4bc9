package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/gravwalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Variant     string  `json:"variant"`
	ShowOverlay bool    `json:"showOverlay"`
	Fullscreen  bool    `json:"fullscreen"`
	SFXVolume   float64 `json:"sfxVolume"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gravwalk",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ModifySettings loads the saved settings, or the ones in effect when none
// were saved, applies change and saves the result.
func ModifySettings(change func(s *SavedSettings)) {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = CurrentSettings()
	}
	change(saved)
	_ = SaveSettings(saved)
}

// SaveVariant remembers the last played rules.
func SaveVariant(v cfg.Variant) {
	ModifySettings(func(s *SavedSettings) { s.Variant = v.String() })
}

// CurrentSettings captures the settings in effect.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Variant:     cfg.VariantTwin.String(),
		ShowOverlay: cfg.Debug.ShowOverlay,
		Fullscreen:  ebiten.IsFullscreen(),
		SFXVolume:   globalSFXVolume,
	}
}

// ApplySavedSettingsGlobal applies settings during startup, before any
// scene exists. It returns the saved variant.
func ApplySavedSettingsGlobal(saved *SavedSettings) cfg.Variant {
	if saved == nil {
		return cfg.VariantTwin
	}
	SetSFXVolume(saved.SFXVolume)
	cfg.Debug.ShowOverlay = cfg.Debug.ShowOverlay || saved.ShowOverlay
	ebiten.SetFullscreen(saved.Fullscreen)

	v, ok := cfg.ParseVariant(saved.Variant)
	if !ok {
		log.Printf("Warning: unknown saved variant %q, using %s", saved.Variant, v)
	}
	return v
}
