package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/greenie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk.
// Level progress is never written here; it lives for one run only.
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result means use the defaults.
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

// CurrentSettings snapshots the live window and audio state.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		SFXVolume:       globalSFXVolume,
		Muted:           globalMuted,
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: resolutionIndex,
	}
}

var resolutionIndex = cfg.Settings.DefaultResolutionIndex

// ApplySavedSettingsGlobal applies settings during startup before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(saved.SFXVolume)
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		resolutionIndex = saved.ResolutionIndex
		if !saved.Fullscreen {
			res := cfg.Settings.Resolutions[resolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
}
