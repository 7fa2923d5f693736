package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowCells       bool `json:"showCells"`
	ShowHitboxes    bool `json:"showHitboxes"`
	ShowContacts    bool `json:"showContacts"`
	SpeedIndex      int  `json:"speedIndex"`
	LevelIndex      int  `json:"levelIndex"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hitgrid",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
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
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the overlay toggles and speed of the sandbox
// together with the level being played
func SaveCurrentSettings(s *components.SandboxData, levelIndex int) {
	saved := &SavedSettings{
		ShowCells:       s.ShowCells,
		ShowHitboxes:    s.ShowHitboxes,
		ShowContacts:    s.ShowContacts,
		SpeedIndex:      s.SpeedIndex,
		LevelIndex:      levelIndex,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings copies loaded settings into the sandbox component
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	sandbox := GetOrCreateSandbox(e)
	sandbox.ShowCells = saved.ShowCells
	sandbox.ShowHitboxes = saved.ShowHitboxes
	sandbox.ShowContacts = saved.ShowContacts
	if saved.SpeedIndex >= 0 && saved.SpeedIndex < len(cfg.Settings.TimeFactors) {
		sandbox.SpeedIndex = saved.SpeedIndex
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during startup before the scene is created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		cfg.Settings.DefaultResolutionIndex = saved.ResolutionIndex
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
