package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	CameraStyle   string `json:"cameraStyle"`
	ShowColliders bool   `json:"showColliders"`
	Fullscreen    bool   `json:"fullscreen"`
	LastLevel     string `json:"lastLevel"`
}

// Persistence stores user settings through gdata. A nil *Persistence
// loads nothing and saves nothing.
type Persistence struct {
	manager *gdata.Manager
}

// OpenPersistence opens the save data of appName.
func OpenPersistence(appName string) (*Persistence, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &Persistence{manager: m}, nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func (p *Persistence) LoadSettings() (*SavedSettings, error) {
	if p == nil || p.manager == nil {
		return nil, nil
	}

	data, err := p.manager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "error", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func (p *Persistence) SaveSettings(s *SavedSettings) error {
	if p == nil || p.manager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "error", err)
		return err
	}

	if err := p.manager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "error", err)
		return err
	}
	return nil
}
