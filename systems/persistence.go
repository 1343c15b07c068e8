package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/neighbors/config"
	"github.com/quasilyte/gdata"
)

// Preferences represents the data stored on disk between runs
type Preferences struct {
	LastEpisode string `json:"lastEpisode"`
	Muted       bool   `json:"muted"`
	Debug       bool   `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

var currentPrefs = Preferences{
	LastEpisode: cfg.C.StartEpisode,
	Muted:       cfg.Preferences.DefaultMuted,
}

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Preferences.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences reads saved preferences and makes them current. Missing or
// unreadable data leaves the defaults in place.
func LoadPreferences() (*Preferences, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Preferences.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// Nothing saved yet
		return nil, nil
	}

	prefs, err := decodePreferences(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	currentPrefs = *prefs
	return prefs, nil
}

// SavePreferences writes the preferences to disk and makes them current
func SavePreferences(p Preferences) error {
	currentPrefs = p
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Preferences.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// CurrentPreferences returns the preferences in effect
func CurrentPreferences() Preferences {
	return currentPrefs
}

// UpdatePreferences applies fn to the current preferences and saves the result
func UpdatePreferences(fn func(p *Preferences)) {
	p := currentPrefs
	fn(&p)
	_ = SavePreferences(p)
}

func decodePreferences(data []byte) (*Preferences, error) {
	prefs := Preferences{
		LastEpisode: cfg.C.StartEpisode,
		Muted:       cfg.Preferences.DefaultMuted,
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}
