package config

// PreferencesConfig holds defaults for values persisted between runs
type PreferencesConfig struct {
	AppName      string
	StorageKey   string
	DefaultMuted bool
}

// Preferences is the global persisted-preferences configuration
var Preferences PreferencesConfig

func init() {
	Preferences = PreferencesConfig{
		AppName:      "neighbors",
		StorageKey:   "preferences",
		DefaultMuted: false,
	}
}
