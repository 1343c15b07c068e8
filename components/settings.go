package components

import "github.com/yohamta/donburi"

// SettingsData stores per-scene toggles (singleton component)
type SettingsData struct {
	Debug bool
	Muted bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// ClockData counts ticks since the scene was configured (singleton component)
type ClockData struct {
	Ticks int
}

var Clock = donburi.NewComponentType[ClockData]()
