package systems

import (
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from the
// saved preferences.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		prefs := CurrentPreferences()
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: prefs.Debug || cfg.Debug.ShowHitboxes,
			Muted: prefs.Muted,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateClock advances the scene tick counter
func UpdateClock(e *ecs.ECS) {
	getOrCreateClock(e).Ticks++
}

// ClockMillis is the scene time in milliseconds
func ClockMillis(e *ecs.ECS) float64 {
	return float64(getOrCreateClock(e).Ticks) * 1000 / float64(cfg.C.TPS)
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
