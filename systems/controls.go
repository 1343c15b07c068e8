package systems

import (
	cfg "github.com/automoto/neighbors/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTheaterControls applies the keyboard and gamepad shortcuts.
// Back is left to the scene, which owns the switch to the menu.
func UpdateTheaterControls(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPlayPause).JustPressed {
		TogglePlayback(e)
	}
	if GetAction(input, cfg.ActionNextScene).JustPressed {
		NextScene(e)
	}
	if GetAction(input, cfg.ActionRestart).JustPressed {
		RestartEpisode(e)
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		ToggleDebug(e)
	}
}

// ToggleDebug flips the hitbox overlay and remembers it
func ToggleDebug(e *ecs.ECS) bool {
	settings := GetOrCreateSettings(e)
	settings.Debug = !settings.Debug
	debug := settings.Debug
	UpdatePreferences(func(p *Preferences) { p.Debug = debug })
	return debug
}
