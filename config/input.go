package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical theater action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPlayPause
	ActionNextScene
	ActionRestart
	ActionBack
	ActionMute
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPlayPause: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyP},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionNextScene: {
				Keys: []ebiten.Key{ebiten.KeyN, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
	}
}
