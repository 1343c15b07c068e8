package components

import (
	cfg "github.com/automoto/neighbors/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Polled is set after the first poll; keys held across a scene change
	// don't count as presses.
	Polled bool
}

var Input = donburi.NewComponentType[InputData]()

// PointerData is the mouse or single touch in screen coordinates.
type PointerData struct {
	X, Y         float64
	Down         bool
	JustPressed  bool
	JustReleased bool
	Touch        bool // position came from a touch
	Hovering     bool // over a draggable character
	Polled       bool
}

var Pointer = donburi.NewComponentType[PointerData]()
