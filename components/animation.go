package components

import "github.com/yohamta/donburi"

// AnimationData holds the idle offsets recomputed every tick.
type AnimationData struct {
	Bounce  float64 // vertical offset in pixels
	Breathe float64 // fractional height change
}

var Animation = donburi.NewComponentType[AnimationData]()
