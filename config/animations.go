package config

// AnimationDef describes a frame cycle: frames First..Last, advancing Step
// frames after Speed+1 ticks.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}
