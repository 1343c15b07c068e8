package animations

import cfg "github.com/automoto/neighbors/config"

// Animation is a looping frame counter. Characters are drawn from vector
// primitives, so the frame only selects a limb pose.
type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices we move per advance
	SpeedInTps float32 // ticks to wait between advances
	counter    float32
	frame      int
	Looped     bool
}

func (a *Animation) Update() {
	a.counter -= 1.0
	if a.counter < 0.0 {
		a.counter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart returns to the first frame, as when a walk stops.
func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		counter:    speed,
		frame:      first,
	}
}

func FromDef(def cfg.AnimationDef) *Animation {
	return NewAnimation(def.First, def.Last, def.Step, def.Speed)
}
