package components

import "github.com/yohamta/donburi"

// Timer runs Fn once after Frames ticks.
type Timer struct {
	Frames int
	Fn     func()
}

// TimersData holds pending one-shot timers in schedule order (singleton component)
type TimersData struct {
	Pending []Timer
}

var Timers = donburi.NewComponentType[TimersData]()
