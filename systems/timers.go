package systems

import (
	"github.com/automoto/neighbors/components"
	"github.com/yohamta/donburi/ecs"
)

// Schedule runs fn once after the given number of ticks. Zero or fewer fires on the next update.
func Schedule(e *ecs.ECS, frames int, fn func()) {
	timers := getOrCreateTimers(e)
	timers.Pending = append(timers.Pending, components.Timer{Frames: frames, Fn: fn})
}

// UpdateTimers counts pending timers down and fires the due ones in schedule order.
func UpdateTimers(e *ecs.ECS) {
	timers := getOrCreateTimers(e)
	if len(timers.Pending) == 0 {
		return
	}

	var due []func()
	remaining := timers.Pending[:0]
	for _, t := range timers.Pending {
		t.Frames--
		if t.Frames <= 0 {
			due = append(due, t.Fn)
			continue
		}
		remaining = append(remaining, t)
	}
	timers.Pending = remaining

	// Callbacks may schedule more timers
	for _, fn := range due {
		fn()
	}
}

// ClearTimers drops every pending timer without running it.
func ClearTimers(e *ecs.ECS) {
	getOrCreateTimers(e).Pending = nil
}

// PendingTimers reports how many timers are waiting.
func PendingTimers(e *ecs.ECS) int {
	return len(getOrCreateTimers(e).Pending)
}

func getOrCreateTimers(e *ecs.ECS) *components.TimersData {
	entry, ok := components.Timers.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Timers))
	}
	return components.Timers.Get(entry)
}
