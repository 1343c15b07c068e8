package systems

import (
	"math"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoveTo starts the character walking toward x. It stops within one step of x.
func MoveTo(entry *donburi.Entry, x float64) {
	if entry == nil || !entry.Valid() {
		return
	}
	c := components.Character.Get(entry)
	obj := components.Object.Get(entry)

	c.TargetX = x
	switch {
	case x > obj.X:
		c.Direction = cfg.DirectionRight
	case x < obj.X:
		c.Direction = cfg.DirectionLeft
	}
	c.Moving = true
}

// UpdateCharacters steps walking characters and recomputes idle animation offsets.
func UpdateCharacters(e *ecs.ECS) {
	ms := ClockMillis(e)
	bounce := math.Sin(ms/cfg.Character.BouncePeriodMs) * cfg.Character.BounceAmplitude
	breathe := math.Sin(ms/cfg.Character.BreathePeriodMs) * cfg.Character.BreatheAmount

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		c := components.Character.Get(entry)
		obj := components.Object.Get(entry)
		drag := components.Drag.Get(entry)

		if drag.Dragging {
			c.Moving = false
		}
		if c.Moving {
			stepCharacter(c, obj)
		}

		anim := components.Animation.Get(entry)
		anim.Bounce = bounce
		anim.Breathe = breathe

		ss := components.SquashStretch.Get(entry)
		ss.Squash *= cfg.Character.SquashDecay
		ss.Stretch *= cfg.Character.SquashDecay

		obj.Update()
	})
}

func stepCharacter(c *components.CharacterData, obj *components.ObjectData) {
	if math.Abs(obj.X-c.TargetX) > c.Speed {
		obj.X += c.Speed * c.Direction
		if c.Walk != nil {
			c.Walk.Update()
		}
		return
	}
	c.Moving = false
	if c.Walk != nil {
		c.Walk.Restart()
	}
}

// SetMood changes a character's mood.
func SetMood(entry *donburi.Entry, mood cfg.MoodID) {
	if entry == nil || !entry.Valid() {
		return
	}
	components.Mood.Get(entry).Mood = mood
}
