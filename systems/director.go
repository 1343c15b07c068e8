package systems

import (
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/story"
	"github.com/yohamta/donburi/ecs"
)

// stageDirector lets the script sequencer act on the characters in the world.
type stageDirector struct {
	ecs *ecs.ECS
}

func (d *stageDirector) Has(name string) bool {
	_, ok := GetCharacter(d.ecs, name)
	return ok
}

func (d *stageDirector) Position(name string) (x, y float64, ok bool) {
	entry, ok := GetCharacter(d.ecs, name)
	if !ok {
		return 0, 0, false
	}
	obj := components.Object.Get(entry)
	return obj.X, obj.Y, true
}

func (d *stageDirector) Facing(name string) float64 {
	entry, ok := GetCharacter(d.ecs, name)
	if !ok {
		return cfg.DirectionRight
	}
	return components.Character.Get(entry).Direction
}

// Place moves the character without walking. A character held by the pointer stays put.
func (d *stageDirector) Place(name string, x, y float64) {
	entry, ok := GetCharacter(d.ecs, name)
	if !ok || components.Drag.Get(entry).Dragging {
		return
	}
	c := components.Character.Get(entry)
	obj := components.Object.Get(entry)

	switch {
	case x > obj.X:
		c.Direction = cfg.DirectionRight
	case x < obj.X:
		c.Direction = cfg.DirectionLeft
	}
	if x != obj.X && c.Walk != nil {
		c.Walk.Update()
	}
	c.Moving = false
	c.TargetX = x
	obj.X, obj.Y = x, y
	obj.Update()
}

func (d *stageDirector) Walk(name string, x float64) {
	entry, ok := GetCharacter(d.ecs, name)
	if !ok || components.Drag.Get(entry).Dragging {
		return
	}
	MoveTo(entry, x)
}

func (d *stageDirector) Speak(name, text string) {
	if entry, ok := GetCharacter(d.ecs, name); ok {
		Speak(entry, text)
	}
}

func (d *stageDirector) Think(name, text string) {
	if entry, ok := GetCharacter(d.ecs, name); ok {
		Think(entry, text)
	}
}

func (d *stageDirector) HideBubbles() {
	ClearAllBubbles(d.ecs)
}

func (d *stageDirector) Emote(name, emote string) {
	if entry, ok := GetCharacter(d.ecs, name); ok {
		SpawnEmote(d.ecs, entry, emote)
	}
}

// UpdateScript advances the current scene's script by one tick.
func UpdateScript(e *ecs.ECS) {
	theater := getOrCreateTheater(e)
	theater.Sequencer.Advance(1.0 / float64(cfg.C.TPS))
}

// typingSound ticks every few revealed runes so long lines don't buzz.
func typingSound(e *ecs.ECS) func(step story.Step, revealed int) {
	return func(step story.Step, revealed int) {
		if cfg.Sound.TypeEvery <= 1 || revealed%cfg.Sound.TypeEvery == 1 {
			PlaySFX(e, cfg.SoundType)
		}
	}
}
