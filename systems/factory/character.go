package factory

import (
	"github.com/automoto/neighbors/archetypes"
	"github.com/automoto/neighbors/assets/animations"
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/story"
	"github.com/automoto/neighbors/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a neighbor with its top-left corner at x, y.
// The caller adds the object to the space.
func CreateCharacter(ecs *ecs.ECS, profile story.Profile, x, y float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Character.Width, cfg.Character.Height, tags.ResolvCharacter)
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	components.Character.SetValue(character, components.CharacterData{
		Name:      profile.Name,
		Profile:   profile,
		Direction: cfg.DirectionRight,
		Speed:     cfg.Character.Speed,
		TargetX:   x,
		Walk:      animations.FromDef(cfg.Character.WalkAnimation),
	})
	components.Mood.SetValue(character, components.MoodData{
		Mood: story.InitialMood(profile.Personality),
	})
	components.Drag.SetValue(character, components.DragData{
		Draggable: true,
	})

	return character
}
