package archetypes

import (
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Mood,
		components.Bubble,
		components.Animation,
		components.SquashStretch,
		components.Drag,
	)
	Emote = newArchetype(
		tags.Emote,
		components.Emote,
	)
	House = newArchetype(
		tags.House,
		components.House,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
