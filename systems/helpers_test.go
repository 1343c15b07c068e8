package systems

import (
	"testing"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/systems/factory"
	"github.com/automoto/neighbors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	SeedRandom(1)
	e := ecs.NewECS(donburi.NewWorld())
	cell := cfg.Interaction.SpaceCellSize
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cell, cell)
	return e
}

func mustAdd(t *testing.T, e *ecs.ECS, name string, x, y float64) *donburi.Entry {
	t.Helper()
	entry, added := AddCharacter(e, name, x, y)
	if !added || entry == nil {
		t.Fatalf("AddCharacter(%q) failed", name)
	}
	return entry
}

func countEmotes(e *ecs.ECS) int {
	n := 0
	tags.Emote.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countCharacters(e *ecs.ECS) int {
	n := 0
	tags.Character.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func hasSFX(e *ecs.ECS, id cfg.SoundID) bool {
	for _, s := range pendingSFX(e) {
		if s == id {
			return true
		}
	}
	return false
}

func position(entry *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(entry)
	return obj.X, obj.Y
}
