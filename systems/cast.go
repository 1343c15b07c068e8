package systems

import (
	"github.com/automoto/neighbors/components"
	"github.com/automoto/neighbors/story"
	"github.com/automoto/neighbors/systems/factory"
	"github.com/automoto/neighbors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddCharacter puts the named roster character on stage with its top-left at x, y.
// A name that is already on stage keeps its entity and added is false.
func AddCharacter(e *ecs.ECS, name string, x, y float64) (entry *donburi.Entry, added bool) {
	if existing, ok := GetCharacter(e, name); ok {
		return existing, false
	}
	profile, ok := story.Lookup(name)
	if !ok {
		return nil, false
	}

	entry = factory.CreateCharacter(e, profile, x, y)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(components.Object.Get(entry).Object)
	}

	cast := getOrCreateCast(e)
	cast.Entities[name] = entry.Entity()
	cast.Order = append(cast.Order, name)
	return entry, true
}

// RemoveCharacter takes the named character off stage. Unknown names are ignored.
func RemoveCharacter(e *ecs.ECS, name string) bool {
	cast := getOrCreateCast(e)
	entity, ok := cast.Entities[name]
	if !ok {
		return false
	}
	delete(cast.Entities, name)
	cast.Order = removeName(cast.Order, name)

	if !e.World.Valid(entity) {
		return false
	}
	removeObject(e, e.World.Entry(entity))
	e.World.Remove(entity)
	return true
}

// GetCharacter looks up a character on stage by name.
func GetCharacter(e *ecs.ECS, name string) (*donburi.Entry, bool) {
	cast := getOrCreateCast(e)
	entity, ok := cast.Entities[name]
	if !ok || !e.World.Valid(entity) {
		return nil, false
	}
	return e.World.Entry(entity), true
}

// CastNames returns the names on stage in draw order, back to front.
func CastNames(e *ecs.ECS) []string {
	return append([]string(nil), getOrCreateCast(e).Order...)
}

// BringToFront moves the character to the end of the draw order.
func BringToFront(e *ecs.ECS, name string) {
	cast := getOrCreateCast(e)
	if _, ok := cast.Entities[name]; !ok {
		return
	}
	cast.Order = append(removeName(cast.Order, name), name)
}

// ResetStage removes every character and emote and drops pending timers and
// the script cursor.
func ResetStage(e *ecs.ECS) {
	var remove []*donburi.Entry
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		remove = append(remove, entry)
	})
	tags.Emote.Each(e.World, func(entry *donburi.Entry) {
		remove = append(remove, entry)
	})
	for _, entry := range remove {
		removeObject(e, entry)
		e.World.Remove(entry.Entity())
	}

	cast := getOrCreateCast(e)
	cast.Entities = make(map[string]donburi.Entity)
	cast.Order = nil

	ClearTimers(e)

	if entry, ok := components.Theater.First(e.World); ok {
		theater := components.Theater.Get(entry)
		if theater.Sequencer != nil {
			theater.Sequencer.Load(nil)
		}
	}
}

func removeObject(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object != nil && obj.Space != nil {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// getOrCreateCast returns the singleton Cast component
func getOrCreateCast(e *ecs.ECS) *components.CastData {
	entry, ok := components.Cast.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Cast))
		components.Cast.SetValue(entry, components.CastData{
			Entities: make(map[string]donburi.Entity),
		})
	}
	return components.Cast.Get(entry)
}
