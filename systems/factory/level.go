package factory

import (
	"github.com/automoto/neighbors/archetypes"
	"github.com/automoto/neighbors/assets"
	"github.com/automoto/neighbors/components"
	"github.com/automoto/neighbors/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for the neighborhood map.
func CreateLevel(ecs *ecs.ECS, n *assets.Neighborhood) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Map: n})
	return level
}

// CreateHouse spawns a house from the map. The caller adds the object to the space.
func CreateHouse(ecs *ecs.ECS, h assets.House) *donburi.Entry {
	house := archetypes.House.Spawn(ecs)

	obj := resolv.NewObject(h.X, h.Y, h.Width, h.Height, tags.ResolvHouse)
	obj.Data = house
	components.Object.SetValue(house, components.ObjectData{Object: obj})
	components.House.SetValue(house, components.HouseData{House: h})

	return house
}
