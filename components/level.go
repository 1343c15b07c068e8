package components

import (
	"github.com/automoto/neighbors/assets"
	"github.com/yohamta/donburi"
)

// LevelData holds the neighborhood map the stage is built on
type LevelData struct {
	Map *assets.Neighborhood
}

var Level = donburi.NewComponentType[LevelData]()

// HouseData is a building from the map, drawn behind the cast
type HouseData struct {
	House assets.House
}

var House = donburi.NewComponentType[HouseData]()
