package components

import "github.com/yohamta/donburi"

// CastData indexes the characters on stage by name (singleton component)
type CastData struct {
	Entities map[string]donburi.Entity
	Order    []string // spawn order
}

var Cast = donburi.NewComponentType[CastData]()
