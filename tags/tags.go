package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Emote     = donburi.NewTag().SetName("Emote")
	House     = donburi.NewTag().SetName("House")
)

// Resolv tags for hit testing
const (
	ResolvCharacter = "character"
	ResolvHouse     = "house"
)
