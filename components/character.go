package components

import (
	"github.com/automoto/neighbors/assets/animations"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/story"
	"github.com/yohamta/donburi"
)

// CharacterData is a neighbor on stage. Position lives in the Object component.
type CharacterData struct {
	Name      string
	Profile   story.Profile
	Direction float64 // cfg.DirectionLeft or cfg.DirectionRight
	Speed     float64

	Moving  bool
	TargetX float64

	Walk *animations.Animation
}

var Character = donburi.NewComponentType[CharacterData]()

type MoodData struct {
	Mood cfg.MoodID
}

var Mood = donburi.NewComponentType[MoodData]()
