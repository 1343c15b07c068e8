package components

import (
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/script"
	"github.com/automoto/neighbors/story"
	"github.com/yohamta/donburi"
)

// TheaterData tracks the episode being played (singleton component)
type TheaterData struct {
	Episode    *story.Episode
	SceneIndex int
	Sequencer  *script.Sequencer
	TimeOfDay  cfg.TimeOfDay
	Finished   bool // last scene has played out
}

var Theater = donburi.NewComponentType[TheaterData]()
