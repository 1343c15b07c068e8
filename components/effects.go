package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SquashStretchData is a scale pop that decays back to zero each tick
type SquashStretchData struct {
	Squash  float64 // widens the body
	Stretch float64 // lengthens the body
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// EmoteData is a floating glyph above a character
type EmoteData struct {
	Text     string
	Position math.Vec2
	Rise     *gween.Tween
	Offset   float64 // current height above Position
	Alpha    float64
	Elapsed  float64 // seconds
	Duration float64
}

var Emote = donburi.NewComponentType[EmoteData]()
