package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type Cloud struct {
	X, Y    float64
	Size    float64
	Speed   float64
	Opacity float64
}

// ItemShape is the outline of a border confetti item
type ItemShape int

const (
	ShapeStar ItemShape = iota
	ShapeHeart
	ShapeCircle
	ShapeTriangle
)

type BorderItem struct {
	X, Y          float64
	Size          float64
	Shape         ItemShape
	Color         color.RGBA
	Rotation      float64
	RotationSpeed float64
	VX, VY        float64
}

// EnvironmentData is the animated backdrop (singleton component)
type EnvironmentData struct {
	Clouds []Cloud
	Items  []BorderItem
}

var Environment = donburi.NewComponentType[EnvironmentData]()
