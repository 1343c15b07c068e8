package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type DragData struct {
	Draggable bool
	Dragging  bool
	Offset    math.Vec2 // position minus pointer at grab time
	PressAt   math.Vec2 // pointer position at grab time
	Travel    float64   // furthest the pointer got from PressAt
}

var Drag = donburi.NewComponentType[DragData]()
