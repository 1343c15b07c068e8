package systems

import (
	"image/color"

	"github.com/automoto/neighbors/assets"
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugCharacter = color.RGBA{0, 0, 255, 255}   // Blue
	debugHouse     = color.RGBA{100, 100, 100, 255} // Grey
	debugMark      = color.RGBA{255, 0, 0, 255}   // Red
	debugOther     = color.RGBA{0, 255, 255, 255} // Cyan
)

// DrawDebug outlines every resolv object and the stage marks.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := debugOther
			if obj.HasTags(tags.ResolvCharacter) {
				c = debugCharacter
			} else if obj.HasTags(tags.ResolvHouse) {
				c = debugHouse
			}
			strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	var n *assets.Neighborhood
	if entry, ok := components.Level.First(e.World); ok {
		n = components.Level.Get(entry).Map
	}
	feet := float32(float64(cfg.C.StageHeight) - cfg.Character.GroundOffset)
	for _, name := range []string{"left", "center", "right"} {
		x, ok := n.Mark(name)
		if !ok {
			continue
		}
		vector.FillRect(screen, float32(x)-1, feet-20, 2, 20, debugMark, false)
	}

	p := getOrCreatePointer(e)
	vector.FillRect(screen, float32(p.X)-2, float32(p.Y)-2, 4, 4, debugMark, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
