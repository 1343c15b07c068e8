package assets

import (
	"embed"
	"fmt"
	"image/color"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:maps
var assetFS embed.FS

// NeighborhoodPath is the backdrop map inside the embedded filesystem.
const NeighborhoodPath = "maps/neighborhood.tmx"

type House struct {
	Name                string
	X, Y, Width, Height float64
	Wall, Roof, Door    color.RGBA
	Windows             int
	Chimney             bool
}

type Tree struct {
	X, Y, Width, Height float64
}

// Neighborhood is the static backdrop the stage is built on.
type Neighborhood struct {
	Width  int
	Height int
	Houses []House
	Trees  []Tree
	// Marks maps a stage position name (left, center, right) to its x.
	Marks map[string]float64
}

// Mark returns the x of the named stage mark.
func (n *Neighborhood) Mark(name string) (float64, bool) {
	if n == nil {
		return 0, false
	}
	x, ok := n.Marks[name]
	return x, ok
}

func MustLoadNeighborhood() *Neighborhood {
	n, err := LoadNeighborhood(NeighborhoodPath)
	if err != nil {
		panic(err)
	}
	return n
}

func LoadNeighborhood(path string) (*Neighborhood, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	n := &Neighborhood{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Marks:  make(map[string]float64),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Houses":
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if kind != "house" {
					continue
				}
				h := House{
					Name:    o.Name,
					X:       o.X,
					Y:       o.Y,
					Width:   o.Width,
					Height:  o.Height,
					Windows: o.Properties.GetInt("windows"),
					Chimney: o.Properties.GetBool("chimney"),
				}
				if h.Wall, err = parseHex(o.Properties.GetString("wall")); err != nil {
					return nil, fmt.Errorf("house %q wall: %w", o.Name, err)
				}
				if h.Roof, err = parseHex(o.Properties.GetString("roof")); err != nil {
					return nil, fmt.Errorf("house %q roof: %w", o.Name, err)
				}
				if h.Door, err = parseHex(o.Properties.GetString("door")); err != nil {
					return nil, fmt.Errorf("house %q door: %w", o.Name, err)
				}
				n.Houses = append(n.Houses, h)
			}
			// Draw back to front, left to right
			sort.Slice(n.Houses, func(i, j int) bool {
				return n.Houses[i].X < n.Houses[j].X
			})
		case "Trees":
			for _, o := range og.Objects {
				n.Trees = append(n.Trees, Tree{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "StageMarks":
			for _, o := range og.Objects {
				n.Marks[o.Name] = o.X
			}
		}
	}

	return n, nil
}

// parseHex reads a #rrggbb color. An empty string is opaque black.
func parseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	if s == "" {
		return c, nil
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}
