package systems

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SeedRandom makes clouds, confetti and reactions repeatable.
func SeedRandom(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// InitEnvironment scatters clouds and border confetti across the stage.
func InitEnvironment(e *ecs.ECS) *components.EnvironmentData {
	env := GetOrCreateEnvironment(e)
	w := float64(cfg.C.Width)
	h := float64(cfg.C.StageHeight)

	env.Clouds = make([]components.Cloud, cfg.Environment.CloudCount)
	for i := range env.Clouds {
		env.Clouds[i] = components.Cloud{
			X:       rng.Float64() * w,
			Y:       20 + rng.Float64()*h*0.3,
			Size:    30 + rng.Float64()*40,
			Speed:   0.2 + rng.Float64()*0.3,
			Opacity: 0.6 + rng.Float64()*0.4,
		}
	}

	env.Items = make([]components.BorderItem, cfg.Environment.BorderItemCount)
	for i := range env.Items {
		env.Items[i] = newBorderItem(i, w, h)
	}
	return env
}

// newBorderItem places item i on one of the four stage edges.
func newBorderItem(i int, w, h float64) components.BorderItem {
	item := components.BorderItem{
		Size:          8 + rng.Float64()*8,
		Shape:         components.ItemShape(rng.Intn(4)),
		Color:         hue(rng.Float64() * 360),
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 0.05,
		VX:            (rng.Float64() - 0.5) * 0.5,
		VY:            (rng.Float64() - 0.5) * 0.5,
	}
	switch i % 4 {
	case 0: // top
		item.X, item.Y = rng.Float64()*w, rng.Float64()*20
	case 1: // right
		item.X, item.Y = w-rng.Float64()*20, rng.Float64()*h
	case 2: // bottom
		item.X, item.Y = rng.Float64()*w, h-rng.Float64()*20
	default: // left
		item.X, item.Y = rng.Float64()*20, rng.Float64()*h
	}
	return item
}

// UpdateEnvironment drifts clouds and confetti, wrapping them around the stage.
func UpdateEnvironment(e *ecs.ECS) {
	env := GetOrCreateEnvironment(e)
	w := float64(cfg.C.Width)
	h := float64(cfg.C.StageHeight)

	for i := range env.Clouds {
		c := &env.Clouds[i]
		c.X -= c.Speed
		if c.X+c.Size*2 < 0 {
			c.X = w + c.Size
		}
	}

	for i := range env.Items {
		it := &env.Items[i]
		it.Rotation += it.RotationSpeed
		it.X = wrap(it.X+it.VX, -it.Size, w+it.Size)
		it.Y = wrap(it.Y+it.VY, -it.Size, h+it.Size)
	}
}

// GrassSway is the horizontal tip offset of the grass blade at x.
func GrassSway(ms, x float64) float64 {
	return math.Sin(ms/1000+x/50) * cfg.Environment.GrassSway
}

func wrap(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return hi
	case v > hi:
		return lo
	}
	return v
}

// hue converts a hue in degrees to a saturated pastel color.
func hue(deg float64) color.RGBA {
	h := math.Mod(deg, 360) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = 1, x, 0
	case 1:
		r, g, b = x, 1, 0
	case 2:
		r, g, b = 0, 1, x
	case 3:
		r, g, b = 0, x, 1
	case 4:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	// Lift toward white
	lift := func(v float64) uint8 { return uint8(255 * (0.35 + 0.65*v)) }
	return color.RGBA{R: lift(r), G: lift(g), B: lift(b), A: 255}
}

// GetOrCreateEnvironment returns the singleton Environment component
func GetOrCreateEnvironment(e *ecs.ECS) *components.EnvironmentData {
	entry, ok := components.Environment.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Environment))
	}
	return components.Environment.Get(entry)
}
