package systems

import (
	"image/color"
	"math"

	"github.com/automoto/neighbors/assets"
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyOp       = &ebiten.DrawRectShaderOptions{}
	shadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 50}
	cloudColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	trunkColor  = color.RGBA{R: 121, G: 85, B: 72, A: 255}
	leafColor   = color.RGBA{R: 67, G: 160, B: 71, A: 255}
	windowColor = color.RGBA{R: 187, G: 222, B: 251, A: 255}
	frameColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	brickColor  = color.RGBA{R: 141, G: 110, B: 99, A: 255}
	eyeColor    = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	mouthColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	shoeColor   = color.RGBA{R: 66, G: 66, B: 66, A: 255}
)

// DrawBackground paints the sky for the current time of day, clouds, the ground
// band with swaying grass and the border confetti.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	palette := cfg.Sky[CurrentTimeOfDay(e)]
	w := float64(cfg.C.Width)
	h := float64(cfg.C.StageHeight)

	drawSky(screen, palette, w, h)

	env := GetOrCreateEnvironment(e)
	for _, c := range env.Clouds {
		clr := withAlpha(cloudColor, c.Opacity)
		fillCircle(screen, c.X, c.Y, c.Size/2, clr)
		fillCircle(screen, c.X+c.Size*0.6, c.Y-c.Size*0.2, c.Size/2.2, clr)
		fillCircle(screen, c.X+c.Size*1.2, c.Y, c.Size/1.8, clr)
	}

	groundTop := h - cfg.Environment.GroundHeight
	fillRect(screen, 0, groundTop, w, cfg.Environment.GroundHeight, palette.Ground)

	ms := ClockMillis(e)
	spacing := cfg.Environment.GrassSpacing
	for x := 0.0; x < w; x += spacing {
		tip := GrassSway(ms, x)
		fillTriangle(screen,
			x, groundTop,
			x+spacing/2+tip, groundTop-cfg.Environment.GrassHeight,
			x+spacing-1, groundTop,
			palette.Grass)
	}

	for _, it := range env.Items {
		drawBorderItem(screen, it)
	}
}

func drawSky(screen *ebiten.Image, palette cfg.SkyPalette, w, h float64) {
	if assets.SkyShader != nil {
		skyOp.Uniforms = map[string]any{
			"Top":    colorVec(palette.Top),
			"Bottom": colorVec(palette.Bottom),
			"Height": float32(h),
		}
		screen.DrawRectShader(int(w), int(h), assets.SkyShader, skyOp)
		return
	}

	// Banded fallback when the shader failed to compile
	const bands = 32
	bandH := h / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		fillRect(screen, 0, float64(i)*bandH, w, bandH+1, lerpColor(palette.Top, palette.Bottom, t))
	}
}

func drawBorderItem(screen *ebiten.Image, it components.BorderItem) {
	switch it.Shape {
	case components.ShapeStar:
		fillFan(screen, it.X, it.Y, starPoints(it.X, it.Y, 5, it.Size/2, it.Size/4, it.Rotation), it.Color)
	case components.ShapeHeart:
		pts := heartPoints(it.X, it.Y, it.Size)
		fillFan(screen, it.X, it.Y, rotatePoints(pts, it.X, it.Y, it.Rotation), it.Color)
	case components.ShapeCircle:
		fillCircle(screen, it.X, it.Y, it.Size/2, it.Color)
	case components.ShapeTriangle:
		s := it.Size / 2
		pts := rotatePoints([][2]float64{{it.X, it.Y - s}, {it.X + s, it.Y + s}, {it.X - s, it.Y + s}}, it.X, it.Y, it.Rotation)
		fillTriangle(screen, pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], it.Color)
	}
}

// heartPoints traces the classic parametric heart, scaled to size.
func heartPoints(cx, cy, size float64) [][2]float64 {
	const segs = 24
	scale := size / 34
	pts := make([][2]float64, segs)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / segs
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts[i] = [2]float64{cx + x*scale, cy - y*scale}
	}
	return pts
}

// DrawNeighborhood draws the houses and trees from the map behind the cast.
func DrawNeighborhood(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	n := components.Level.Get(entry).Map
	if n == nil {
		return
	}

	for _, t := range n.Trees {
		drawTree(screen, t)
	}
	for _, h := range n.Houses {
		drawHouse(screen, h)
	}
}

func drawHouse(screen *ebiten.Image, h assets.House) {
	roofH := h.Height * 0.4
	wallY := h.Y + roofH
	wallH := h.Height - roofH

	if h.Chimney {
		fillRect(screen, h.X+h.Width*0.7, h.Y+roofH*0.1, h.Width*0.1, roofH*0.8, brickColor)
	}
	fillTriangle(screen, h.X-10, wallY, h.X+h.Width/2, h.Y, h.X+h.Width+10, wallY, h.Roof)
	fillRect(screen, h.X, wallY, h.Width, wallH, h.Wall)

	doorW, doorH := h.Width*0.2, wallH*0.55
	doorX := h.X + (h.Width-doorW)/2
	fillRect(screen, doorX, wallY+wallH-doorH, doorW, doorH, h.Door)
	fillCircle(screen, doorX+doorW*0.8, wallY+wallH-doorH/2, 2, frameColor)

	if h.Windows <= 0 {
		return
	}
	// Windows alternate either side of the door
	winW, winH := h.Width*0.18, wallH*0.3
	leftCX := h.X + (doorX-h.X)/2
	rightCX := doorX + doorW + (h.X+h.Width-doorX-doorW)/2
	for i := 0; i < h.Windows && i < 2; i++ {
		cx := leftCX
		if i%2 == 1 {
			cx = rightCX
		}
		x, y := cx-winW/2, wallY+wallH*0.2
		fillRect(screen, x-2, y-2, winW+4, winH+4, frameColor)
		fillRect(screen, x, y, winW, winH, windowColor)
		fillRect(screen, x+winW/2-1, y, 2, winH, frameColor)
	}
}

func drawTree(screen *ebiten.Image, t assets.Tree) {
	trunkW := t.Width * 0.25
	fillRect(screen, t.X+(t.Width-trunkW)/2, t.Y+t.Height*0.45, trunkW, t.Height*0.55, trunkColor)
	r := t.Width / 2
	fillCircle(screen, t.X+r, t.Y+r, r, leafColor)
	fillCircle(screen, t.X+r*0.6, t.Y+r*1.6, r*0.7, leafColor)
	fillCircle(screen, t.X+r*1.4, t.Y+r*1.6, r*0.7, leafColor)
}

// bodyTransform maps points in a character's 60x120 box to the screen,
// applying facing, squash/stretch and the idle bounce.
type bodyTransform struct {
	x, y, w, h float64
	flip       bool
	sx, sy     float64
	bounce     float64
}

func (t bodyTransform) pt(lx, ly float64) (float64, float64) {
	if t.flip {
		lx = t.w - lx
	}
	px := t.x + t.w/2 + (lx-t.w/2)*t.sx
	py := t.y + t.h/2 + (ly-t.h/2)*t.sy + t.bounce
	return px, py
}

func (t bodyTransform) rect(screen *ebiten.Image, lx, ly, lw, lh float64, clr color.RGBA) {
	x0, y0 := t.pt(lx, ly)
	x1, y1 := t.pt(lx+lw, ly+lh)
	fillRect(screen, math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0), clr)
}

func (t bodyTransform) circle(screen *ebiten.Image, lx, ly, r float64, clr color.RGBA) {
	x, y := t.pt(lx, ly)
	fillCircle(screen, x, y, r*t.sx, clr)
}

// DrawCharacters draws the cast back to front.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	for _, name := range CastNames(e) {
		entry, ok := GetCharacter(e, name)
		if !ok {
			continue
		}
		c := components.Character.Get(entry)
		obj := components.Object.Get(entry)
		anim := components.Animation.Get(entry)
		ss := components.SquashStretch.Get(entry)
		mood := components.Mood.Get(entry).Mood

		t := bodyTransform{
			x: obj.X, y: obj.Y, w: obj.W, h: obj.H,
			flip:   c.Direction < 0,
			sx:     1 + ss.Squash,
			sy:     1 - ss.Stretch,
			bounce: anim.Bounce,
		}
		// A lifted character doesn't bob
		if components.Drag.Get(entry).Dragging {
			t.bounce = 0
		}

		frame := 0
		if c.Moving && c.Walk != nil {
			frame = c.Walk.Frame()
		}
		drawBody(screen, t, c.Profile.Color, c.Profile.Hair, c.Profile.Skin, anim.Breathe, frame, c.Moving)
		drawFace(screen, t, mood)
	}
}

func drawBody(screen *ebiten.Image, t bodyTransform, clothes, hair, skin color.RGBA, breathe float64, frame int, moving bool) {
	// Shadow stays on the ground
	sx, sy := t.pt(t.w/2, t.h-5)
	fillEllipse(screen, sx, sy-t.bounce, t.w/2*t.sx, 8, shadowColor)

	swing := 0.0
	if moving {
		swing = math.Sin(float64(frame) * math.Pi / 2)
	}

	// Legs
	t.rect(screen, 10+swing*4, 70, 12, 46, clothes)
	t.rect(screen, 38-swing*4, 70, 12, 46, clothes)
	t.rect(screen, 8+swing*4, 114, 16, 6, shoeColor)
	t.rect(screen, 36-swing*4, 114, 16, 6, shoeColor)

	// Arms
	armOffset := swing * 10
	t.rect(screen, 0, 35+armOffset, 10, 30, skin)
	t.rect(screen, 50, 35-armOffset, 10, 30, skin)

	// Torso breathes around its middle
	torsoH := 40 * (1 + breathe)
	t.rect(screen, 10, 50-torsoH/2, 40, torsoH, clothes)

	// Head with hair cap
	r := 15 * (1 + breathe)
	t.circle(screen, 30, 15, r, skin)
	hx, hy := t.pt(30, 15)
	pts := make([][2]float64, 0, 12)
	for i := 0; i <= 10; i++ {
		a := math.Pi + math.Pi*float64(i)/10
		pts = append(pts, [2]float64{hx + math.Cos(a)*r*t.sx, hy + math.Sin(a)*r*t.sy})
	}
	fillFan(screen, hx, hy-r*0.3, pts, hair)
}

func drawFace(screen *ebiten.Image, t bodyTransform, mood cfg.MoodID) {
	lx, ly := t.pt(25, 12)
	rx, ry := t.pt(35, 12)
	mx, my := t.pt(30, 20)

	eyeR := 2.0
	if mood == cfg.MoodSurprised || mood == cfg.MoodExcited {
		eyeR = 3
	}
	fillCircle(screen, lx, ly, eyeR, eyeColor)
	fillCircle(screen, rx, ry, eyeR, eyeColor)

	switch mood {
	case cfg.MoodHappy:
		strokeArc(screen, mx, my-2, 5, 0, math.Pi, 1.5, mouthColor)
	case cfg.MoodExcited:
		fillFan(screen, mx, my, [][2]float64{
			{mx - 6, my - 2}, {mx + 6, my - 2}, {mx + 4, my + 3}, {mx, my + 5}, {mx - 4, my + 3},
		}, mouthColor)
	case cfg.MoodSad:
		strokeArc(screen, mx, my+3, 5, math.Pi, 2*math.Pi, 1.5, mouthColor)
	case cfg.MoodAngry:
		vector.StrokeLine(screen, float32(mx-5), float32(my+1), float32(mx+5), float32(my+1), 1.5, mouthColor, true)
		vector.StrokeLine(screen, float32(lx-4), float32(ly-6), float32(lx+3), float32(ly-3), 1.5, mouthColor, true)
		vector.StrokeLine(screen, float32(rx-3), float32(ry-3), float32(rx+4), float32(ry-6), 1.5, mouthColor, true)
	case cfg.MoodSurprised:
		fillCircle(screen, mx, my+1, 3, mouthColor)
	default:
		vector.StrokeLine(screen, float32(mx-4), float32(my), float32(mx+4), float32(my), 1.5, mouthColor, true)
	}
}

// DrawBubbles draws speech and thought bubbles above the cast, front-most last.
func DrawBubbles(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	measure := func(s string) int {
		return text.BoundString(face, s).Dx()
	}
	ascent := face.Metrics().Ascent.Ceil()
	maxText := int(cfg.Bubble.Width - 2*cfg.Bubble.Padding)

	for _, name := range CastNames(e) {
		entry, ok := GetCharacter(e, name)
		if !ok {
			continue
		}
		b := components.Bubble.Get(entry)
		obj := components.Object.Get(entry)
		cx := obj.X + obj.W/2

		switch {
		case b.SpeechVisible && b.Speech != "":
			lines := WrapText(b.Speech, maxText, measure)
			drawSpeechBubble(screen, cx, obj.Y, lines, ascent)
		case b.ThoughtVisible && b.Thought != "":
			lines := WrapText(b.Thought, maxText, measure)
			drawThoughtBubble(screen, cx, obj.Y, lines, ascent)
		}
	}
}

func drawSpeechBubble(screen *ebiten.Image, cx, headY float64, lines []string, ascent int) {
	bc := cfg.Bubble
	w := bc.Width
	h := float64(len(lines))*bc.LineHeight + 2*bc.Padding
	bottom := headY - bc.OffsetY
	x := clamp(cx-w/2, 2, float64(cfg.C.Width)-w-2)
	y := math.Max(2, bottom-h)

	fillRoundRect(screen, x-2, y-2, w+4, h+4, bc.CornerRadius+2, bc.SpeechStroke)
	fillTriangle(screen, cx-12, y+h-1, cx, headY-2, cx+12, y+h-1, bc.SpeechStroke)
	fillRoundRect(screen, x, y, w, h, bc.CornerRadius, bc.SpeechFill)
	fillTriangle(screen, cx-9, y+h-2, cx, headY-6, cx+9, y+h-2, bc.SpeechFill)

	drawBubbleText(screen, lines, x, y, w, ascent)
}

func drawThoughtBubble(screen *ebiten.Image, cx, headY float64, lines []string, ascent int) {
	bc := cfg.Bubble
	w := bc.Width
	h := float64(len(lines))*bc.LineHeight + 2*bc.Padding
	// The ellipse is wider than the text box so the corners stay inside
	rx, ry := w/2*1.15, h/2*1.35
	ecx := clamp(cx, rx+2, float64(cfg.C.Width)-rx-2)
	ecy := math.Max(ry+2, headY-bc.OffsetY-10-ry)

	fillEllipse(screen, ecx, ecy, rx+2, ry+2, bc.ThoughtStroke)
	fillEllipse(screen, ecx, ecy, rx, ry, bc.ThoughtFill)

	// Trail of puffs down to the head
	for i, r := range []float64{8, 5, 3} {
		py := headY - bc.OffsetY - 2 + float64(i)*8
		fillCircle(screen, cx, py, r+1.5, bc.ThoughtStroke)
		fillCircle(screen, cx, py, r, bc.ThoughtFill)
	}

	drawBubbleText(screen, lines, ecx-w/2, ecy-h/2, w, ascent)
}

func drawBubbleText(screen *ebiten.Image, lines []string, x, y, w float64, ascent int) {
	face := fonts.Regular.Get()
	for i, line := range lines {
		lw := text.BoundString(face, line).Dx()
		tx := int(x + (w-float64(lw))/2)
		ty := int(y+cfg.Bubble.Padding+float64(i)*cfg.Bubble.LineHeight) + ascent
		text.Draw(screen, line, face, tx, ty, cfg.Bubble.TextColor)
	}
}

// DrawEmotes draws the floating emotes, fading as they rise.
func DrawEmotes(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Emote.Get()
	components.Emote.Each(e.World, func(entry *donburi.Entry) {
		emote := components.Emote.Get(entry)
		bounds := text.BoundString(face, emote.Text)
		x := int(emote.Position.X) - bounds.Dx()/2
		y := int(emote.Position.Y - emote.Offset)
		text.Draw(screen, emote.Text, face, x, y, withAlpha(cfg.Ink, emote.Alpha))
	})
}

// DrawShade tints the finished stage for evening and night.
func DrawShade(e *ecs.ECS, screen *ebiten.Image) {
	shade := cfg.Sky[CurrentTimeOfDay(e)].Shade
	if shade.A == 0 {
		return
	}
	fillRect(screen, 0, 0, float64(cfg.C.Width), float64(cfg.C.StageHeight), shade)
}

func colorVec(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
