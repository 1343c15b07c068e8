package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Source texture for DrawTriangles; vertex colors do the tinting
var whitePixel *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

var (
	fanVertices []ebiten.Vertex
	fanIndices  []uint16
	fanOp       = &ebiten.DrawTrianglesOptions{}
)

// fillFan fills the polygon pts as a triangle fan around (cx, cy). The polygon
// must be star-shaped with respect to the center.
func fillFan(dst *ebiten.Image, cx, cy float64, pts [][2]float64, clr color.RGBA) {
	if len(pts) < 2 {
		return
	}
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	if a > 0 {
		// color.RGBA is premultiplied; vertices take straight alpha
		r, g, b = r/a, g/a, b/a
	}

	fanVertices = fanVertices[:0]
	fanIndices = fanIndices[:0]
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	fanVertices = append(fanVertices, vertex(cx, cy))
	for _, p := range pts {
		fanVertices = append(fanVertices, vertex(p[0], p[1]))
	}
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		fanIndices = append(fanIndices, 0, i+1, (i+1)%n+1)
	}
	dst.DrawTriangles(fanVertices, fanIndices, whiteSubImage(), fanOp)
}

// ellipsePoints approximates an ellipse with segs points.
func ellipsePoints(cx, cy, rx, ry float64, segs int) [][2]float64 {
	pts := make([][2]float64, segs)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(segs)
		pts[i] = [2]float64{cx + math.Cos(t)*rx, cy + math.Sin(t)*ry}
	}
	return pts
}

func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.RGBA) {
	fillFan(dst, cx, cy, ellipsePoints(cx, cy, rx, ry, 32), clr)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.RGBA) {
	vector.FillCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	cx, cy := (x0+x1+x2)/3, (y0+y1+y2)/3
	fillFan(dst, cx, cy, [][2]float64{{x0, y0}, {x1, y1}, {x2, y2}}, clr)
}

// fillRoundRect fills a rectangle with corners of radius r.
func fillRoundRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.RGBA) {
	r = math.Min(r, math.Min(w, h)/2)
	fillRect(dst, x+r, y, w-2*r, h, clr)
	fillRect(dst, x, y+r, r, h-2*r, clr)
	fillRect(dst, x+w-r, y+r, r, h-2*r, clr)
	fillCircle(dst, x+r, y+r, r, clr)
	fillCircle(dst, x+w-r, y+r, r, clr)
	fillCircle(dst, x+r, y+h-r, r, clr)
	fillCircle(dst, x+w-r, y+h-r, r, clr)
}

// strokeArc draws the arc of a circle from angle a0 to a1 (radians, y down).
func strokeArc(dst *ebiten.Image, cx, cy, r, a0, a1 float64, width float32, clr color.RGBA) {
	const segs = 10
	px, py := cx+math.Cos(a0)*r, cy+math.Sin(a0)*r
	for i := 1; i <= segs; i++ {
		t := a0 + (a1-a0)*float64(i)/segs
		x, y := cx+math.Cos(t)*r, cy+math.Sin(t)*r
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), width, clr, true)
		px, py = x, y
	}
}

// starPoints returns the outline of a star with the given spikes, rotated by rot.
func starPoints(cx, cy float64, spikes int, outer, inner, rot float64) [][2]float64 {
	pts := make([][2]float64, 0, spikes*2)
	step := math.Pi / float64(spikes)
	angle := rot - math.Pi/2
	for i := 0; i < spikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, [2]float64{cx + math.Cos(angle)*r, cy + math.Sin(angle)*r})
		angle += step
	}
	return pts
}

// rotatePoints turns pts around (cx, cy) in place.
func rotatePoints(pts [][2]float64, cx, cy, rot float64) [][2]float64 {
	sin, cos := math.Sin(rot), math.Cos(rot)
	for i, p := range pts {
		dx, dy := p[0]-cx, p[1]-cy
		pts[i] = [2]float64{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return pts
}

// withAlpha scales a color by alpha, keeping it premultiplied.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
