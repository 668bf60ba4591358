package canvas

import "image"
import "image/color"
import "image/png"
import "io"
import "math"

import "github.com/golang/geo/r2"
import "golang.org/x/image/draw"
import "golang.org/x/image/vector"

import "github.com/pwiecz/vr_affordances/lib/r2geo"

// Raster is a Surface backed by an RGBA image.
type Raster struct {
	img *image.RGBA
}

func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (r *Raster) Width() int  { return r.img.Bounds().Dx() }
func (r *Raster) Height() int { return r.img.Bounds().Dy() }

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) Draw(fn func(ctx Context, width, height float64)) {
	ctx := &rasterContext{dst: r.img, stateStack: stateStack{state: defaultState()}}
	fn(ctx, float64(r.Width()), float64(r.Height()))
}

// EncodePNG writes the surface as a PNG image.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

type rasterContext struct {
	stateStack
	pathBuilder
	dst *image.RGBA
}

func (c *rasterContext) newRasterizer() *vector.Rasterizer {
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (c *rasterContext) Fill() {
	subPaths := c.drawable()
	if len(subPaths) == 0 {
		return
	}
	z := c.newRasterizer()
	for _, sp := range subPaths {
		addPolygon(z, sp.points, false)
	}
	c.paint(z, c.fill)
}

func (c *rasterContext) Stroke() {
	subPaths := c.drawable()
	if len(subPaths) == 0 {
		return
	}
	z := c.newRasterizer()
	halfWidth := c.lineWidth / 2
	for _, sp := range subPaths {
		points := sp.points
		if sp.closed {
			points = append(points[:len(points):len(points)], points[0])
		}
		for i := 0; i+1 < len(points); i++ {
			addPolygon(z, segmentQuad(points[i], points[i+1], halfWidth), true)
		}
		for _, p := range points {
			addPolygon(z, joinPolygon(p, halfWidth), true)
		}
	}
	c.paint(z, c.stroke)
}

func (c *rasterContext) paint(z *vector.Rasterizer, p paint) {
	var src image.Image = image.NewUniform(p.color)
	if p.gradient != nil {
		src = gradientImage{gradient: *p.gradient}
	}
	z.Draw(c.dst, c.dst.Bounds(), src, image.Point{})
}

// addPolygon adds a closed polygon to the rasterizer. Overlapping polygons
// only add up instead of cancelling out if all of them have the same
// orientation, so orient normalizes it.
func addPolygon(z *vector.Rasterizer, points []r2.Point, orient bool) {
	if len(points) < 3 {
		return
	}
	if orient && r2geo.SignedArea(points) < 0 {
		reversed := make([]r2.Point, len(points))
		for i, p := range points {
			reversed[len(points)-1-i] = p
		}
		points = reversed
	}
	z.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func segmentQuad(a, b r2.Point, halfWidth float64) []r2.Point {
	d := b.Sub(a)
	if d.Norm() == 0 {
		return nil
	}
	n := d.Ortho().Normalize().Mul(halfWidth)
	return []r2.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// joinPolygon approximates a round line join.
func joinPolygon(center r2.Point, radius float64) []r2.Point {
	const n = 12
	points := make([]r2.Point, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		points = append(points, r2.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return points
}

// gradientImage is an unbounded image painting a linear gradient.
type gradientImage struct {
	gradient LinearGradient
}

func (g gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g gradientImage) At(x, y int) color.Color {
	return g.gradient.At(float64(x)+0.5, float64(y)+0.5)
}
