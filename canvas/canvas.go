// Package canvas is a minimal 2D drawing API in the style of the HTML canvas,
// used by affordances to draw onto the interaction layer and the HUD.
package canvas

import "image/color"
import "math"

import "github.com/golang/geo/r2"

// Context is the drawing context passed to Surface.Draw callbacks.
type Context interface {
	// Save pushes the current line width and paints on a stack.
	Save()
	// Restore pops the state pushed by the last Save.
	Restore()
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Arc adds a circular arc with angles in radians, measured clockwise
	// from the positive X axis. It is connected to the current point by a
	// straight line.
	Arc(x, y, radius, startAngle, endAngle float64)
	SetLineWidth(width float64)
	SetStrokeColor(c color.Color)
	SetStrokeGradient(g LinearGradient)
	SetFillColor(c color.Color)
	Stroke()
	Fill()
}

// Surface is a 2D layer that can be cleared and drawn onto.
type Surface interface {
	Width() int
	Height() int
	Clear()
	Draw(draw func(ctx Context, width, height float64))
}

type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient interpolates colors along the line from (X0,Y0) to (X1,Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []GradientStop
}

func (g *LinearGradient) AddColorStop(offset float64, c color.Color) {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color.NRGBAModel.Convert(c).(color.NRGBA)})
}

// At returns the color of the gradient at (x,y).
func (g LinearGradient) At(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	t := 0.
	if l := dx*dx + dy*dy; l > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / l
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if t > s1.Offset {
			continue
		}
		f := 0.
		if s1.Offset > s0.Offset {
			f = (t - s0.Offset) / (s1.Offset - s0.Offset)
		}
		return lerpColor(s0.Color, s1.Color, f)
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerpColor(a, b color.NRGBA, f float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// Alpha converts an opacity in [0,1] to an 8 bit alpha value.
func Alpha(opacity float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, opacity)) * 255))
}

// WithOpacity returns c with its alpha replaced.
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = Alpha(opacity)
	return c
}

// arcStep is the maximal angle between two points approximating an arc.
const arcStep = math.Pi / 36

type subPath struct {
	points []r2.Point
	closed bool
}

// pathBuilder keeps the current path in device coordinates.
type pathBuilder struct {
	subPaths []subPath
}

func (b *pathBuilder) BeginPath() {
	b.subPaths = nil
}

func (b *pathBuilder) MoveTo(x, y float64) {
	b.subPaths = append(b.subPaths, subPath{points: []r2.Point{{X: x, Y: y}}})
}

func (b *pathBuilder) LineTo(x, y float64) {
	if len(b.subPaths) == 0 || b.current().closed {
		b.MoveTo(x, y)
		return
	}
	current := b.current()
	current.points = append(current.points, r2.Point{X: x, Y: y})
}

func (b *pathBuilder) ClosePath() {
	if len(b.subPaths) == 0 {
		return
	}
	current := b.current()
	current.closed = true
	// A following LineTo starts at the first point of the closed subpath.
	b.subPaths = append(b.subPaths, subPath{points: []r2.Point{current.points[0]}})
}

func (b *pathBuilder) Arc(x, y, radius, startAngle, endAngle float64) {
	if radius < 0 {
		return
	}
	sweep := endAngle - startAngle
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	steps := int(math.Ceil(sweep / arcStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		px, py := x+radius*math.Cos(a), y+radius*math.Sin(a)
		if i == 0 && len(b.subPaths) == 0 {
			b.MoveTo(px, py)
		} else {
			b.LineTo(px, py)
		}
	}
}

func (b *pathBuilder) current() *subPath {
	return &b.subPaths[len(b.subPaths)-1]
}

// drawable returns the subpaths with at least two points.
func (b *pathBuilder) drawable() []subPath {
	var result []subPath
	for _, sp := range b.subPaths {
		if len(sp.points) > 1 {
			result = append(result, sp)
		}
	}
	return result
}

// paint is either a solid color or a gradient.
type paint struct {
	color    color.NRGBA
	gradient *LinearGradient
}

func solid(c color.Color) paint {
	return paint{color: color.NRGBAModel.Convert(c).(color.NRGBA)}
}

type state struct {
	lineWidth float64
	stroke    paint
	fill      paint
}

func defaultState() state {
	black := color.NRGBA{A: 0xff}
	return state{lineWidth: 1, stroke: paint{color: black}, fill: paint{color: black}}
}

// stateStack implements the state handling shared by contexts.
type stateStack struct {
	state
	saved []state
}

func (s *stateStack) Save() {
	s.saved = append(s.saved, s.state)
}

func (s *stateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.state = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stateStack) SetLineWidth(width float64) {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return
	}
	s.lineWidth = width
}

func (s *stateStack) SetStrokeColor(c color.Color) {
	s.stroke = solid(c)
}

func (s *stateStack) SetStrokeGradient(g LinearGradient) {
	s.stroke = paint{gradient: &g}
}

func (s *stateStack) SetFillColor(c color.Color) {
	s.fill = solid(c)
}
