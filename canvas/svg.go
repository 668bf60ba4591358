package canvas

import "bytes"
import "fmt"
import "image/color"
import "io"
import "strings"

import svg "github.com/ajstarks/svgo"

// SVG is a Surface recording its drawing as SVG elements.
type SVG struct {
	width, height int
	elements      []func(s *svg.SVG)
	gradients     int
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Width() int  { return s.width }
func (s *SVG) Height() int { return s.height }

func (s *SVG) Clear() {
	s.elements = nil
	s.gradients = 0
}

func (s *SVG) Draw(fn func(ctx Context, width, height float64)) {
	ctx := &svgContext{surface: s, stateStack: stateStack{state: defaultState()}}
	fn(ctx, float64(s.width), float64(s.height))
}

// WriteTo writes the SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(s.width, s.height)
	for _, element := range s.elements {
		element(doc)
	}
	doc.End()
	return buf.WriteTo(w)
}

type svgContext struct {
	stateStack
	pathBuilder
	surface *SVG
}

func (c *svgContext) pathData(closeAll bool) string {
	var d strings.Builder
	for _, sp := range c.drawable() {
		for i, p := range sp.points {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&d, "%s%.3f %.3f ", cmd, p.X, p.Y)
		}
		if sp.closed || closeAll {
			d.WriteString("Z ")
		}
	}
	return strings.TrimSpace(d.String())
}

func (c *svgContext) Fill() {
	d := c.pathData(true)
	if d == "" {
		return
	}
	style := "stroke:none;" + fillStyle(c.fill.color)
	c.surface.elements = append(c.surface.elements, func(s *svg.SVG) {
		s.Path(d, style)
	})
}

func (c *svgContext) Stroke() {
	d := c.pathData(false)
	if d == "" {
		return
	}
	style := fmt.Sprintf("fill:none;stroke-width:%.3f;stroke-linejoin:round;stroke-linecap:round;", c.lineWidth)
	if g := c.stroke.gradient; g != nil {
		id := fmt.Sprintf("gradient%d", c.surface.gradients)
		c.surface.gradients++
		gradient := *g
		c.surface.elements = append(c.surface.elements, func(s *svg.SVG) {
			s.Def()
			writeGradient(s.Writer, id, gradient)
			s.DefEnd()
		})
		style += fmt.Sprintf("stroke:url(#%s)", id)
	} else {
		style += strokeStyle(c.stroke.color)
	}
	c.surface.elements = append(c.surface.elements, func(s *svg.SVG) {
		s.Path(d, style)
	})
}

func writeGradient(w io.Writer, id string, g LinearGradient) {
	fmt.Fprintf(w, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f">`+"\n",
		id, g.X0, g.Y0, g.X1, g.Y1)
	for _, stop := range g.Stops {
		fmt.Fprintf(w, `<stop offset="%.3f" stop-color="%s" stop-opacity="%.3f"/>`+"\n",
			stop.Offset, rgb(stop.Color), opacity(stop.Color))
	}
	fmt.Fprintln(w, "</linearGradient>")
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(c), opacity(c))
}

func strokeStyle(c color.NRGBA) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%.3f", rgb(c), opacity(c))
}
