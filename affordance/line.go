package affordance

import "encoding/json"
import "math"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// lineAlphaMax is the alpha of a line at the button.
const lineAlphaMax = 128

// Line renders lines fading out from off-screen buttons towards the center
// of the view.
type Line struct {
	Base
	// CutThreshold is the distance between two points beyond which a seam
	// transition is assumed. Not persisted.
	CutThreshold float64 `json:"-"`
	// LineWidthFactor is the line width as a fraction of the layer width.
	LineWidthFactor float64 `json:"lineWidthFactor"`
	LineSegments    int     `json:"lineSegments"`
	// Range is the fraction of the line after which it is fully faded.
	Range float64 `json:"range"`
}

func NewLine() *Line {
	return &Line{
		Base:            Base{Name: "Lines", Enabled: true},
		CutThreshold:    lib.DefaultCutThreshold,
		LineWidthFactor: 0.003,
		LineSegments:    100,
		Range:           1,
	}
}

func (*Line) Type() Type { return TypeLine }

// alphaAt returns the alpha of the line at x, a fraction of its length.
func (a *Line) alphaAt(x float64) uint8 {
	if a.Range <= 0 {
		return 0
	}
	f := math.Max(0, math.Min(1, x/a.Range))
	return uint8(math.Round(lineAlphaMax * (1 - f)))
}

func (a *Line) Render(buttons []*lib.Button, layers Layers, frame *Frame) {
	current := buttonsWithActiveShapes(buttons, frame.CurrentTime)
	frustum := lib.MakeFrustum(frame.Camera)
	cursorLatLon := lib.UVToLatLon(frame.Cursor)
	rendered := 0
	for _, data := range current {
		center, ok := data.button.Center(frame.CurrentTime)
		if !ok || !offscreen(&frustum, center, layers.Interaction.Radius) {
			continue
		}
		segments := frame.Cache.Path(lib.UVToLatLon(center), cursorLatLon, a.LineSegments, a.CutThreshold)

		segCount := 0
		for _, seg := range segments {
			segCount += len(seg)
		}
		if segCount == 0 {
			continue
		}
		segFraction := 1 / float64(segCount)

		layers.Interaction.Draw(func(ctx canvas.Context, width, height float64) {
			ctx.Save()
			ctx.SetLineWidth(a.LineWidthFactor * width)
			totalIndex := -1
			for _, seg := range segments {
				for i, p := range seg {
					totalIndex++
					if i == 0 {
						continue
					}
					prev := seg[i-1]
					x0, y0 := prev.X*width, prev.Y*height
					x1, y1 := p.X*width, p.Y*height

					start := segFraction * float64(totalIndex)
					end := start + segFraction
					startColor, endColor := frame.Colors.Secondary, frame.Colors.Secondary
					startColor.A, endColor.A = a.alphaAt(start), a.alphaAt(end)
					gradient := canvas.LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
					gradient.AddColorStop(0, startColor)
					gradient.AddColorStop(1, endColor)
					ctx.SetStrokeGradient(gradient)

					ctx.BeginPath()
					ctx.MoveTo(x0, y0)
					ctx.LineTo(x1, y1)
					ctx.Stroke()
				}
			}
			ctx.Restore()
		})
		rendered++
	}
	renderedTotal.WithLabelValues(string(TypeLine)).Add(float64(rendered))
}

func (a *Line) MarshalJSON() ([]byte, error) {
	type plainLine Line
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plainLine
	}{TypeLine, (*plainLine)(a)})
}

func (*Line) isAffordance() {}
