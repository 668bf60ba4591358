package affordance

import "encoding/json"
import "image/color"
import "math"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// Cursor renders a reticle in the center of the HUD, highlighted while a
// button is hovered.
type Cursor struct {
	Base
	// RadiusFactor is the radius as a fraction of the HUD width.
	RadiusFactor float64 `json:"radiusFactor"`
	// LineWidthFactor is the line width as a fraction of the HUD width.
	LineWidthFactor    float64 `json:"lineWidthFactor"`
	OpacityDefault     float64 `json:"opacityDefault"`
	OpacityHover       float64 `json:"opacityHover"`
	ColorOverride      *string `json:"colorOverride"`
	ColorOverrideHover *string `json:"colorOverrideHover"`
}

func NewCursor() *Cursor {
	return &Cursor{
		Base:            Base{Name: "Cursor", Enabled: true},
		RadiusFactor:    0.003,
		LineWidthFactor: 0.003,
		OpacityDefault:  0.5,
		OpacityHover:    1.0,
	}
}

func (*Cursor) Type() Type { return TypeCursor }

func (a *Cursor) Render(buttons []*lib.Button, layers Layers, frame *Frame) {
	hit := false
	for _, b := range buttons {
		if b.Hits(frame.Cursor, frame.CurrentTime) {
			hit = true
			break
		}
	}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorNonHover := resolveColor(a.ColorOverride, white)
	colorHover := resolveColor(a.ColorOverrideHover, colorNonHover)
	style := canvas.WithOpacity(colorNonHover, a.OpacityDefault)
	if hit {
		style = canvas.WithOpacity(colorHover, a.OpacityHover)
	}

	hudWidth := float64(layers.HUD.Width())
	radius := hudWidth * a.RadiusFactor
	lineWidth := hudWidth * a.LineWidthFactor
	layers.HUD.Draw(func(ctx canvas.Context, width, height float64) {
		ctx.BeginPath()
		ctx.Arc(width/2, height/2, radius, 0, 2*math.Pi)
		ctx.SetLineWidth(lineWidth)
		ctx.SetStrokeColor(style)
		ctx.Stroke()
	})
	renderedTotal.WithLabelValues(string(TypeCursor)).Inc()
}

func (a *Cursor) MarshalJSON() ([]byte, error) {
	type plainCursor Cursor
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plainCursor
	}{TypeCursor, (*plainCursor)(a)})
}

func (*Cursor) isAffordance() {}
