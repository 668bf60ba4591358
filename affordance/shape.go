package affordance

import "encoding/json"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// Shape displays the shapes of the buttons on the interaction layer.
type Shape struct {
	Base
	FillOpacityDefault    float64 `json:"fillOpacityDefault"`
	FillOpacityHover      float64 `json:"fillOpacityHover"`
	BorderThicknessFactor float64 `json:"borderThicknessFactor"`
	BorderOpacityDefault  float64 `json:"borderOpacityDefault"`
	BorderOpacityHover    float64 `json:"borderOpacityHover"`
	// ColorOverride replaces the primary color if set.
	ColorOverride *string `json:"colorOverride"`
	// ColorOverrideHover is used for hovered buttons if set.
	ColorOverrideHover *string `json:"colorOverrideHover"`
}

func NewShape() *Shape {
	return &Shape{
		Base:                  Base{Name: "Shapes", Enabled: true},
		FillOpacityDefault:    0.10,
		FillOpacityHover:      0.20,
		BorderThicknessFactor: 0.001,
		BorderOpacityDefault:  0.5,
		BorderOpacityHover:    1,
	}
}

func (*Shape) Type() Type { return TypeShape }

func (a *Shape) Render(buttons []*lib.Button, layers Layers, frame *Frame) {
	current := buttonsWithActiveShapes(buttons, frame.CurrentTime)
	colorNonHover := resolveColor(a.ColorOverride, frame.Colors.Primary)
	colorHover := resolveColor(a.ColorOverrideHover, colorNonHover)

	layers.Interaction.Draw(func(ctx canvas.Context, width, height float64) {
		for _, data := range current {
			hit := data.button.Hits(frame.Cursor, frame.CurrentTime)
			c, borderOpacity, fillOpacity := colorNonHover, a.BorderOpacityDefault, a.FillOpacityDefault
			if hit {
				c, borderOpacity, fillOpacity = colorHover, a.BorderOpacityHover, a.FillOpacityHover
			}
			for _, shape := range data.shapes {
				paths := shape.PlanarGeometry()
				for _, path := range paths {
					ctx.Save()
					ctx.BeginPath()
					ctx.SetLineWidth(a.BorderThicknessFactor * width)
					ctx.SetStrokeColor(canvas.WithOpacity(c, borderOpacity))
					ctx.SetFillColor(canvas.WithOpacity(c, fillOpacity))
					tracePath(ctx, path, width, height)
					// Parts of a split shape are left open.
					if len(paths) == 1 {
						ctx.ClosePath()
					}
					ctx.Stroke()
					ctx.Fill()
					ctx.Restore()
				}
			}
		}
	})
	renderedTotal.WithLabelValues(string(TypeShape)).Add(float64(len(current)))
}

func (a *Shape) MarshalJSON() ([]byte, error) {
	type plainShape Shape
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plainShape
	}{TypeShape, (*plainShape)(a)})
}

func (*Shape) isAffordance() {}
