package affordance

import "encoding/json"
import "image/color"
import "math"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// EdgeIndicator renders circles at the edge of the view in the direction of
// off-screen buttons. Their radius and opacity depend on the distance of the
// button from the cursor.
type EdgeIndicator struct {
	Base
	CutThreshold float64 `json:"-"`
	// RadiusFactor is the radius as a fraction of the HUD width.
	RadiusFactor float64 `json:"radiusFactor"`
	// RadiusDynamicityFactor scales the radius growth with distance.
	RadiusDynamicityFactor float64 `json:"radiusDynamicityFactor"`
	OpacityMax             float64 `json:"opacityMax"`
	OpacityMin             float64 `json:"opacityMin"`
	TraceSegments          int     `json:"traceSegments"`
	// TraceDraw draws the path used to find the edge point.
	TraceDraw bool `json:"traceDraw"`
}

func NewEdgeIndicator() *EdgeIndicator {
	return &EdgeIndicator{
		Base:                   Base{Name: "Edge Indicators", Enabled: true},
		CutThreshold:           lib.DefaultCutThreshold,
		RadiusFactor:           0.05,
		RadiusDynamicityFactor: 0,
		OpacityMax:             0.8,
		OpacityMin:             0.8,
		TraceSegments:          100,
	}
}

func (*EdgeIndicator) Type() Type { return TypeEdgeIndicator }

func (a *EdgeIndicator) Render(buttons []*lib.Button, layers Layers, frame *Frame) {
	current := buttonsWithActiveShapes(buttons, frame.CurrentTime)
	frustum := lib.MakeFrustum(frame.Camera)
	cursorLatLon := lib.UVToLatLon(frame.Cursor)
	rendered := 0
	for _, data := range current {
		center, ok := data.button.Center(frame.CurrentTime)
		if !ok {
			continue
		}
		btnLatLon := lib.UVToLatLon(center)
		// Distance normalized to [0,1].
		distance := btnLatLon.DistanceTo(cursorLatLon, 1) / math.Pi

		if !offscreen(&frustum, center, layers.Interaction.Radius) {
			continue
		}
		path := frame.Cache.Path(cursorLatLon, btnLatLon, a.TraceSegments, a.CutThreshold)
		if a.TraceDraw {
			layers.Interaction.Draw(func(ctx canvas.Context, width, height float64) {
				for _, seg := range path {
					ctx.BeginPath()
					tracePath(ctx, seg, width, height)
					ctx.SetLineWidth(2)
					ctx.SetStrokeColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
					ctx.Stroke()
				}
			})
		}

		intersection, ok := lib.IntersectPathWithFrustum(frustum, path, layers.Interaction.Radius)
		if !ok {
			logMiss(TypeEdgeIndicator, data.button)
			continue
		}
		layers.HUD.Draw(func(ctx canvas.Context, width, height float64) {
			position := lib.ToScreenPosition(intersection, frame.Camera, width, height)
			radius := (1 + distance*a.RadiusDynamicityFactor) * (a.RadiusFactor * width)
			opacity := (a.OpacityMax-a.OpacityMin)*(1-distance) + a.OpacityMin

			ctx.BeginPath()
			ctx.Arc(position.X, position.Y, radius, 0, 2*math.Pi)
			ctx.SetFillColor(canvas.WithOpacity(frame.Colors.Secondary, opacity))
			ctx.Fill()
		})
		rendered++
	}
	renderedTotal.WithLabelValues(string(TypeEdgeIndicator)).Add(float64(rendered))
}

func (a *EdgeIndicator) MarshalJSON() ([]byte, error) {
	type plainEdgeIndicator EdgeIndicator
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plainEdgeIndicator
	}{TypeEdgeIndicator, (*plainEdgeIndicator)(a)})
}

func (*EdgeIndicator) isAffordance() {}
