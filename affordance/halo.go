package affordance

import "encoding/json"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// haloOpacity is the opacity of the halo stroke.
const haloOpacity = 0x88

// Halo renders circles around off-screen buttons that reach just into the
// view.
type Halo struct {
	Base
	CutThreshold    float64 `json:"-"`
	LineWidthFactor float64 `json:"lineWidthFactor"`
	// RadiusFactor is added to the distance between button and view edge,
	// in radians.
	RadiusFactor float64 `json:"radiusFactor"`
	SampleRate   int     `json:"sampleRate"`
	// TraceSegments is the number of segments of the path used to find the
	// view edge.
	TraceSegments int `json:"traceSegments"`
}

func NewHalo() *Halo {
	return &Halo{
		Base:            Base{Name: "Halos", Enabled: true},
		CutThreshold:    lib.DefaultCutThreshold,
		LineWidthFactor: 0.001,
		RadiusFactor:    0.01,
		SampleRate:      lib.DefaultSampleRate,
		TraceSegments:   100,
	}
}

func (*Halo) Type() Type { return TypeHalo }

func (a *Halo) Render(buttons []*lib.Button, layers Layers, frame *Frame) {
	current := buttonsWithActiveShapes(buttons, frame.CurrentTime)
	frustum := lib.MakeFrustum(frame.Camera)
	cursorLatLon := lib.UVToLatLon(frame.Cursor)
	rendered := 0
	for _, data := range current {
		center, ok := data.button.Center(frame.CurrentTime)
		if !ok || !offscreen(&frustum, center, layers.Interaction.Radius) {
			continue
		}
		btnLatLon := lib.UVToLatLon(center)

		path := frame.Cache.Path(cursorLatLon, btnLatLon, a.TraceSegments, a.CutThreshold)
		intersection, ok := lib.IntersectPathWithFrustum(frustum, path, layers.Interaction.Radius)
		if !ok {
			logMiss(TypeHalo, data.button)
			continue
		}
		intersectionLatLon := lib.PositiveToSigned(lib.WorldToLatLon(intersection))
		distance := btnLatLon.DistanceTo(intersectionLatLon, 1)

		circle := lib.CircleSpec{CX: center.U, CY: center.V, R: distance + a.RadiusFactor}
		paths := frame.Cache.Circle(circle, a.SampleRate, a.CutThreshold)
		stroke := frame.Colors.Secondary
		stroke.A = haloOpacity
		layers.Interaction.Draw(func(ctx canvas.Context, width, height float64) {
			for _, path := range paths {
				ctx.Save()
				ctx.BeginPath()
				ctx.SetStrokeColor(stroke)
				ctx.SetLineWidth(width * a.LineWidthFactor)
				tracePath(ctx, path, width, height)
				ctx.Stroke()
				ctx.Restore()
			}
		})
		rendered++
	}
	renderedTotal.WithLabelValues(string(TypeHalo)).Add(float64(rendered))
}

func (a *Halo) MarshalJSON() ([]byte, error) {
	type plainHalo Halo
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plainHalo
	}{TypeHalo, (*plainHalo)(a)})
}

func (*Halo) isAffordance() {}
