package affordance

import "encoding/json"
import "image/color"
import "testing"

import "github.com/prometheus/client_golang/prometheus"
import "github.com/prometheus/client_golang/prometheus/testutil"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

var (
	primary   = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
	secondary = color.NRGBA{R: 0xff, G: 0x40, B: 0x81, A: 0xff}
)

type testScene struct {
	interaction *canvas.Recorder
	hud         *canvas.Recorder
	layers      Layers
	frame       Frame
	// onscreen is hovered by the cursor, offscreen is to the right of the
	// view.
	onscreen, offscreen *lib.Button
}

func buttonAt(u, v float64) *lib.Button {
	b := lib.NewButton()
	circle := lib.NewCircle()
	circle.CenterX, circle.CenterY = u, v
	circle.Radius = 0.05
	b.Shapes = []lib.Shape{circle}
	return b
}

func newTestScene() *testScene {
	s := &testScene{
		interaction: canvas.NewRecorder(2000, 1000),
		hud:         canvas.NewRecorder(800, 800),
		onscreen:    buttonAt(0.75, 0.5),
		offscreen:   buttonAt(0.92, 0.5),
	}
	s.layers = Layers{
		Interaction: SphereLayer{Surface: s.interaction, Radius: 1000},
		HUD:         s.hud,
	}
	cursor := lib.UVPoint{U: 0.75, V: 0.5}
	camera := lib.NewPerspectiveCamera(90, 1, 0.1, 2000)
	camera.LookAtUV(cursor)
	s.frame = Frame{
		Colors:   Colors{Primary: primary, Secondary: secondary},
		Cursor:   cursor,
		Camera:   camera,
		FOV:      lib.DegToRad(90),
		Viewport: lib.NewViewportSettings(),
	}
	return s
}

func (s *testScene) buttons() []*lib.Button {
	return []*lib.Button{s.onscreen, s.offscreen}
}

func TestShapeRender(t *testing.T) {
	s := newTestScene()
	before := testutil.ToFloat64(renderedTotal.WithLabelValues(string(TypeShape)))
	NewShape().Render(s.buttons(), s.layers, &s.frame)

	fills := s.interaction.Find("fill")
	require.Len(t, fills, 2)
	assert.Equal(t, canvas.WithOpacity(primary, 0.2), fills[0].Color)
	assert.Equal(t, canvas.WithOpacity(primary, 0.1), fills[1].Color)
	strokes := s.interaction.Find("stroke")
	require.Len(t, strokes, 2)
	assert.Equal(t, canvas.WithOpacity(primary, 1), strokes[0].Color)
	assert.Equal(t, 2., strokes[0].LineWidth)
	assert.Equal(t, 2, s.interaction.Count("closePath"))
	assert.Empty(t, s.hud.Ops)
	assert.Equal(t, before+2, testutil.ToFloat64(renderedTotal.WithLabelValues(string(TypeShape))))
}

func TestShapeRenderColorOverrides(t *testing.T) {
	s := newTestScene()
	shape := NewShape()
	override, hover := "#00ff00", "red"
	shape.ColorOverride, shape.ColorOverrideHover = &override, &hover
	shape.Render(s.buttons(), s.layers, &s.frame)

	fills := s.interaction.Find("fill")
	require.Len(t, fills, 2)
	assert.Equal(t, color.NRGBA{R: 0xff, A: canvas.Alpha(0.2)}, fills[0].Color)
	assert.Equal(t, color.NRGBA{G: 0xff, A: canvas.Alpha(0.1)}, fills[1].Color)
}

func TestShapeRenderSplitShapeIsLeftOpen(t *testing.T) {
	s := newTestScene()
	NewShape().Render([]*lib.Button{buttonAt(0, 0.5)}, s.layers, &s.frame)
	assert.Equal(t, 2, s.interaction.Count("fill"))
	assert.Equal(t, 0, s.interaction.Count("closePath"))
}

func TestShapeRenderSkipsInactiveShapes(t *testing.T) {
	s := newTestScene()
	s.onscreen.Shapes[0].Base().ActivitySpans = []lib.ActivitySpan{{From: 5, To: 6}}
	NewShape().Render(s.buttons(), s.layers, &s.frame)
	assert.Equal(t, 1, s.interaction.Count("fill"))
}

func TestCursorRender(t *testing.T) {
	s := newTestScene()
	cursor := NewCursor()
	cursor.Render(s.buttons(), s.layers, &s.frame)
	arcs := s.hud.Find("arc")
	require.Len(t, arcs, 1)
	assert.Equal(t, []float64{400, 400}, arcs[0].Args[:2])
	assert.InDelta(t, 2.4, arcs[0].Args[2], 1e-9)
	strokes := s.hud.Find("stroke")
	require.Len(t, strokes, 1)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, strokes[0].Color)

	s = newTestScene()
	cursor.Render([]*lib.Button{s.offscreen}, s.layers, &s.frame)
	strokes = s.hud.Find("stroke")
	require.Len(t, strokes, 1)
	assert.Equal(t, canvas.Alpha(0.5), strokes[0].Color.A)
}

func TestLineRender(t *testing.T) {
	s := newTestScene()
	line := NewLine()
	line.LineSegments = 10
	line.Render(s.buttons(), s.layers, &s.frame)

	strokes := s.interaction.Find("stroke")
	require.Len(t, strokes, 10)
	for _, stroke := range strokes {
		require.NotNil(t, stroke.Gradient)
		assert.Len(t, stroke.Gradient.Stops, 2)
		assert.Equal(t, 6., stroke.LineWidth)
	}
	first := strokes[0].Gradient.Stops
	assert.Equal(t, uint8(lineAlphaMax), first[0].Color.A)
	assert.Equal(t, secondary.R, first[0].Color.R)
	last := strokes[len(strokes)-1].Gradient.Stops
	assert.Greater(t, first[1].Color.A, last[1].Color.A)
}

func TestLineAlpha(t *testing.T) {
	line := NewLine()
	assert.Equal(t, uint8(128), line.alphaAt(0))
	assert.Equal(t, uint8(64), line.alphaAt(0.5))
	assert.Equal(t, uint8(0), line.alphaAt(1))
	assert.Equal(t, uint8(0), line.alphaAt(2))
	line.Range = 0.5
	assert.Equal(t, uint8(0), line.alphaAt(0.5))
	line.Range = 0
	assert.Equal(t, uint8(0), line.alphaAt(0))
}

func TestHaloRender(t *testing.T) {
	s := newTestScene()
	before := testutil.ToFloat64(renderedTotal.WithLabelValues(string(TypeHalo)))
	NewHalo().Render(s.buttons(), s.layers, &s.frame)

	strokes := s.interaction.Find("stroke")
	require.Len(t, strokes, 1)
	assert.Equal(t, uint8(haloOpacity), strokes[0].Color.A)
	assert.Equal(t, 2., strokes[0].LineWidth)
	assert.Equal(t, lib.DefaultSampleRate, s.interaction.Count("lineTo")+1)
	assert.Equal(t, before+1, testutil.ToFloat64(renderedTotal.WithLabelValues(string(TypeHalo))))

	// The halo reaches into the view: its leftmost point lies left of the
	// view edge at u = 0.875.
	minX := 1.
	for _, op := range append(s.interaction.Find("moveTo"), s.interaction.Find("lineTo")...) {
		if x := op.Args[0] / 2000; x < minX {
			minX = x
		}
	}
	assert.Less(t, minX, 0.875)
	assert.Greater(t, minX, 0.85)
}

func TestEdgeIndicatorRender(t *testing.T) {
	s := newTestScene()
	indicator := NewEdgeIndicator()
	indicator.TraceDraw = true
	indicator.Render(s.buttons(), s.layers, &s.frame)

	arcs := s.hud.Find("arc")
	require.Len(t, arcs, 1)
	assert.InDelta(t, 800, arcs[0].Args[0], 1e-3)
	assert.InDelta(t, 400, arcs[0].Args[1], 1e-3)
	assert.InDelta(t, 40, arcs[0].Args[2], 1e-9)
	fills := s.hud.Find("fill")
	require.Len(t, fills, 1)
	assert.Equal(t, canvas.WithOpacity(secondary, 0.8), fills[0].Color)
	assert.Equal(t, 1, s.interaction.Count("stroke"))
}

func TestOffscreenAffordancesIgnoreVisibleButtons(t *testing.T) {
	s := newTestScene()
	buttons := []*lib.Button{s.onscreen}
	for _, a := range []Affordance{NewLine(), NewHalo(), NewEdgeIndicator()} {
		a.Render(buttons, s.layers, &s.frame)
	}
	assert.Empty(t, s.interaction.Ops)
	assert.Empty(t, s.hud.Ops)
}

func TestRenderer(t *testing.T) {
	s := newTestScene()
	halo := NewHalo()
	halo.Enabled = false
	renderer := NewRenderer([]Affordance{NewShape(), halo, NewCursor()}, s.layers, lib.NewGeometryCache(16))
	frames := testutil.ToFloat64(framesTotal)

	renderer.RenderFrame(s.buttons(), s.frame)
	assert.Equal(t, 1, s.interaction.Clears)
	assert.Equal(t, 1, s.hud.Clears)
	assert.Equal(t, 2, s.interaction.Count("fill"))
	assert.Equal(t, 2, s.interaction.Count("stroke"))
	assert.Equal(t, 1, s.hud.Count("arc"))
	assert.Equal(t, frames+1, testutil.ToFloat64(framesTotal))

	renderer.RenderFrame(s.buttons(), s.frame)
	assert.Equal(t, 2, s.interaction.Clears)
	assert.Equal(t, 2, s.interaction.Count("fill"))
	assert.Nil(t, s.frame.Cache)
}

func TestRendererHidesHUD(t *testing.T) {
	s := newTestScene()
	s.frame.Viewport.ShowHud = false
	renderer := NewRenderer([]Affordance{NewShape(), NewCursor(), NewEdgeIndicator()}, s.layers, nil)

	renderer.RenderFrame(s.buttons(), s.frame)
	assert.Equal(t, 1, s.hud.Clears)
	assert.Empty(t, s.hud.Ops)
	assert.Equal(t, 2, s.interaction.Count("fill"))

	s.frame.Viewport.ShowHud = true
	renderer.RenderFrame(s.buttons(), s.frame)
	assert.Equal(t, 2, s.hud.Count("arc"))
}

func TestRendererFrustumMiss(t *testing.T) {
	t.Cleanup(func() { lib.Debug = false })
	for _, debug := range []bool{false, true} {
		lib.Debug = debug
		s := newTestScene()
		// Cursor and button both lie behind the camera, so the path between
		// them never enters the view.
		s.frame.Cursor = lib.UVPoint{U: 0.2, V: 0.5}
		behind := buttonAt(0.3, 0.5)
		renderer := NewRenderer([]Affordance{NewHalo(), NewEdgeIndicator()}, s.layers, nil)
		haloMisses := testutil.ToFloat64(missesTotal.WithLabelValues(string(TypeHalo)))
		indicatorMisses := testutil.ToFloat64(missesTotal.WithLabelValues(string(TypeEdgeIndicator)))

		require.NotPanics(t, func() {
			renderer.RenderFrame([]*lib.Button{behind}, s.frame)
		})
		assert.Empty(t, s.interaction.Ops)
		assert.Empty(t, s.hud.Ops)
		assert.Equal(t, haloMisses+1, testutil.ToFloat64(missesTotal.WithLabelValues(string(TypeHalo))))
		assert.Equal(t, indicatorMisses+1, testutil.ToFloat64(missesTotal.WithLabelValues(string(TypeEdgeIndicator))))
	}
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))
	assert.Error(t, RegisterMetrics(reg))
}

func TestUnmarshal(t *testing.T) {
	a, err := Unmarshal([]byte(`{"type":"halo","radiusFactor":0.5,"enabled":false}`))
	require.NoError(t, err)
	halo, ok := a.(*Halo)
	require.True(t, ok)
	assert.Equal(t, 0.5, halo.RadiusFactor)
	assert.False(t, halo.Enabled)
	assert.Equal(t, "Halos", halo.Name)
	assert.Equal(t, 100, halo.TraceSegments)
	assert.Equal(t, lib.DefaultCutThreshold, halo.CutThreshold)

	a, err = Unmarshal([]byte(`{"type":"shape","colorOverride":"#123456"}`))
	require.NoError(t, err)
	shape := a.(*Shape)
	require.NotNil(t, shape.ColorOverride)
	assert.Equal(t, "#123456", *shape.ColorOverride)
	assert.Nil(t, shape.ColorOverrideHover)
}

func TestUnmarshalUnknownType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"sparkle"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkle")
}

func TestMarshal(t *testing.T) {
	for _, typ := range []Type{TypeShape, TypeCursor, TypeLine, TypeHalo, TypeEdgeIndicator} {
		a, err := New(typ)
		require.NoError(t, err)
		data, err := json.Marshal(a)
		require.NoError(t, err)
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Equal(t, string(typ), fields["type"])
		assert.Equal(t, true, fields["enabled"])
		assert.NotContains(t, fields, "CutThreshold")

		decoded, err := Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
	}
}
