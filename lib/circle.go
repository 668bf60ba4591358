package lib

import "encoding/json"

import "github.com/golang/geo/r2"

// CircleSpec is a geodesic circle around (CX, CY) in UV coordinates with
// radius R in radians on the unit sphere.
type CircleSpec struct {
	CX, CY, R float64
}

// PlanePointsCircle samples a geodesic circle and returns its planar outline,
// split at the seam and capped at the poles. A circle centered exactly on a
// pole has no defined bearings and yields a single uncapped outline.
func PlanePointsCircle(circle CircleSpec, samples int, threshold float64) [][]r2.Point {
	if samples <= 0 {
		return nil
	}
	center := UVToLatLon(UVPoint{U: circle.CX, V: circle.CY})
	step := 360 / float64(samples)
	points := make([]r2.Point, 0, samples+1)
	for i := 0; i < samples; i++ {
		point := center.DestinationPoint(circle.R, float64(i)*step, 1)
		points = append(points, UVToXY(LatLonToUV(point)))
	}

	return SplitAndCap(points, threshold)
}

// Circle is a circular shape.
type Circle struct {
	ShapeBase
	// Radius in radians on the unit sphere.
	Radius float64 `json:"radius"`

	planePoints memo[circleKey, [][]r2.Point]
}

type circleKey struct {
	spec      CircleSpec
	samples   int
	threshold float64
}

func NewCircle() *Circle {
	return &Circle{ShapeBase: newShapeBase(), Radius: 0.1}
}

func (c *Circle) Type() ShapeType { return ShapeTypeCircle }

func (c *Circle) PlanarGeometry() [][]r2.Point {
	key := circleKey{
		spec:      CircleSpec{CX: c.CenterX, CY: c.CenterY, R: c.Radius},
		samples:   c.SampleRate,
		threshold: c.CutThreshold,
	}
	return c.planePoints.get(key, func() [][]r2.Point {
		return PlanePointsCircle(key.spec, key.samples, key.threshold)
	})
}

func (c *Circle) ScaleRelative(scaleDeltaX, scaleDeltaY float64) {
	c.Radius *= 1 + (scaleDeltaX - scaleDeltaY)
}

func (c *Circle) MarshalJSON() ([]byte, error) {
	type plainCircle Circle
	return json.Marshal(struct {
		Type ShapeType `json:"type"`
		*plainCircle
	}{ShapeTypeCircle, (*plainCircle)(c)})
}

func (*Circle) isShape() {}
