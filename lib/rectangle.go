package lib

import "encoding/json"
import "math"

import "github.com/golang/geo/r2"

// Rectangle is a rectangular shape, rotated by Angle degrees around its center.
type Rectangle struct {
	ShapeBase
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Angle in degrees.
	Angle float64 `json:"angle"`

	planePoints memo[rectangleKey, [][]r2.Point]
}

type rectangleKey struct {
	centerX, centerY     float64
	width, height, angle float64
	samples              int
	threshold            float64
}

func NewRectangle() *Rectangle {
	return &Rectangle{ShapeBase: newShapeBase(), Width: 0.1, Height: 0.1}
}

func (r *Rectangle) Type() ShapeType { return ShapeTypeRectangle }

func (r *Rectangle) PlanarGeometry() [][]r2.Point {
	key := rectangleKey{
		centerX:   r.CenterX,
		centerY:   r.CenterY,
		width:     r.Width,
		height:    r.Height,
		angle:     r.Angle,
		samples:   r.SampleRate,
		threshold: r.CutThreshold,
	}
	return r.planePoints.get(key, func() [][]r2.Point {
		return planePointsRectangle(key)
	})
}

func planePointsRectangle(k rectangleKey) [][]r2.Point {
	hw := k.width / 2
	hh := k.height / 2
	center := UVToLatLon(UVPoint{U: k.centerX, V: k.centerY})
	angle := math.Atan2(k.width, k.height)
	// hh is added twice, not squared. Persisted outlines depend on it.
	distance := math.Sqrt(hw*hw + hh + hh)
	cornerPoint := func(rads float64) LatLon {
		return center.DestinationPoint(distance, RadToDeg(rads)+k.angle, 1)
	}
	c1 := cornerPoint(-angle)
	c2 := cornerPoint(angle)
	c3 := cornerPoint(-angle - math.Pi)
	c4 := cornerPoint(angle + math.Pi)
	sides := [4][2]LatLon{{c1, c2}, {c2, c3}, {c3, c4}, {c4, c1}}

	stepsPerSide := int(math.Floor(float64(k.samples)/4 + 0.5))
	if stepsPerSide < 0 {
		stepsPerSide = 0
	}
	points := make([]r2.Point, 0, 4*(stepsPerSide+1))
	for _, side := range sides {
		start, end := side[0], side[1]
		current := start
		points = append(points, UVToXY(LatLonToUV(current)))
		if stepsPerSide == 0 {
			continue
		}
		step := start.DistanceTo(end, 1) / float64(stepsPerSide)
		for i := 0; i < stepsPerSide; i++ {
			current = current.DestinationPoint(step, current.BearingTo(end), 1)
			points = append(points, UVToXY(LatLonToUV(current)))
		}
	}

	return SplitAndCap(points, k.threshold)
}

func (r *Rectangle) ScaleRelative(scaleDeltaX, scaleDeltaY float64) {
	r.Width *= 1 + scaleDeltaX
	r.Height *= 1 - scaleDeltaY
}

func (r *Rectangle) MarshalJSON() ([]byte, error) {
	type plainRectangle Rectangle
	return json.Marshal(struct {
		Type ShapeType `json:"type"`
		*plainRectangle
	}{ShapeTypeRectangle, (*plainRectangle)(r)})
}

func (*Rectangle) isShape() {}
