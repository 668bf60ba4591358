package lib

import "encoding/json"

import "github.com/golang/geo/r2"
import "github.com/pkg/errors"

// ShapeType is the discriminator of persisted shapes.
type ShapeType string

const (
	ShapeTypeCircle    ShapeType = "circle"
	ShapeTypeRectangle ShapeType = "rectangle"
)

// DefaultSampleRate is the default number of points approximating a shape.
const DefaultSampleRate = 100

// Shape is the hit region of a button on the sphere. It is implemented by
// *Circle and *Rectangle only.
type Shape interface {
	Type() ShapeType
	// Base returns the properties common to all shapes.
	Base() *ShapeBase
	// PlanarGeometry returns the outline of the shape in XY coordinates in
	// the range [0,1], split into several paths if it crosses the seam or
	// envelops a pole. The result is shared and must not be modified.
	PlanarGeometry() [][]r2.Point
	// ScaleRelative scales the shape by the given differences of horizontal
	// and vertical scale.
	ScaleRelative(scaleDeltaX, scaleDeltaY float64)
	IsActive(time float64) bool

	isShape()
}

// ActivitySpan is a time span in seconds during which a shape is active.
type ActivitySpan struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

func NewActivitySpan() ActivitySpan {
	return ActivitySpan{From: 0, To: 3600}
}

// IsActive reports whether time lies within the span, bounds included.
func (s ActivitySpan) IsActive(time float64) bool {
	return time >= s.From && time <= s.To
}

func (s *ActivitySpan) UnmarshalJSON(data []byte) error {
	type plainSpan ActivitySpan
	span := plainSpan(NewActivitySpan())
	if err := json.Unmarshal(data, &span); err != nil {
		return err
	}
	*s = ActivitySpan(span)
	return nil
}

// ShapeBase holds the properties shared by all shapes.
type ShapeBase struct {
	// SampleRate is the number of points sampled from the outline.
	SampleRate int `json:"sampleRate"`
	// CutThreshold is the horizontal distance between two points beyond
	// which a seam transition is assumed. Not persisted.
	CutThreshold float64 `json:"-"`
	// CenterX and CenterY are the UV coordinates of the center.
	CenterX       float64        `json:"centerX"`
	CenterY       float64        `json:"centerY"`
	ActivitySpans []ActivitySpan `json:"activitySpans"`
}

func newShapeBase() ShapeBase {
	return ShapeBase{
		SampleRate:    DefaultSampleRate,
		CutThreshold:  DefaultCutThreshold,
		CenterX:       0.5,
		CenterY:       0.5,
		ActivitySpans: []ActivitySpan{},
	}
}

func (s *ShapeBase) Base() *ShapeBase {
	return s
}

// IsActive reports whether the shape takes part in hit testing and rendering
// at the given time. Shapes without spans are always active.
func (s *ShapeBase) IsActive(time float64) bool {
	if len(s.ActivitySpans) == 0 {
		return true
	}
	for _, span := range s.ActivitySpans {
		if span.IsActive(time) {
			return true
		}
	}
	return false
}

// Center returns the center of the shape as a UV point.
func (s *ShapeBase) Center() UVPoint {
	return UVPoint{U: s.CenterX, V: s.CenterY}
}

// memo caches the value computed for the last seen dependency snapshot.
type memo[K comparable, V any] struct {
	key   K
	value V
	valid bool
}

func (m *memo[K, V]) get(key K, compute func() V) V {
	if m.valid && m.key == key {
		return m.value
	}
	m.key = key
	m.value = compute()
	m.valid = true
	return m.value
}

// NewShape returns a shape of the given type with default properties.
func NewShape(shapeType ShapeType) (Shape, error) {
	switch shapeType {
	case ShapeTypeCircle:
		return NewCircle(), nil
	case ShapeTypeRectangle:
		return NewRectangle(), nil
	default:
		return nil, errors.Errorf("unknown shape type: %q", shapeType)
	}
}

type typeTag struct {
	Type string `json:"type"`
}

// UnmarshalShape decodes a shape, dispatching on its "type" field. Fields
// missing from data keep their defaults.
func UnmarshalShape(data []byte) (Shape, error) {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, errors.Wrap(err, "cannot decode shape")
	}
	shape, err := NewShape(ShapeType(tag.Type))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, shape); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s shape", tag.Type)
	}
	return shape, nil
}
