package lib

import "encoding/json"
import "fmt"
import "sync/atomic"

import "github.com/pkg/errors"

import "github.com/pwiecz/vr_affordances/lib/r2geo"

var buttonCounter atomic.Int64

// Button is an interactive element of a scene. It is hit when the cursor is
// over any of its active shapes, and executes its action when clicked.
type Button struct {
	id int64

	Name   string
	Shapes []Shape
	Action Action
}

// NewButton creates a button with a new identity, a single default circle
// and a change-scene action.
func NewButton() *Button {
	id := buttonCounter.Add(1) - 1
	return &Button{
		id:     id,
		Name:   fmt.Sprintf("Button %d", id+1),
		Shapes: []Shape{NewCircle()},
		Action: NewChangeSceneAction(),
	}
}

// ID is the identity of the button during the lifetime of the process.
// It is not persisted, lookups across serialization use Name.
func (b *Button) ID() int64 {
	return b.id
}

// ActiveShapes returns the shapes active at the given time.
func (b *Button) ActiveShapes(time float64) []Shape {
	var active []Shape
	for _, shape := range b.Shapes {
		if shape.IsActive(time) {
			active = append(active, shape)
		}
	}
	return active
}

// Hits tests whether point lies inside any sub-path of any shape active at
// the given time.
func (b *Button) Hits(point UVPoint, time float64) bool {
	p := UVToXY(point)
	for _, shape := range b.ActiveShapes(time) {
		for _, path := range shape.PlanarGeometry() {
			q := r2geo.NewPolygonQuery(path)
			if q.ContainsPoint(p) {
				return true
			}
		}
	}
	return false
}

// Center returns the average center of the shapes active at the given time.
// It returns false if no shape is active.
func (b *Button) Center(time float64) (UVPoint, bool) {
	active := b.ActiveShapes(time)
	if len(active) == 0 {
		return UVPoint{}, false
	}
	var u, v float64
	for _, shape := range active {
		u += shape.Base().CenterX
		v += shape.Base().CenterY
	}
	n := float64(len(active))
	return UVPoint{U: u / n, V: v / n}, true
}

type buttonJSON struct {
	Name   string            `json:"name"`
	Shapes []json.RawMessage `json:"shapes"`
	Action json.RawMessage   `json:"action,omitempty"`
}

func (b *Button) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string  `json:"name"`
		Shapes []Shape `json:"shapes"`
		Action Action  `json:"action,omitempty"`
	}{b.Name, b.Shapes, b.Action})
}

// UnmarshalJSON decodes the name, shapes and action of the button. Missing
// shapes or action keep the current ones.
func (b *Button) UnmarshalJSON(data []byte) error {
	var raw buttonJSON
	raw.Name = b.Name
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Name = raw.Name
	if raw.Shapes != nil {
		shapes := make([]Shape, 0, len(raw.Shapes))
		for i, rawShape := range raw.Shapes {
			shape, err := UnmarshalShape(rawShape)
			if err != nil {
				return errors.Wrapf(err, "shape %d", i)
			}
			shapes = append(shapes, shape)
		}
		b.Shapes = shapes
	}
	if len(raw.Action) > 0 && string(raw.Action) != "null" {
		action, err := UnmarshalAction(raw.Action)
		if err != nil {
			return errors.Wrap(err, "action")
		}
		b.Action = action
	}
	return nil
}

// UnmarshalButton decodes a button, giving it a new identity.
func UnmarshalButton(data []byte) (*Button, error) {
	button := NewButton()
	if err := json.Unmarshal(data, button); err != nil {
		return nil, errors.Wrap(err, "cannot decode button")
	}
	return button, nil
}
