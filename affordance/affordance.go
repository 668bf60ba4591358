// Package affordance renders visual hints about the interactive elements of
// a scene: their shapes, the cursor, and indicators pointing at elements
// outside of the view.
package affordance

import "encoding/json"
import "image/color"

import "github.com/golang/geo/r2"
import "github.com/golang/glog"
import "github.com/pkg/errors"

import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// Type is the discriminator of persisted affordances.
type Type string

const (
	TypeShape         Type = "shape"
	TypeCursor        Type = "cursor"
	TypeLine          Type = "line"
	TypeHalo          Type = "halo"
	TypeEdgeIndicator Type = "edge-indicator"
)

// Affordance is a rendering policy. It is implemented by *Shape, *Cursor,
// *Line, *Halo and *EdgeIndicator.
type Affordance interface {
	Type() Type
	// Properties returns the properties common to all affordances.
	Properties() *Base
	// Render draws the affordance for the buttons of the current scene.
	// It does not modify the buttons.
	Render(buttons []*lib.Button, layers Layers, frame *Frame)

	isAffordance()
}

// Base holds the properties shared by all affordances.
type Base struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func (b *Base) Properties() *Base {
	return b
}

// SphereLayer is a surface mapped onto the inside of a sphere around the
// viewer. Its X and Y coordinates correspond to U and V.
type SphereLayer struct {
	canvas.Surface
	Radius float64
}

// Layers are the views affordances can render to.
type Layers struct {
	// Interaction is the spherical interaction layer.
	Interaction SphereLayer
	// Overlay is the container of 3D elements overlaid over the video. It is
	// owned by the rendering engine.
	Overlay interface{}
	// HUD is the layer on top of everything.
	HUD canvas.Surface
}

type Colors struct {
	Primary   color.NRGBA
	Secondary color.NRGBA
}

// Frame is the snapshot of the viewer state a frame is rendered from.
type Frame struct {
	Colors Colors
	Cursor lib.UVPoint
	Camera lib.Camera
	// FOV is the current vertical field of view in radians.
	FOV      float64
	Viewport *lib.ViewportSettings
	// CurrentTime is the current time in the video in seconds.
	CurrentTime float64
	// Cache, if not nil, keeps outlines between frames.
	Cache *lib.GeometryCache
}

type buttonShapes struct {
	button *lib.Button
	shapes []lib.Shape
}

// buttonsWithActiveShapes returns the buttons having any active shapes.
func buttonsWithActiveShapes(buttons []*lib.Button, time float64) []buttonShapes {
	var result []buttonShapes
	for _, b := range buttons {
		if shapes := b.ActiveShapes(time); len(shapes) > 0 {
			result = append(result, buttonShapes{button: b, shapes: shapes})
		}
	}
	return result
}

// offscreen reports whether the UV point is outside of the view.
func offscreen(frustum *lib.Frustum, p lib.UVPoint, radius float64) bool {
	return !frustum.ContainsPoint(lib.ToWorldPosition(p, radius))
}

func logMiss(t Type, button *lib.Button) {
	missesTotal.WithLabelValues(string(t)).Inc()
	if lib.Debug {
		glog.V(1).Infof("%s: no intersection found for button %q", t, button.Name)
	}
}

// resolveColor returns the parsed override, or fallback if there is none.
func resolveColor(override *string, fallback color.NRGBA) color.NRGBA {
	if override == nil {
		return fallback
	}
	c, err := canvas.ParseColor(*override)
	if err != nil {
		glog.Warningf("Ignoring color override: %v", err)
		return fallback
	}
	return c
}

// tracePath adds the planar path scaled to the surface size to the current
// path of ctx.
func tracePath(ctx canvas.Context, path []r2.Point, width, height float64) {
	for i, p := range path {
		if i == 0 {
			ctx.MoveTo(p.X*width, p.Y*height)
		} else {
			ctx.LineTo(p.X*width, p.Y*height)
		}
	}
}

// New returns an affordance of the given type with default properties.
func New(t Type) (Affordance, error) {
	switch t {
	case TypeShape:
		return NewShape(), nil
	case TypeCursor:
		return NewCursor(), nil
	case TypeLine:
		return NewLine(), nil
	case TypeHalo:
		return NewHalo(), nil
	case TypeEdgeIndicator:
		return NewEdgeIndicator(), nil
	default:
		return nil, errors.Errorf("unknown affordance type: %q", t)
	}
}

// Unmarshal decodes an affordance, dispatching on its "type" field. Fields
// missing from data keep their defaults.
func Unmarshal(data []byte) (Affordance, error) {
	var tag struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, errors.Wrap(err, "cannot decode affordance")
	}
	a, err := New(tag.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s affordance", tag.Type)
	}
	return a, nil
}
