package lib

import "math"

import "github.com/go-gl/mathgl/mgl64"
import "github.com/golang/geo/r2"
import "github.com/golang/geo/r3"

// FrustumEpsilon is the tolerance used when checking whether a point lies on
// the inner side of a frustum plane.
const FrustumEpsilon = 1e-5

// Camera provides the matrices describing a view.
type Camera interface {
	ProjectionMatrix() mgl64.Mat4
	// MatrixWorldInverse transforms world coordinates to camera coordinates.
	MatrixWorldInverse() mgl64.Mat4
}

// PerspectiveCamera is a camera positioned in the center of the viewer
// sphere looking at Target.
type PerspectiveCamera struct {
	// FOV is the vertical field of view in degrees.
	FOV       float64
	Aspect    float64
	Near, Far float64
	Position  r3.Vector
	Target    r3.Vector
	Up        r3.Vector
}

// NewPerspectiveCamera creates a camera at the origin looking along the
// negative Z axis.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: r3.Vector{X: 0, Y: 0, Z: -1},
		Up:     r3.Vector{X: 0, Y: 1, Z: 0},
	}
}

// Aspect returns width/height, or 1 if height is 0.
func Aspect(width, height float64) float64 {
	if height == 0 {
		return 1
	}
	return width / height
}

// LookAtUV points the camera at the given point of the viewer sphere.
func (c *PerspectiveCamera) LookAtUV(p UVPoint) {
	c.Target = c.Position.Add(ToWorldPosition(p, 1))
}

// Direction returns the normalized viewing direction.
func (c *PerspectiveCamera) Direction() r3.Vector {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) MatrixWorldInverse() mgl64.Mat4 {
	up := c.Up
	if c.Direction().Cross(up).Norm() < 1e-9 {
		// Looking straight at a pole.
		up = r3.Vector{X: 0, Y: 0, Z: -1}
	}
	return mgl64.LookAtV(toVec3(c.Position), toVec3(c.Target), toVec3(up))
}

func toVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// Plane is given by the equation Normal·p + Constant = 0.
type Plane struct {
	Normal   r3.Vector
	Constant float64
}

func planeFromVec4(v mgl64.Vec4) Plane {
	p := Plane{Normal: r3.Vector{X: v[0], Y: v[1], Z: v[2]}, Constant: v[3]}
	norm := p.Normal.Norm()
	if norm == 0 {
		return p
	}
	return Plane{Normal: p.Normal.Mul(1 / norm), Constant: p.Constant / norm}
}

// DistanceToPoint returns the signed distance of p from the plane, positive
// on the side the normal points to.
func (p Plane) DistanceToPoint(point r3.Vector) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// IntersectSegment returns the intersection of the plane with the segment
// from start to end.
func (p Plane) IntersectSegment(start, end r3.Vector) (r3.Vector, bool) {
	direction := end.Sub(start)
	denominator := p.Normal.Dot(direction)
	if denominator == 0 {
		if p.DistanceToPoint(start) == 0 {
			return start, true
		}
		return r3.Vector{}, false
	}
	t := -(start.Dot(p.Normal) + p.Constant) / denominator
	if t < 0 || t > 1 {
		return r3.Vector{}, false
	}
	return start.Add(direction.Mul(t)), true
}

// Frustum is a view frustum. The planes are ordered: four side planes, far,
// near. Normals point inwards.
type Frustum struct {
	Planes [6]Plane
}

// MakeFrustum calculates the frustum of the camera from its combined
// projection and inverse world matrix.
func MakeFrustum(camera Camera) Frustum {
	m := camera.ProjectionMatrix().Mul4(camera.MatrixWorldInverse())
	x, y, z, w := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return Frustum{Planes: [6]Plane{
		planeFromVec4(w.Sub(x)),
		planeFromVec4(w.Add(x)),
		planeFromVec4(w.Add(y)),
		planeFromVec4(w.Sub(y)),
		planeFromVec4(w.Sub(z)),
		planeFromVec4(w.Add(z)),
	}}
}

// SidePlanes returns the planes without far and near.
func (f *Frustum) SidePlanes() []Plane {
	return f.Planes[:4]
}

func (f *Frustum) ContainsPoint(p r3.Vector) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectPathWithFrustum maps the path onto the sphere of the given radius
// and finds a point where it crosses one of the side planes within the side
// extent of the frustum. It returns false if there is no such point.
func IntersectPathWithFrustum(frustum Frustum, path [][]r2.Point, radius float64) (r3.Vector, bool) {
	sidePlanes := frustum.SidePlanes()
	var candidates []r3.Vector
	for _, segment := range path {
		world := make([]r3.Vector, 0, len(segment))
		for _, p := range segment {
			world = append(world, ToWorldPosition(XYToUV(p), radius))
		}
		for _, plane := range sidePlanes {
			for i := 0; i+1 < len(world); i++ {
				if sect, ok := plane.IntersectSegment(world[i], world[i+1]); ok {
					candidates = append(candidates, sect)
					break
				}
			}
		}
	}
	// The planes are unbounded, so only keep intersections inside all of
	// them.
	for _, candidate := range candidates {
		inside := true
		for _, plane := range sidePlanes {
			if plane.DistanceToPoint(candidate) < -FrustumEpsilon {
				inside = false
				break
			}
		}
		if inside {
			return candidate, true
		}
	}
	return r3.Vector{}, false
}

// ToScreenPosition projects point onto a screen of the given size. The
// origin is in the top left corner.
func ToScreenPosition(point r3.Vector, camera Camera, width, height float64) r2.Point {
	ndc := project(point, camera)
	halfWidth, halfHeight := width/2, height/2
	return r2.Point{
		X: ndc.X*halfWidth + halfWidth,
		Y: -ndc.Y*halfHeight + halfHeight,
	}
}

// project transforms point into normalized device coordinates.
func project(point r3.Vector, camera Camera) r3.Vector {
	m := camera.ProjectionMatrix().Mul4(camera.MatrixWorldInverse())
	v := m.Mul4x1(toVec3(point).Vec4(1))
	w := v[3]
	if w == 0 || math.IsNaN(w) {
		return r3.Vector{}
	}
	return fromVec3(v.Vec3().Mul(1 / w))
}
