package r2geo

import "github.com/golang/geo/r2"

// PolygonQuery helps to answer question whether a point is contained
// inside a polygon, using the even-odd rule.
type PolygonQuery struct {
	points []r2.Point
	bounds r2.Rect
}

// NewPolygonQuery creates a query for the polygon given by its vertices.
// The polygon is implicitly closed.
func NewPolygonQuery(points []r2.Point) PolygonQuery {
	if len(points) == 0 {
		return PolygonQuery{bounds: r2.EmptyRect()}
	}
	return PolygonQuery{points: points, bounds: r2.RectFromPoints(points...)}
}

func (q *PolygonQuery) ContainsPoint(p r2.Point) bool {
	if len(q.points) < 3 || !q.bounds.ContainsPoint(p) {
		return false
	}
	inside := false
	for i, j := 0, len(q.points)-1; i < len(q.points); j, i = i, i+1 {
		a, b := q.points[i], q.points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Sign returns a positive number if points a,b,c are ordered counterclockwise,
// and negative number if they are ordered clockwise.
func Sign(a, b, c r2.Point) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-c.Y)
}

// SignedArea returns the signed area of the polygon: positive if its
// vertices are ordered counterclockwise.
func SignedArea(points []r2.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	area := 0.
	for i := 1; i+1 < len(points); i++ {
		area += Sign(points[0], points[i], points[i+1])
	}
	return area / 2
}
