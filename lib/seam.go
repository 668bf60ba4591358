package lib

import "math"

import "github.com/golang/geo/r2"
import "golang.org/x/exp/slices"

// DefaultCutThreshold is the horizontal distance between two consecutive
// points beyond which a seam transition is assumed.
const DefaultCutThreshold = 0.95

// LonEdgeIntersection calculates the virtual intersection (y coordinate) of
// the line between two points crossing the seam with the left edge (x = 0).
// The point order is irrelevant.
func LonEdgeIntersection(p1, p2 r2.Point) float64 {
	if p1.X == 0 {
		return p1.Y
	}
	if p2.X == 0 {
		return p2.Y
	}
	l, r := p1, p2
	if p1.X > p2.X {
		l, r = p2, p1
	}
	// Shift the right point by the full width so the segment crosses x = 0.
	sr := r2.Point{X: r.X - 1, Y: r.Y}
	if l.X == sr.X {
		return l.Y
	}

	m := (l.Y - sr.Y) / (l.X - sr.X)
	return l.Y - m*l.X
}

// LonEdgeCutIndices finds the cut positions of a ring of points that might
// cross the seam. Index i+1 is returned when the pair (i, i+1) (wrapping
// around from the last point to the first) is further apart horizontally than
// threshold.
func LonEdgeCutIndices(points []r2.Point, threshold float64) []int {
	var cuts []int
	for i := range points {
		p1 := points[i]
		p2 := points[(i+1)%len(points)]
		if math.Abs(p1.X-p2.X) > threshold {
			cuts = append(cuts, i+1)
		}
	}
	return cuts
}

// SplitAndCap performs seam splitting followed by pole capping of a closed
// shape.
func SplitAndCap(points []r2.Point, threshold float64) [][]r2.Point {
	return CapPoles(LonEdgeSplitShape(points, threshold), threshold)
}

// LonEdgeSplitShape splits a closed shape that crosses the seam into parts,
// each of which is closed off with synthetic points on the edges (x = 0 or
// x = 1).
func LonEdgeSplitShape(points []r2.Point, threshold float64) [][]r2.Point {
	cuts := LonEdgeCutIndices(points, threshold)
	if len(cuts) == 0 {
		return [][]r2.Point{points}
	}
	n := len(points)
	at := func(i int) r2.Point {
		return points[((i%n)+n)%n]
	}

	// iStart is the index of the first point of the segment, iEnd the index
	// just past its last one.
	cleanSegment := func(segment []r2.Point, iStart, iEnd int) []r2.Point {
		pointStart := segment[0]
		pointEnd := segment[len(segment)-1]
		pointBefore := at(iStart - 1)
		pointAfter := at(iEnd)

		result := make([]r2.Point, 0, len(segment)+2)
		if iStart == iEnd {
			// The segment spans the full width.
			ascending := pointStart.X < pointEnd.X
			y := LonEdgeIntersection(pointBefore, pointStart)
			first, last := 1., 0.
			if ascending {
				first, last = 0, 1
			}
			result = append(result, r2.Point{X: first, Y: y})
			result = append(result, segment...)
			return append(result, r2.Point{X: last, Y: y})
		}

		edge := 0.
		if pointStart.X > pointBefore.X {
			edge = 1
		}
		result = append(result, r2.Point{X: edge, Y: LonEdgeIntersection(pointBefore, pointStart)})
		result = append(result, segment...)
		return append(result, r2.Point{X: edge, Y: LonEdgeIntersection(pointEnd, pointAfter)})
	}

	shapes := make([][]r2.Point, 0, len(cuts))
	for i := 0; i < len(cuts)-1; i++ {
		iStart, iEnd := cuts[i], cuts[i+1]
		shapes = append(shapes, cleanSegment(points[iStart:iEnd], iStart, iEnd))
	}
	// The last segment continues across the end of the array.
	lastStart, lastEnd := cuts[len(cuts)-1], cuts[0]
	lastSegment := make([]r2.Point, 0, n-lastStart+lastEnd)
	lastSegment = append(lastSegment, points[lastStart:]...)
	lastSegment = append(lastSegment, points[:lastEnd]...)
	if len(lastSegment) > 0 {
		shapes = append(shapes, cleanSegment(lastSegment, lastStart, lastEnd))
	}

	return shapes
}

// LonEdgeSplitPath splits an open path that crosses the seam into parts.
// Consecutive parts are joined by synthetic points on the opposite edges.
func LonEdgeSplitPath(points []r2.Point, threshold float64) [][]r2.Point {
	cuts := LonEdgeCutIndices(points, threshold)
	if len(cuts) == 0 {
		return [][]r2.Point{points}
	}
	bounds := make([]int, 0, len(cuts)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, cuts...)
	bounds = append(bounds, len(points))

	var segments [][]r2.Point
	for i := 0; i < len(bounds)-1; i++ {
		iStart, iEnd := bounds[i], bounds[i+1]
		if iEnd <= iStart {
			continue
		}
		// Copy, so that adding edge points does not overwrite the input.
		segment := make([]r2.Point, 0, iEnd-iStart+2)
		segments = append(segments, append(segment, points[iStart:iEnd]...))
	}
	for i := 0; i < len(segments)-1; i++ {
		seg1, seg2 := segments[i], segments[i+1]
		p1 := seg1[len(seg1)-1]
		p2 := seg2[0]
		y := LonEdgeIntersection(p1, p2)

		x1, x2 := 1., 0.
		if p1.X < p2.X {
			x1, x2 = 0, 1
		}
		segments[i] = append(seg1, r2.Point{X: x1, Y: y})
		segments[i+1] = append([]r2.Point{{X: x2, Y: y}}, seg2...)
	}

	return segments
}

// CapPoles checks segments for pole envelopments and adds points covering
// the entire pole. A segment envelops a pole if its horizontal extent is
// larger than threshold. The input segments are not modified.
func CapPoles(segments [][]r2.Point, threshold float64) [][]r2.Point {
	result := make([][]r2.Point, 0, len(segments))
	for _, segment := range segments {
		if len(segment) < 2 {
			result = append(result, segment)
			continue
		}
		order := make([]int, len(segment))
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			switch {
			case segment[a].X < segment[b].X:
				return -1
			case segment[a].X > segment[b].X:
				return 1
			}
			return 0
		})
		i1, i2 := order[0], order[len(order)-1]
		if !(segment[i2].X-segment[i1].X > threshold) {
			result = append(result, segment)
			continue
		}

		y := 1.
		if segment[i1].Y < 0.5 {
			y = 0
		}
		first, last := 1., 0.
		if i1 < i2 {
			first, last = 0, 1
		}
		capped := make([]r2.Point, 0, len(segment)+2)
		capped = append(capped, r2.Point{X: first, Y: y})
		capped = append(capped, segment...)
		capped = append(capped, r2.Point{X: last, Y: y})
		result = append(result, capped)
	}

	return result
}
