package lib

import "github.com/golang/geo/r2"

// PlanarSpherePath calculates the planar path between two points on the unit
// sphere, split into segments where it crosses the seam.
//
// The path is approximated by segmentCount steps of equal length, each one
// heading towards p2 from the point reached by the previous step.
func PlanarSpherePath(p1, p2 LatLon, segmentCount int, cutThreshold float64) [][]r2.Point {
	const r = 1
	points := []LatLon{p1}
	if segmentCount > 0 {
		step := p1.DistanceTo(p2, r) / float64(segmentCount)
		for i := 0; i < segmentCount; i++ {
			last := points[len(points)-1]
			points = append(points, last.DestinationPoint(step, last.BearingTo(p2), r))
		}
	}

	path := make([]r2.Point, 0, len(points))
	for _, p := range points {
		path = append(path, UVToXY(LatLonToUV(p)))
	}
	return LonEdgeSplitPath(path, cutThreshold)
}
