package lib

import "math"

import "github.com/golang/geo/r2"
import "github.com/golang/geo/r3"

// UVPoint is a point in normalized texture coordinates of an equirectangular
// video. U wraps around horizontally, V ranges from one pole (0) to the other (1).
type UVPoint struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// XYToUV maps X to U and Y to V.
func XYToUV(p r2.Point) UVPoint {
	return UVPoint{U: p.X, V: p.Y}
}

// UVToXY maps U to X and V to Y.
func UVToXY(p UVPoint) r2.Point {
	return r2.Point{X: p.U, Y: p.V}
}

// Normalized wraps U into [0,1) and clamps V into [0,1].
func (p UVPoint) Normalized() UVPoint {
	u := math.Mod(p.U, 1)
	if u < 0 {
		u++
	}
	return UVPoint{U: u, V: math.Max(0, math.Min(1, p.V))}
}

func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}

// UVToLatLon converts a UV point to latitude/longitude in the signed convention.
func UVToLatLon(p UVPoint) LatLon {
	return LatLon{Lat: p.V*180 - 90, Lon: p.U*360 - 180}
}

// LatLonToUV converts a signed latitude/longitude to a UV point.
// It is an equirectangular projection.
func LatLonToUV(ll LatLon) UVPoint {
	long := DegToRad(ll.Lon) + math.Pi
	lat := DegToRad(ll.Lat) + math.Pi/2

	return UVPoint{U: long / (math.Pi * 2), V: lat / math.Pi}
}

// LLARToWorld calculates the position of a point given by latitude, longitude
// (both in radians), altitude and radius, in the rendering engine frame:
//
//	LLARToWorld(0, 0, 0, 1)    = {0, 0, 1}
//	LLARToWorld(0, π/2, 0, 1)  = {1, 0, 0}
//	LLARToWorld(π/2, 0, 0, 1)  = {0, 1, 0}
func LLARToWorld(radLat, radLon, altitude, radius float64) r3.Vector {
	const f = 0 // flattening
	ls := math.Atan((1 - f) * (1 - f) * math.Tan(radLat))

	x := radius*math.Cos(ls)*math.Cos(radLon) + altitude*math.Cos(radLat)*math.Cos(radLon)
	y := radius*math.Cos(ls)*math.Sin(radLon) + altitude*math.Cos(radLat)*math.Sin(radLon)
	z := radius*math.Sin(ls) + altitude*math.Sin(radLat)

	return r3.Vector{X: y, Y: z, Z: x}
}

// WorldToLatLon converts a world position to latitude/longitude in the
// positive convention (lat in [0,180), lon in [0,360)). The sphere center is
// assumed to be at the origin; the negative X axis maps to lon 0 and the
// positive Z axis to lon 270.
func WorldToLatLon(p r3.Vector) LatLon {
	lon := math.Atan2(p.Z, p.X) - math.Pi
	zx := math.Sqrt(p.X*p.X + p.Z*p.Z)
	lat := -math.Atan2(p.Y, zx)

	return LatLon{
		Lat: math.Mod(RadToDeg(lat)+180, 180),
		Lon: math.Mod(RadToDeg(lon)+360, 360),
	}
}

// PositiveToSigned converts a latitude/longitude returned by WorldToLatLon to
// the signed convention used by UVToLatLon.
func PositiveToSigned(ll LatLon) LatLon {
	if ll.Lon > 180 {
		ll.Lon -= 360
	}
	if ll.Lat > 90 {
		ll.Lat -= 180
	}
	return ll
}

// ToWorldPosition calculates the world position of a UV point on the inside
// of the viewer sphere of the given radius.
func ToWorldPosition(p UVPoint, radius float64) r3.Vector {
	ll := UVToLatLon(p)
	w := LLARToWorld(DegToRad(ll.Lat), DegToRad(ll.Lon), 0, radius)

	return r3.Vector{X: -w.Z, Y: -w.Y, Z: -w.X}
}

// WorldToUV is the inverse of ToWorldPosition, up to the wrapping of U.
func WorldToUV(p r3.Vector) UVPoint {
	return LatLonToUV(PositiveToSigned(WorldToLatLon(p))).Normalized()
}
