package lib

import "math"

import "github.com/golang/geo/s1"
import "github.com/golang/geo/s2"

// LatLon is a spherical coordinate in degrees.
//
// Functions state which convention they produce: the signed one
// (lat in [-90,90], lon in [-180,180]) or the positive one returned by
// WorldToLatLon (lat in [0,180), lon in [0,360)).
type LatLon struct {
	Lat float64
	Lon float64
}

// LatLng returns the point as an s2.LatLng.
func (ll LatLon) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(DegToRad(ll.Lat)), Lng: s1.Angle(DegToRad(ll.Lon))}
}

// DistanceTo returns the great-circle distance to other on a sphere of the
// given radius (haversine).
func (ll LatLon) DistanceTo(other LatLon, radius float64) float64 {
	return ll.LatLng().Distance(other.LatLng()).Radians() * radius
}

// BearingTo returns the initial bearing towards other in degrees, in [0,360).
func (ll LatLon) BearingTo(other LatLon) float64 {
	phi1 := DegToRad(ll.Lat)
	phi2 := DegToRad(other.Lat)
	dLambda := DegToRad(other.Lon - ll.Lon)
	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	theta := math.Atan2(y, x)

	return math.Mod(RadToDeg(theta)+360, 360)
}

// DestinationPoint returns the point reached after travelling distance along
// the great circle starting at bearing (degrees) on a sphere of the given
// radius. The longitude of the result is normalized to [-180,180].
func (ll LatLon) DestinationPoint(distance, bearing, radius float64) LatLon {
	if radius == 0 {
		return ll
	}
	delta := distance / radius
	theta := DegToRad(bearing)
	phi1 := DegToRad(ll.Lat)
	lambda1 := DegToRad(ll.Lon)

	sinPhi1, cosPhi1 := math.Sin(phi1), math.Cos(phi1)
	sinDelta, cosDelta := math.Sin(delta), math.Cos(delta)
	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

	sinPhi2 := sinPhi1*cosDelta + cosPhi1*sinDelta*cosTheta
	phi2 := math.Asin(sinPhi2)
	y := sinTheta * sinDelta * cosPhi1
	x := cosDelta - sinPhi1*sinPhi2
	lambda2 := lambda1 + math.Atan2(y, x)

	return LatLon{
		Lat: RadToDeg(phi2),
		Lon: math.Mod(RadToDeg(lambda2)+540, 360) - 180,
	}
}
