package lib

import "math"
import "testing"

import "github.com/golang/geo/r3"
import "github.com/stretchr/testify/assert"

func TestDegToRadRoundTrip(t *testing.T) {
	for _, d := range []float64{-720, -180, -90, -45.5, 0, 1e-6, 30, 90, 179.99, 180, 360, 1234.5} {
		assert.InDelta(t, d, RadToDeg(DegToRad(d)), 1e-9)
	}
}

func assertVectorInDelta(t *testing.T, expected, actual r3.Vector, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "X of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "Y of %v", actual)
	assert.InDelta(t, expected.Z, actual.Z, delta, "Z of %v", actual)
}

func TestLLARToWorld(t *testing.T) {
	assert.Equal(t, r3.Vector{X: 0, Y: 0, Z: 1}, LLARToWorld(0, 0, 0, 1))
	assertVectorInDelta(t, r3.Vector{X: 1, Y: 0, Z: 0}, LLARToWorld(0, math.Pi/2, 0, 1), 1e-12)
	assertVectorInDelta(t, r3.Vector{X: 0, Y: 1, Z: 0}, LLARToWorld(math.Pi/2, 0, 0, 1), 1e-12)
	assertVectorInDelta(t, r3.Vector{X: 0, Y: 0, Z: 3}, LLARToWorld(0, 0, 1, 2), 1e-12)
}

func TestWorldToLatLon(t *testing.T) {
	ll := WorldToLatLon(r3.Vector{X: -1, Y: 0, Z: 0})
	assert.InDelta(t, 0, math.Mod(ll.Lon, 180), 1e-9)
	assert.InDelta(t, 0, ll.Lat, 1e-9)

	ll = WorldToLatLon(r3.Vector{X: 0, Y: 0, Z: 1})
	assert.InDelta(t, 270, ll.Lon, 1e-9)

	ll = WorldToLatLon(r3.Vector{X: 0, Y: -1, Z: 0})
	assert.InDelta(t, 90, ll.Lat, 1e-9)
}

func TestPositiveToSigned(t *testing.T) {
	assert.Equal(t, LatLon{Lat: -10, Lon: -90}, PositiveToSigned(LatLon{Lat: 170, Lon: 270}))
	assert.Equal(t, LatLon{Lat: 10, Lon: 90}, PositiveToSigned(LatLon{Lat: 10, Lon: 90}))
}

func TestUVLatLonConversions(t *testing.T) {
	assert.Equal(t, LatLon{Lat: 0, Lon: 0}, UVToLatLon(UVPoint{U: 0.5, V: 0.5}))
	assert.Equal(t, LatLon{Lat: -90, Lon: -180}, UVToLatLon(UVPoint{U: 0, V: 0}))
	for _, p := range []UVPoint{{0, 0}, {0.25, 0.75}, {0.5, 0.5}, {0.9, 0.1}, {1, 1}} {
		back := LatLonToUV(UVToLatLon(p))
		assert.InDelta(t, p.U, back.U, 1e-12)
		assert.InDelta(t, p.V, back.V, 1e-12)
	}
}

func TestUVPointNormalized(t *testing.T) {
	p := UVPoint{U: -0.25, V: 1.5}.Normalized()
	assert.InDelta(t, 0.75, p.U, 1e-12)
	assert.Equal(t, 1., p.V)
	p = UVPoint{U: 2.5, V: -1}.Normalized()
	assert.InDelta(t, 0.5, p.U, 1e-12)
	assert.Equal(t, 0., p.V)
}

func TestToWorldPositionRoundTrip(t *testing.T) {
	for _, p := range []UVPoint{{0.5, 0.5}, {0.25, 0.5}, {0.75, 0.3}, {0.1, 0.8}, {0.9, 0.45}} {
		world := ToWorldPosition(p, 10)
		assert.InDelta(t, 10, world.Norm(), 1e-9)
		back := WorldToUV(world)
		assert.InDelta(t, p.U, back.U, 1e-9, "U of %v", p)
		assert.InDelta(t, p.V, back.V, 1e-9, "V of %v", p)
	}
}

func TestToWorldPositionAxes(t *testing.T) {
	assertVectorInDelta(t, r3.Vector{X: -1}, ToWorldPosition(UVPoint{U: 0.5, V: 0.5}, 1), 1e-12)
	assertVectorInDelta(t, r3.Vector{Z: -1}, ToWorldPosition(UVPoint{U: 0.75, V: 0.5}, 1), 1e-12)
	assertVectorInDelta(t, r3.Vector{Y: -1}, ToWorldPosition(UVPoint{U: 0.5, V: 1}, 1), 1e-12)
}
