package lib

import "testing"

import "github.com/golang/geo/r2"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestPlanarSpherePath(t *testing.T) {
	p1 := LatLon{Lat: 0, Lon: -10}
	p2 := LatLon{Lat: 0, Lon: 10}
	paths := PlanarSpherePath(p1, p2, 4, DefaultCutThreshold)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 5)
	for i, p := range paths[0] {
		assert.InDelta(t, (170+5*float64(i))/360, p.X, 1e-9)
		assert.InDelta(t, 0.5, p.Y, 1e-9)
	}
}

func TestPlanarSpherePathAcrossSeam(t *testing.T) {
	p1 := LatLon{Lat: 0, Lon: 170}
	p2 := LatLon{Lat: 0, Lon: -170}
	paths := PlanarSpherePath(p1, p2, 4, DefaultCutThreshold)
	require.Len(t, paths, 2)
	assert.Equal(t, 1., paths[0][len(paths[0])-1].X)
	assert.Equal(t, 0., paths[1][0].X)
	assert.InDelta(t, 0.5, paths[0][len(paths[0])-1].Y, 1e-9)
	assert.Equal(t, paths[0][len(paths[0])-1].Y, paths[1][0].Y)
}

func TestPlanarSpherePathWithoutSegments(t *testing.T) {
	p1 := LatLon{Lat: 45, Lon: 90}
	paths := PlanarSpherePath(p1, LatLon{}, 0, DefaultCutThreshold)
	assert.Equal(t, [][]r2.Point{{UVToXY(LatLonToUV(p1))}}, paths)
}
