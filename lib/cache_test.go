package lib

import "testing"

import "github.com/stretchr/testify/assert"

func TestGeometryCache(t *testing.T) {
	cache := NewGeometryCache(2)
	spec := CircleSpec{CX: 0.5, CY: 0.5, R: 0.1}
	first := cache.Circle(spec, 50, DefaultCutThreshold)
	assert.Equal(t, PlanePointsCircle(spec, 50, DefaultCutThreshold), first)
	assert.Same(t, &first[0][0], &cache.Circle(spec, 50, DefaultCutThreshold)[0][0])
	assert.Equal(t, 1, cache.Len())

	path := cache.Path(LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 10, Lon: 10}, 8, DefaultCutThreshold)
	assert.Len(t, path, 1)
	assert.Equal(t, 2, cache.Len())

	// Different sample counts are different entries, the oldest is evicted.
	cache.Circle(spec, 60, DefaultCutThreshold)
	assert.Equal(t, 2, cache.Len())
	assert.NotSame(t, &first[0][0], &cache.Circle(spec, 50, DefaultCutThreshold)[0][0])
}

func TestNilGeometryCache(t *testing.T) {
	var cache *GeometryCache
	spec := CircleSpec{CX: 0.2, CY: 0.3, R: 0.05}
	assert.Equal(t, PlanePointsCircle(spec, 20, DefaultCutThreshold), cache.Circle(spec, 20, DefaultCutThreshold))
	assert.Equal(t, 0, cache.Len())
}
