package lib

import "sync"

import "github.com/golang/geo/r2"
import "github.com/golang/groupcache/lru"

// DefaultGeometryCacheSize is the default number of outlines kept by a
// GeometryCache.
const DefaultGeometryCacheSize = 256

type circleCacheKey struct {
	spec      CircleSpec
	samples   int
	threshold float64
}

type pathCacheKey struct {
	p1, p2       LatLon
	segmentCount int
	threshold    float64
}

// GeometryCache keeps recently computed planar outlines. It is safe for
// concurrent use. A nil *GeometryCache computes every outline.
type GeometryCache struct {
	cache *lru.Cache
	lock  sync.Mutex
}

func NewGeometryCache(numEntries int) *GeometryCache {
	return &GeometryCache{cache: lru.New(numEntries)}
}

func (c *GeometryCache) get(key lru.Key, compute func() [][]r2.Point) [][]r2.Point {
	if c == nil {
		return compute()
	}
	c.lock.Lock()
	value, ok := c.cache.Get(key)
	c.lock.Unlock()
	if ok {
		return value.([][]r2.Point)
	}
	result := compute()
	c.lock.Lock()
	c.cache.Add(key, result)
	c.lock.Unlock()
	return result
}

// Circle returns PlanePointsCircle(circle, samples, threshold).
// The result is shared and must not be modified.
func (c *GeometryCache) Circle(circle CircleSpec, samples int, threshold float64) [][]r2.Point {
	key := circleCacheKey{spec: circle, samples: samples, threshold: threshold}
	return c.get(key, func() [][]r2.Point {
		return PlanePointsCircle(circle, samples, threshold)
	})
}

// Path returns PlanarSpherePath(p1, p2, segmentCount, threshold).
// The result is shared and must not be modified.
func (c *GeometryCache) Path(p1, p2 LatLon, segmentCount int, threshold float64) [][]r2.Point {
	key := pathCacheKey{p1: p1, p2: p2, segmentCount: segmentCount, threshold: threshold}
	return c.get(key, func() [][]r2.Point {
		return PlanarSpherePath(p1, p2, segmentCount, threshold)
	})
}

// Len returns the number of cached outlines.
func (c *GeometryCache) Len() int {
	if c == nil {
		return 0
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Len()
}
