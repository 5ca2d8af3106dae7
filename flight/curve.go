package flight

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lixenwraith/flight-globe/vmath"
)

type curveKey struct {
	start, end vmath.Vec3F
}

// CurveCache memoizes sampled arcs per endpoint pair
// Cached slices are shared between paths and must be treated as read-only
type CurveCache struct {
	cfg    Config
	cache  *lru.Cache[curveKey, []vmath.Vec3F]
	hits   uint64
	misses uint64
}

// NewCurveCache creates a cache holding up to size arcs, size <= 0 disables caching
func NewCurveCache(cfg Config, size int) *CurveCache {
	c := &CurveCache{cfg: cfg}
	if size > 0 {
		// lru.New only fails on a non-positive size
		c.cache, _ = lru.New[curveKey, []vmath.Vec3F](size)
	}
	return c
}

// Get returns the sampled arc from start to end
func (c *CurveCache) Get(start, end vmath.Vec3F) []vmath.Vec3F {
	if c.cache == nil {
		c.misses++
		return SampleArc(start, end, c.cfg)
	}
	key := curveKey{start: start, end: end}
	if pts, ok := c.cache.Get(key); ok {
		c.hits++
		return pts
	}
	c.misses++
	pts := SampleArc(start, end, c.cfg)
	c.cache.Add(key, pts)
	return pts
}

// Len returns the number of cached arcs
func (c *CurveCache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Stats returns cumulative hit and miss counts
func (c *CurveCache) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}
