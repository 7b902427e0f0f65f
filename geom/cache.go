package geom

// DistanceCache memoises point-to-segment distances for the duration of
// one pipeline run (spec §5: "A small memoised distance cache (point,
// segment_start, segment_end) → float64 lives for the duration of one
// run and is discarded after"). It is owned by a single caller; nothing
// in this package reaches for a global instance.
type DistanceCache struct {
	m map[cacheKey]float64
}

type cacheKey struct {
	P, A, B PointKey
}

// NewDistanceCache returns an empty cache.
func NewDistanceCache() *DistanceCache {
	return &DistanceCache{m: make(map[cacheKey]float64)}
}

// Reset discards every memoised entry, ready for reuse by a new run.
func (c *DistanceCache) Reset() {
	clear(c.m)
}

// PointToSegment returns the shortest distance from p to the segment ab,
// computing and caching it on first request.
func (c *DistanceCache) PointToSegment(p, a, b Point) float64 {
	key := cacheKey{P: p.Key(), A: a.Key(), B: b.Key()}
	if d, ok := c.m[key]; ok {
		return d
	}
	d := PointToSegmentDistance(p, a, b)
	c.m[key] = d
	return d
}

// PointToSegmentDistance computes the shortest distance from p to the
// segment ab directly, with no caching.
func PointToSegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 <= Epsilon*Epsilon {
		return Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Scale(t))
	return Dist(p, proj)
}
