package overlap

import (
	"math"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// straightBucket is one of the three direction classes straight atoms
// are sorted into before candidacy testing (spec §4.3.1).
type straightBucket int

const (
	bucketHorizontal straightBucket = iota
	bucketVertical
	bucketDiagonal
)

// straightAtom caches the endpoints and normalized direction of an
// atomic Line shape, computed once per overlap pass.
type straightAtom struct {
	shape      *drawing.Shape
	start, end geom.Point
	dir        geom.Point
}

func newStraightAtom(s *drawing.Shape) straightAtom {
	start, _ := s.Path.Start()
	end, _ := s.Path.End()
	return straightAtom{shape: s, start: start, end: end, dir: end.Sub(start).Normalize()}
}

func classifyDirection(dir geom.Point) straightBucket {
	if math.Abs(dir.Y) < 0.01 {
		return bucketHorizontal
	}
	if math.Abs(dir.X) < 0.01 {
		return bucketVertical
	}
	return bucketDiagonal
}

// mergeStraight runs the full straight-atom pass (spec §4.3.1) over a
// single colour's Line atoms: bucket by direction, build the overlap
// graph within each bucket, and replace every connected component of
// size ≥ 2 with one synthetic covering atom.
func mergeStraight(shapes []*drawing.Shape, tol float64, cache *geom.DistanceCache) []*drawing.Shape {
	buckets := map[straightBucket][]straightAtom{}
	for _, s := range shapes {
		a := newStraightAtom(s)
		b := classifyDirection(a.dir)
		buckets[b] = append(buckets[b], a)
	}

	var out []*drawing.Shape
	for _, atoms := range buckets {
		out = append(out, mergeStraightBucket(atoms, tol, cache)...)
	}

	return out
}

func mergeStraightBucket(atoms []straightAtom, tol float64, cache *geom.DistanceCache) []*drawing.Shape {
	n := len(atoms)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if overlapsStraight(atoms[i], atoms[j], tol, cache) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var out []*drawing.Shape
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		queue := []int{i}
		visited[i] = true
		comp := []int{i}
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
					comp = append(comp, nb)
				}
			}
		}
		if len(comp) == 1 {
			out = append(out, atoms[comp[0]].shape)
			continue
		}
		out = append(out, synthesizeStraight(atoms, comp))
	}

	return out
}

// isCandidate implements spec §4.3.1's candidacy test: almost-parallel
// direction, plus at least one endpoint within tolerance of the other
// segment.
func isCandidate(a, b straightAtom, tol float64, cache *geom.DistanceCache) bool {
	if math.Abs(a.dir.Dot(b.dir)) <= 0.99 {
		return false
	}
	return ptSegDist(cache, a.start, b.start, b.end) <= tol ||
		ptSegDist(cache, a.end, b.start, b.end) <= tol ||
		ptSegDist(cache, b.start, a.start, a.end) <= tol ||
		ptSegDist(cache, b.end, a.start, a.end) <= tol
}

// ptSegDist dispatches to the run-scoped cache when one was supplied
// (spec §5 "Shared resources"), falling back to the uncached formula.
func ptSegDist(cache *geom.DistanceCache, p, a, b geom.Point) float64 {
	if cache != nil {
		return cache.PointToSegment(p, a, b)
	}
	return geom.PointToSegmentDistance(p, a, b)
}

// overlapsStraight adds the projected-interval-intersection test on
// top of candidacy (spec §4.3.1 "Overlap test"). Intervals that only
// touch at a single point (e.g. two collinear legs of a Y-junction)
// do not count: that is a corner, not a duplicate cut, and B3
// requires the junction to survive into the merger untouched.
func overlapsStraight(a, b straightAtom, tol float64, cache *geom.DistanceCache) bool {
	if !isCandidate(a, b, tol, cache) {
		return false
	}
	proj := func(p geom.Point) float64 { return p.Sub(a.start).Dot(a.dir) }

	aMin, aMax := minMax(0, proj(a.end))
	bMin, bMax := minMax(proj(b.start), proj(b.end))

	return math.Max(aMin, bMin) < math.Min(aMax, bMax)-geom.Epsilon
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// synthesizeStraight replaces a connected component of overlapping
// straight atoms with one covering segment: every endpoint in the
// component is projected onto the reference atom's direction, and the
// min/max-projection points become the new atom's endpoints.
func synthesizeStraight(atoms []straightAtom, comp []int) *drawing.Shape {
	ref := atoms[comp[0]]

	type projected struct {
		t float64
		p geom.Point
	}
	var pts []projected
	for _, idx := range comp {
		a := atoms[idx]
		pts = append(pts, projected{a.start.Sub(ref.start).Dot(ref.dir), a.start})
		pts = append(pts, projected{a.end.Sub(ref.start).Dot(ref.dir), a.end})
	}
	minP, maxP := pts[0], pts[0]
	for _, pr := range pts[1:] {
		if pr.t < minP.t {
			minP = pr
		}
		if pr.t > maxP.t {
			maxP = pr
		}
	}

	out := ref.shape.Clone()
	out.Path = geom.Path{
		{Kind: geom.CmdMove, X: minP.p.X, Y: minP.p.Y},
		{Kind: geom.CmdLine, X: maxP.p.X, Y: maxP.p.Y},
	}

	return out
}
