package merge

import (
	"sort"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// junction identifies a rounded endpoint within one colour — the key
// the endpoint graph is built over (spec §4.4 "Critical points").
type junction struct {
	point  geom.PointKey
	stroke colour.Colour
	has    bool
}

func junctionAt(p geom.Point, s *drawing.Shape) junction {
	return junction{point: p.RoundedKey(criticalPointPrecision), stroke: s.Style.Stroke, has: s.Style.HasStroke}
}

// endpointGraph maps each junction to the atoms touching it. It is
// rebuilt from the live atom set on demand; nothing persists it
// across a fusion pass (spec §9 "Graph without cycles of references").
type endpointGraph map[junction][]*drawing.Shape

func buildEndpointGraph(shapes []*drawing.Shape) endpointGraph {
	g := make(endpointGraph)
	for _, s := range shapes {
		start, _ := s.Path.Start()
		end, _ := s.Path.End()
		sj, ej := junctionAt(start, s), junctionAt(end, s)
		g[sj] = append(g[sj], s)
		g[ej] = append(g[ej], s)
	}
	return g
}

// criticalPoints returns the set of junctions touched by ≥3 atoms.
// Computed once on the atom set observed when Run starts and held
// fixed for the whole merge loop.
func criticalPoints(shapes []*drawing.Shape) map[junction]bool {
	g := buildEndpointGraph(shapes)
	out := make(map[junction]bool)
	for j, atoms := range g {
		if len(atoms) >= 3 {
			out[j] = true
		}
	}
	return out
}

// mergeablePoint is a live, non-critical degree-2 junction, with its
// two distinct touching atoms.
type mergeablePoint struct {
	junction junction
	a, b     *drawing.Shape
}

// mergeablePoints recomputes the mergeable set from g (spec §4.4
// "Mergeable pairs"), sorted for deterministic chain-seeding order.
func mergeablePoints(g endpointGraph, critical map[junction]bool) []mergeablePoint {
	var out []mergeablePoint
	for j, atoms := range g {
		if critical[j] || len(atoms) != 2 || atoms[0] == atoms[1] {
			continue
		}
		out = append(out, mergeablePoint{junction: j, a: atoms[0], b: atoms[1]})
	}
	sortMergeablePoints(out)
	return out
}

func sortMergeablePoints(points []mergeablePoint) {
	sort.Slice(points, func(i, j int) bool {
		a, b := points[i].junction, points[j].junction
		if a.point.X != b.point.X {
			return a.point.X < b.point.X
		}
		if a.point.Y != b.point.Y {
			return a.point.Y < b.point.Y
		}
		return a.stroke.Hex() < b.stroke.Hex()
	})
}
