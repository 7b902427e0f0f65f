package merge

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// chain is one fusion-candidate run of atoms, built from a seed
// mergeable point and extended in both directions while every
// crossed junction stays non-critical (spec §4.4).
type chain struct {
	atoms    []*drawing.Shape
	reversed []bool
}

func endpointRole(s *drawing.Shape, point geom.PointKey) (atStart, atEnd bool) {
	start, _ := s.Path.Start()
	end, _ := s.Path.End()
	return start.RoundedKey(criticalPointPrecision) == point, end.RoundedKey(criticalPointPrecision) == point
}

// newSeedChain orients the seed pair so that end(first) = start(second)
// = the seed junction, reversing one or both atoms as needed (spec
// §4.4 "Chain construction from a seed point").
func newSeedChain(mp mergeablePoint) *chain {
	point := mp.junction.point
	aStart, aEnd := endpointRole(mp.a, point)
	bStart, bEnd := endpointRole(mp.b, point)

	switch {
	case aEnd && bStart:
		return &chain{atoms: []*drawing.Shape{mp.a, mp.b}, reversed: []bool{false, false}}
	case aEnd && bEnd:
		return &chain{atoms: []*drawing.Shape{mp.a, mp.b}, reversed: []bool{false, true}}
	case aStart && bStart:
		return &chain{atoms: []*drawing.Shape{mp.a, mp.b}, reversed: []bool{true, false}}
	default: // aStart && bEnd
		return &chain{atoms: []*drawing.Shape{mp.a, mp.b}, reversed: []bool{true, true}}
	}
}

func (c *chain) headEnd() geom.Point {
	i := len(c.atoms) - 1
	p := c.atoms[i].Path
	if c.reversed[i] {
		p = geom.Reverse(p)
	}
	end, _ := p.End()
	return end
}

func (c *chain) tailStart() geom.Point {
	p := c.atoms[0].Path
	if c.reversed[0] {
		p = geom.Reverse(p)
	}
	start, _ := p.Start()
	return start
}

// extendForward grows the chain past headEnd() if that junction is a
// live, non-critical degree-2 endpoint joining exactly one unused
// atom whose far endpoint is itself non-critical.
func (c *chain) extendForward(g endpointGraph, critical map[junction]bool, used map[*drawing.Shape]bool) bool {
	last := c.atoms[len(c.atoms)-1]
	j := junction{point: c.headEnd().RoundedKey(criticalPointPrecision), stroke: last.Style.Stroke, has: last.Style.HasStroke}
	if critical[j] {
		return false
	}
	atoms := g[j]
	if len(atoms) != 2 {
		return false
	}
	next := otherAtom(atoms, last)
	if next == nil || used[next] {
		return false
	}

	far, rev := farEndpoint(next, j.point)
	farJ := junction{point: far.RoundedKey(criticalPointPrecision), stroke: j.stroke, has: j.has}
	if critical[farJ] {
		return false
	}

	c.atoms = append(c.atoms, next)
	c.reversed = append(c.reversed, rev)
	used[next] = true
	return true
}

// extendBackward is extendForward's mirror image at tailStart().
func (c *chain) extendBackward(g endpointGraph, critical map[junction]bool, used map[*drawing.Shape]bool) bool {
	first := c.atoms[0]
	j := junction{point: c.tailStart().RoundedKey(criticalPointPrecision), stroke: first.Style.Stroke, has: first.Style.HasStroke}
	if critical[j] {
		return false
	}
	atoms := g[j]
	if len(atoms) != 2 {
		return false
	}
	prev := otherAtom(atoms, first)
	if prev == nil || used[prev] {
		return false
	}

	// prev must end (not start) at j to attach without reversal.
	pStart, pEnd := endpointRole(prev, j.point)
	var far geom.Point
	var rev bool
	switch {
	case pEnd:
		s, _ := prev.Path.Start()
		far, rev = s, false
	case pStart:
		e, _ := prev.Path.End()
		far, rev = e, true
	default:
		return false
	}
	farJ := junction{point: far.RoundedKey(criticalPointPrecision), stroke: j.stroke, has: j.has}
	if critical[farJ] {
		return false
	}

	c.atoms = append([]*drawing.Shape{prev}, c.atoms...)
	c.reversed = append([]bool{rev}, c.reversed...)
	used[prev] = true
	return true
}

func otherAtom(atoms []*drawing.Shape, self *drawing.Shape) *drawing.Shape {
	switch {
	case atoms[0] == self:
		return atoms[1]
	case atoms[1] == self:
		return atoms[0]
	default:
		return nil
	}
}

// farEndpoint returns next's endpoint other than point, and whether
// next must be reversed for point to become its start.
func farEndpoint(next *drawing.Shape, point geom.PointKey) (far geom.Point, reversed bool) {
	start, _ := next.Path.Start()
	end, _ := next.Path.End()
	if start.RoundedKey(criticalPointPrecision) == point {
		return end, false
	}
	return start, true
}

// fuse replaces the chain's atoms with one atom whose Path is the
// concatenation of the chain's paths, dropping all Moves but the
// first (spec §4.4 "Fusion").
func fuse(c *chain) *drawing.Shape {
	var path geom.Path
	for i, s := range c.atoms {
		p := s.Path
		if c.reversed[i] {
			p = geom.Reverse(p)
		}
		if i == 0 {
			path = append(path, p...)
		} else {
			path = append(path, p[1:]...)
		}
	}
	out := c.atoms[0].Clone()
	out.Path = path
	return out
}
