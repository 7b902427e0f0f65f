package overlap

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// chain is a run of atoms of the same colour and path type, joined
// end-to-end within tolerance (spec §4.3.3). Atoms joined reversed
// have their start/end (and sampled points) swapped.
type chain struct {
	atoms    []*drawing.Shape
	reversed []bool
	start    geom.Point
	end      geom.Point
	removed  bool
}

func newChain(s *drawing.Shape) *chain {
	start, _ := s.Path.Start()
	end, _ := s.Path.End()
	return &chain{atoms: []*drawing.Shape{s}, reversed: []bool{false}, start: start, end: end}
}

func (c *chain) extendForward(pool []*drawing.Shape, used map[*drawing.Shape]bool, tol float64) bool {
	for _, a := range pool {
		if used[a] {
			continue
		}
		aStart, _ := a.Path.Start()
		aEnd, _ := a.Path.End()
		if geom.Dist(c.end, aStart) <= tol {
			c.atoms = append(c.atoms, a)
			c.reversed = append(c.reversed, false)
			c.end = aEnd
			used[a] = true
			return true
		}
		if geom.Dist(c.end, aEnd) <= tol {
			c.atoms = append(c.atoms, a)
			c.reversed = append(c.reversed, true)
			c.end = aStart
			used[a] = true
			return true
		}
	}
	return false
}

func (c *chain) extendBackward(pool []*drawing.Shape, used map[*drawing.Shape]bool, tol float64) bool {
	for _, a := range pool {
		if used[a] {
			continue
		}
		aStart, _ := a.Path.Start()
		aEnd, _ := a.Path.End()
		if geom.Dist(c.start, aEnd) <= tol {
			c.atoms = append([]*drawing.Shape{a}, c.atoms...)
			c.reversed = append([]bool{false}, c.reversed...)
			c.start = aStart
			used[a] = true
			return true
		}
		if geom.Dist(c.start, aStart) <= tol {
			c.atoms = append([]*drawing.Shape{a}, c.atoms...)
			c.reversed = append([]bool{true}, c.reversed...)
			c.start = aEnd
			used[a] = true
			return true
		}
	}
	return false
}

// points concatenates each atom's sampled points in chain order,
// reversing an atom's samples when it was joined reversed and
// deduplicating the junction point between consecutive atoms.
func (c *chain) points() []geom.Point {
	var out []geom.Point
	for i, s := range c.atoms {
		p := s.Path
		if c.reversed[i] {
			p = geom.Reverse(p)
		}
		samples := geom.Sample(p, geom.MinChainSamples)
		if len(out) > 0 && len(samples) > 0 && out[len(out)-1].Equal(samples[0]) {
			samples = samples[1:]
		}
		out = append(out, samples...)
	}
	return out
}

func (c *chain) length() float64 {
	var total float64
	for _, s := range c.atoms {
		total += geom.Length(s.Path)
	}
	return total
}

func (c *chain) bbox() geom.BBox {
	return geom.BBoxOf(c.points())
}

func (c *chain) markRemoved() {
	c.removed = true
}

// buildChains greedily joins every atom in shapes into the longest
// chain it can reach, forward and backward, within tol (spec §4.3.3).
func buildChains(shapes []*drawing.Shape, tol float64) []*chain {
	used := make(map[*drawing.Shape]bool, len(shapes))
	var chains []*chain
	for _, seed := range shapes {
		if used[seed] {
			continue
		}
		used[seed] = true
		c := newChain(seed)
		for c.extendForward(shapes, used, tol) {
		}
		for c.extendBackward(shapes, used, tol) {
		}
		chains = append(chains, c)
	}
	return chains
}
