package order

import (
	"math"
	"sort"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// zoning orders atoms by banded serpentine zoning (spec §4.5 "Banded
// serpentine / zoning strategy"): atoms are bucketed into strips of
// width stripWidth along the configured axis, strips are visited in
// index order, and the atom order within each strip is flipped on
// every other strip so the head sweeps back and forth rather than
// flying back to one edge after each strip. Atoms within a strip are
// locally ordered by nearest-neighbour, continuing the running cursor
// across strip boundaries.
func zoning(atoms []atom, cursor geom.Point, dir drawing.StripDirection, stripWidth float64) []atom {
	if stripWidth <= 0 {
		return nearestNeighbour(atoms, cursor)
	}

	axis := func(p geom.Point) float64 {
		if dir == drawing.StripRows {
			return p.Y
		}
		return p.X
	}

	strips := make(map[int][]atom)
	for _, a := range atoms {
		idx := int(math.Floor(axis(a.start) / stripWidth))
		if idx > maxZoningStrips {
			idx = maxZoningStrips
		} else if idx < -maxZoningStrips {
			idx = -maxZoningStrips
		}
		strips[idx] = append(strips[idx], a)
	}

	indices := make([]int, 0, len(strips))
	for idx := range strips {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]atom, 0, len(atoms))
	for stripNum, idx := range indices {
		ordered := nearestNeighbour(strips[idx], cursor)
		if stripNum%2 == 1 {
			reverseStripOrder(ordered)
		}
		out = append(out, ordered...)
		if len(ordered) > 0 {
			cursor = ordered[len(ordered)-1].effectiveEnd()
		}
	}
	return out
}

// reverseStripOrder reverses the visiting order of a strip's atoms
// without altering any individual atom's own start/end orientation;
// the serpentine sweep changes which end of the strip is entered
// first, not which end of each atom is entered first.
func reverseStripOrder(atoms []atom) {
	for i, j := 0, len(atoms)-1; i < j; i, j = i+1, j-1 {
		atoms[i], atoms[j] = atoms[j], atoms[i]
	}
}
