package order

import "github.com/optimlaser/lasercore/geom"

// nearestNeighbour greedily orders atoms from cursor (spec §4.5
// "Nearest-neighbour details"): at each step the remaining atom whose
// nearer endpoint is closest to the cursor is selected next. Open
// atoms are reversed when their end is closer to the cursor than
// their start; closed atoms are never reversed.
func nearestNeighbour(atoms []atom, cursor geom.Point) []atom {
	remaining := make([]atom, len(atoms))
	copy(remaining, atoms)

	out := make([]atom, 0, len(atoms))
	for len(remaining) > 0 {
		best := -1
		var bestDist float64
		var bestReversed bool

		for i, a := range remaining {
			dStart := geom.Dist(cursor, a.start)
			d, rev := dStart, false
			if !a.closed {
				if dEnd := geom.Dist(cursor, a.end); dEnd < dStart {
					d, rev = dEnd, true
				}
			}
			if best == -1 || d < bestDist {
				best, bestDist, bestReversed = i, d, rev
			}
		}

		a := remaining[best]
		a.reversed = bestReversed
		cursor = a.effectiveEnd()
		out = append(out, a)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}
