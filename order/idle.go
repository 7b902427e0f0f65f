package order

import "github.com/optimlaser/lasercore/geom"

// idleDistance sums the travel distance between consecutive atoms in
// seq, starting from cursor, ignoring each atom's own cut length
// (spec §4.5 "Statistics": initial_idle / final_idle).
func idleDistance(seq []atom, cursor geom.Point) float64 {
	total := 0.0
	for _, a := range seq {
		total += geom.Dist(cursor, a.effectiveStart())
		cursor = a.effectiveEnd()
	}
	return total
}

func totalCutLength(seq []atom) float64 {
	total := 0.0
	for _, a := range seq {
		total += a.length
	}
	return total
}
