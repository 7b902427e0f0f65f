package order

import "github.com/optimlaser/lasercore/geom"

// openAtomReversalPass re-examines each open atom's direction once
// the full sequence is fixed (spec §4.5 "Open-atom reversal pass"):
// neighbouring atoms may have shifted since the per-strategy pass
// decided this atom's direction, so each atom is compared once more
// against its now-final neighbours.
func openAtomReversalPass(seq []atom, cursor geom.Point) {
	for i := range seq {
		if seq[i].closed {
			continue
		}
		prevEnd := cursor
		if i > 0 {
			prevEnd = seq[i-1].effectiveEnd()
		}

		forward := geom.Dist(prevEnd, seq[i].start)
		flipped := geom.Dist(prevEnd, seq[i].end)
		if i+1 < len(seq) {
			nextStart := seq[i+1].effectiveStart()
			forward += geom.Dist(seq[i].end, nextStart)
			flipped += geom.Dist(seq[i].start, nextStart)
		}
		seq[i].reversed = flipped-forward < reversalThreshold
	}
}
