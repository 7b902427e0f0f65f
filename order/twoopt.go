package order

import "github.com/optimlaser/lasercore/geom"

// twoOpt refines a nearest-neighbour ordering with deterministic
// first-improvement 2-opt (spec §4.5 "2-opt details"), directly
// adapted from the teacher's symmetric tsp.TwoOpt: for i<k, segment
// [i..k] is reversed when doing so shortens the two edges it touches,
// Δ = dist(a,c) + dist(b,d) - dist(a,b) - dist(c,d), with a the point
// preceding the segment, b/c the segment's original entry/exit, and d
// the point following it. Reversing the segment also flips the
// reversed flag of every non-closed atom inside it, since traversing
// the segment back to front also traverses each atom back to front.
func twoOpt(atoms []atom, cursor geom.Point, maxIterations int) []atom {
	seq := nearestNeighbour(atoms, cursor)
	n := len(seq)
	if n < 3 {
		return seq
	}

	entryPoint := func(idx int) geom.Point {
		if idx < 0 {
			return cursor
		}
		return seq[idx].effectiveStart()
	}
	exitPoint := func(idx int) geom.Point {
		if idx < 0 {
			return cursor
		}
		return seq[idx].effectiveEnd()
	}

	for iter := 0; iter < maxIterations; iter++ {
		improved := false
		for i := 1; i < n; i++ {
			a := exitPoint(i - 1)
			b := entryPoint(i)
			for k := i + 1; k < n; k++ {
				c := exitPoint(k)
				hasD := k+1 < n
				before := geom.Dist(a, b)
				after := geom.Dist(a, c)
				if hasD {
					d := entryPoint(k + 1)
					before += geom.Dist(c, d)
					after += geom.Dist(b, d)
				}
				if after-before < reversalThreshold {
					reverseSegment(seq, i, k)
					improved = true
					b = entryPoint(i)
				}
			}
		}
		if !improved {
			break
		}
	}
	return seq
}

// reverseSegment reverses seq[lo..hi] in place and flips the reversed
// flag of every non-closed atom in the segment.
func reverseSegment(seq []atom, lo, hi int) {
	for i, j := lo, hi; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
	for i := lo; i <= hi; i++ {
		if !seq[i].closed {
			seq[i].reversed = !seq[i].reversed
		}
	}
}
