package geom

import "math"

// HausdorffDirected returns the directed Hausdorff distance A→B over two
// finite point sets: max_{a∈A} min_{b∈B} |a−b| (spec GLOSSARY). An empty
// A returns 0 (vacuous max); an empty B returns +Inf (no point of A has
// anything to match).
func HausdorffDirected(a, b []Point) float64 {
	if len(a) == 0 {
		return 0
	}
	if len(b) == 0 {
		return math.Inf(1)
	}
	var worst float64
	for _, pa := range a {
		best := math.Inf(1)
		for _, pb := range b {
			if d := Dist(pa, pb); d < best {
				best = d
			}
		}
		if best > worst {
			worst = best
		}
	}
	return worst
}

// HausdorffSymmetric returns max(HausdorffDirected(a,b), HausdorffDirected(b,a)),
// the "symmetric directed Hausdorff distance" spec §4.3.2 uses to compare
// whole curve chains.
func HausdorffSymmetric(a, b []Point) float64 {
	ab := HausdorffDirected(a, b)
	ba := HausdorffDirected(b, a)
	if ab > ba {
		return ab
	}
	return ba
}
