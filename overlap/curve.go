package overlap

import (
	"log/slog"
	"math"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// mergeCurves runs the chain-based curve dedup pass (spec §4.3.2,
// §4.3.3) over one colour's atoms of a single path type (arcs,
// cubics, or quadratics, handled separately by the caller).
func mergeCurves(shapes []*drawing.Shape, tol float64, logger *slog.Logger) []*drawing.Shape {
	chains := buildChains(shapes, tol)

	equivalencePass(chains, tol, logger)
	containmentPass(chains, tol, logger)

	var survivors []*drawing.Shape
	for _, c := range chains {
		if c.removed {
			continue
		}
		survivors = append(survivors, c.atoms...)
	}

	return residualPass(survivors, tol, logger)
}

// equivalencePass implements spec §4.3.2 "Chain similarity": pairwise
// bbox prefilter, endpoint proximity, then adaptive-threshold
// Hausdorff. The chain with fewer atoms (coarser fidelity) loses.
func equivalencePass(chains []*chain, tol float64, logger *slog.Logger) {
	margin := 5 * tol
	for i := 0; i < len(chains); i++ {
		if chains[i].removed {
			continue
		}
		for j := i + 1; j < len(chains); j++ {
			if chains[j].removed {
				continue
			}
			a, b := chains[i], chains[j]
			if !a.bbox().Expand(margin).Overlaps(b.bbox().Expand(margin)) {
				continue
			}
			if !endpointsCorrespond(a, b, tol) {
				continue
			}
			maxLen := math.Max(a.length(), b.length())
			threshold := math.Max(5*tol, 0.015*maxLen)
			d := safeHausdorffSymmetric(a.points(), b.points(), logger)
			if d > threshold {
				continue
			}
			if len(a.atoms) >= len(b.atoms) {
				b.markRemoved()
			} else {
				a.markRemoved()
			}
		}
	}
}

// containmentPass implements spec §4.3.2 "Partial containment": for
// every ordered pair where A is not much longer than B, a directed
// Hausdorff A→B within threshold declares A contained in B.
func containmentPass(chains []*chain, tol float64, logger *slog.Logger) {
	for i := range chains {
		a := chains[i]
		if a.removed {
			continue
		}
		for j := range chains {
			if i == j {
				continue
			}
			b := chains[j]
			if b.removed {
				continue
			}
			lenA, lenB := a.length(), b.length()
			if lenA > 1.1*lenB {
				continue
			}
			threshold := math.Max(5*tol, 0.04*lenA)
			d := safeHausdorffDirected(a.points(), b.points(), logger)
			if d <= threshold {
				a.markRemoved()
				break
			}
		}
	}
}

// residualPass catches remaining per-atom duplicates whose endpoints
// coincide both ways, at plain tolerance (spec §4.3.2 "Residual
// identical pairs").
func residualPass(shapes []*drawing.Shape, tol float64, logger *slog.Logger) []*drawing.Shape {
	removed := make([]bool, len(shapes))
	samples := make([][]geom.Point, len(shapes))
	for i, s := range shapes {
		samples[i] = geom.Sample(s.Path, geom.MinChainSamples)
	}
	for i := 0; i < len(shapes); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(shapes); j++ {
			if removed[j] {
				continue
			}
			if safeHausdorffSymmetric(samples[i], samples[j], logger) <= tol {
				removed[j] = true
			}
		}
	}

	var out []*drawing.Shape
	for i, s := range shapes {
		if !removed[i] {
			out = append(out, s)
		}
	}
	return out
}

// endpointsCorrespond implements spec §4.3.2 "Global endpoint
// proximity": same-order or swapped-order endpoint correspondence
// within tolerance.
func endpointsCorrespond(a, b *chain, tol float64) bool {
	sameOrder := geom.Dist(a.start, b.start) <= tol && geom.Dist(a.end, b.end) <= tol
	swapped := geom.Dist(a.start, b.end) <= tol && geom.Dist(a.end, b.start) <= tol
	return sameOrder || swapped
}

// safeHausdorffSymmetric and safeHausdorffDirected wrap the geom
// distance primitives so that any panic during distance computation
// is treated as "no overlap" (spec §4.3 "Failure semantics": any
// exception is +Inf, logged, never fatal) instead of aborting the run.
func safeHausdorffSymmetric(a, b []geom.Point, logger *slog.Logger) (d float64) {
	d = math.Inf(1)
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("overlap: hausdorff distance failed", "panic", r)
			d = math.Inf(1)
		}
	}()
	return geom.HausdorffSymmetric(a, b)
}

func safeHausdorffDirected(a, b []geom.Point, logger *slog.Logger) (d float64) {
	d = math.Inf(1)
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("overlap: directed hausdorff distance failed", "panic", r)
			d = math.Inf(1)
		}
	}()
	return geom.HausdorffDirected(a, b)
}
