package order

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// Run orders d.Shapes for minimal idle head travel (spec §4.5): atoms
// are bucketed by colour in palette order, each bucket is ordered by
// the configured strategy with the cursor carried across buckets,
// every open atom is re-examined once the full order is fixed, and
// every atom is renamed chemin1…cheminN in final cut order. Non-path
// shapes (should not occur post-atomize, but Run tolerates them) pass
// through untouched, ahead of the ordered atoms.
func Run(d *drawing.Drawing, opts Options) (drawing.Stats, error) {
	if d == nil {
		return drawing.Stats{}, ErrNilDrawing
	}

	palette := opts.Palette
	if palette == nil {
		palette = drawing.Default().Palette
	}

	var passthrough []*drawing.Shape
	for _, s := range d.Shapes {
		if s.Primitive != drawing.PrimPath {
			passthrough = append(passthrough, s)
		}
	}
	atoms := atomsFromShapes(d.Shapes)

	buckets := bucketByColour(atoms, palette)

	baselineCursor := geom.Point{}
	var baseline []atom
	for _, b := range buckets {
		baseline = append(baseline, b...)
	}
	initialIdle := idleDistance(baseline, baselineCursor)

	cursor := geom.Point{}
	var ordered []atom
	for _, bucket := range buckets {
		var strategized []atom
		switch opts.Strategy {
		case drawing.StrategyNearest:
			strategized = nearestNeighbour(bucket, cursor)
		case drawing.StrategyTwoOpt:
			strategized = twoOpt(bucket, cursor, opts.maxIterations())
		case drawing.StrategyZoning:
			strategized = zoning(bucket, cursor, opts.StripDirection, opts.StripWidth)
		default:
			strategized = nearestNeighbour(bucket, cursor)
		}
		ordered = append(ordered, strategized...)
		if len(strategized) > 0 {
			cursor = strategized[len(strategized)-1].effectiveEnd()
		}
	}

	openAtomReversalPass(ordered, geom.Point{})
	materialize(ordered)

	finalIdle := idleDistance(ordered, geom.Point{})
	cutLength := totalCutLength(ordered)

	out := make([]*drawing.Shape, 0, len(d.Shapes))
	out = append(out, passthrough...)
	for _, a := range ordered {
		out = append(out, a.shape)
	}
	d.Shapes = out

	stats := drawing.Stats{
		NumPaths:       len(ordered),
		InitialIdle:    initialIdle,
		FinalIdle:      finalIdle,
		TotalCutLength: cutLength,
	}
	stats.Finalize(opts.asConfig())
	return stats, nil
}
