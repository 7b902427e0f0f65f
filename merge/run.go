package merge

import (
	"context"

	"github.com/optimlaser/lasercore/drawing"
)

// Run executes the topological merger (spec §4.4): critical points are
// computed once from d.Shapes as observed on entry, then the fusion
// loop recomputes mergeable pairs, builds disjoint chains, and fuses
// each until no mergeable pair remains or the iteration cap is hit.
func Run(ctx context.Context, d *drawing.Drawing, opts Options) error {
	if d == nil {
		return ErrNilDrawing
	}

	critical := criticalPoints(d.Shapes)

	for iter := 0; iter < opts.maxIterations(); iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		g := buildEndpointGraph(d.Shapes)
		points := mergeablePoints(g, critical)
		if len(points) == 0 {
			break
		}

		used := make(map[*drawing.Shape]bool)
		var chains []*chain
		for _, mp := range points {
			if used[mp.a] || used[mp.b] {
				continue
			}
			c := newSeedChain(mp)
			used[mp.a], used[mp.b] = true, true
			for c.extendForward(g, critical, used) {
			}
			for c.extendBackward(g, critical, used) {
			}
			chains = append(chains, c)
		}
		if len(chains) == 0 {
			break
		}

		out := make([]*drawing.Shape, 0, len(d.Shapes))
		for _, s := range d.Shapes {
			if !used[s] {
				out = append(out, s)
			}
		}
		for _, c := range chains {
			out = append(out, fuse(c))
		}
		d.Shapes = out
	}

	return nil
}
