package pipeline

import (
	"context"

	"github.com/optimlaser/lasercore/atomize"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/flatten"
	"github.com/optimlaser/lasercore/geom"
	"github.com/optimlaser/lasercore/merge"
	"github.com/optimlaser/lasercore/order"
	"github.com/optimlaser/lasercore/overlap"
)

// Run executes the eight phases of spec §2 over d in place, returning
// the ordering engine's statistics. On cancellation (ctx.Err() != nil,
// observed between phases or inside the overlap/merge inner loops) it
// invokes opts.Restore with opts.Original, if set, and returns
// ErrCancelled; d is left in whatever partial state the interrupted
// phase reached, exactly as spec §7 describes ("the caller restores
// the byte-exact original file content").
func Run(ctx context.Context, d *drawing.Drawing, opts Options) (drawing.Stats, error) {
	if d == nil {
		return drawing.Stats{}, ErrNilDrawing
	}
	cfg := opts.Config
	logger := opts.logger()
	cache := geom.NewDistanceCache()

	phases := []func() error{
		func() error { greySnapshot(d); return nil },
		func() error { colourFilter(d, cfg.Palette, cfg.DeleteUnmanagedColours); return nil },
		func() error { return flatten.Flatten(d) },
		func() error { return atomize.Atomize(d) },
		func() error {
			return overlap.Run(ctx, d, overlap.Options{Tolerance: cfg.Tolerance, Logger: logger, Cache: cache})
		},
		func() error { return merge.Run(ctx, d, merge.Options{}) },
	}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return drawing.Stats{}, cancel(opts)
		}
		if err := phase(); err != nil {
			if err == context.Canceled || err == context.DeadlineExceeded {
				return drawing.Stats{}, cancel(opts)
			}
			return drawing.Stats{}, err
		}
	}

	var stats drawing.Stats
	if cfg.OptimizationEnabled {
		var err error
		stats, err = order.Run(d, order.NewOptions(cfg))
		if err != nil {
			return drawing.Stats{}, err
		}
	}

	if err := ctx.Err(); err != nil {
		return drawing.Stats{}, cancel(opts)
	}
	greyRestore(d, cfg.Palette)

	logger.Info("pipeline complete", "num_paths", stats.NumPaths, "improvement_pct", stats.ImprovementPct)
	return stats, nil
}

func cancel(opts Options) error {
	if opts.Restore != nil {
		if err := opts.Restore(opts.Original); err != nil {
			return err
		}
	}
	return ErrCancelled
}
