package overlap

import (
	"log/slog"

	"github.com/optimlaser/lasercore/geom"
)

// Options configures a Run invocation (spec §4.3, §6).
type Options struct {
	// Tolerance is the overlap distance threshold in drawing units.
	// pipeline.Run passes drawing.Config.Tolerance (0.15 by default);
	// Run uses the value as given, so zero matches only exact overlaps.
	Tolerance float64

	// Logger receives non-fatal distance-computation failures (spec
	// §4.3 "Failure semantics"). Defaults to slog.Default().
	Logger *slog.Logger

	// Cache memoises point-to-segment distances for the run (spec §5
	// "Shared resources"). Optional; nil computes uncached.
	Cache *geom.DistanceCache
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
