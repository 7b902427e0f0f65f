package order

import (
	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
)

// maxZoningStrips bounds the banded serpentine strategy's strip count
// so a degenerate (near-zero) strip width cannot spin the loop forever.
const maxZoningStrips = 100000

// reversalThreshold is the minimum improvement (spec §4.5: "-0.01")
// a candidate move must produce before it is taken, for both the
// 2-opt local search and the post-ordering open-atom reversal pass.
const reversalThreshold = -0.01

// Options configures the ordering engine. NewOptions derives it from
// a drawing.Config. In the zero value only Palette (nil selects
// drawing.Default().Palette) and MaxIterations (0 selects 50) fall
// back to defaults; a zero Strategy is StrategyNearest, a zero
// StripWidth makes zoning use plain nearest-neighbour, and zero speeds
// leave the time estimates at 0.
type Options struct {
	Strategy         drawing.Strategy
	MaxIterations    int
	StripDirection   drawing.StripDirection
	StripWidth       float64 // drawing units; see drawing.Config.StripWidthUnits
	Palette          colour.Palette
	LaserSpeedMMPerS float64
	IdleSpeedMMPerS  float64
}

// NewOptions derives ordering Options from the pipeline configuration.
func NewOptions(cfg drawing.Config) Options {
	return Options{
		Strategy:         cfg.OptimizationStrategy,
		MaxIterations:    cfg.MaxIterations,
		StripDirection:   cfg.StripDirection,
		StripWidth:       cfg.StripWidthUnits(),
		Palette:          cfg.Palette,
		LaserSpeedMMPerS: cfg.LaserSpeedMMPerS,
		IdleSpeedMMPerS:  cfg.IdleSpeedMMPerS,
	}
}

func (o Options) maxIterations() int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return 50
}

func (o Options) asConfig() drawing.Config {
	return drawing.Config{LaserSpeedMMPerS: o.LaserSpeedMMPerS, IdleSpeedMMPerS: o.IdleSpeedMMPerS}
}
