package drawing

import "github.com/optimlaser/lasercore/colour"

// Strategy selects the ordering engine's per-colour optimization
// strategy (spec §4.5, §6 optimization_strategy).
type Strategy int

const (
	// StrategyNearest is greedy nearest-neighbour from a running cursor.
	StrategyNearest Strategy = iota
	// StrategyTwoOpt is nearest-neighbour followed by 2-opt local search.
	StrategyTwoOpt
	// StrategyZoning is banded serpentine ordering.
	StrategyZoning
)

// StripDirection selects the axis banded serpentine ordering strips
// along (spec §6 strip_direction).
type StripDirection int

const (
	StripColumns StripDirection = iota // strips are vertical bands along X
	StripRows                          // strips are horizontal bands along Y
)

// mmToUnits is the fixed SVG user-unit-per-millimetre factor spec §4.5
// names explicitly: "1 mm = 3.7795275591 drawing units".
const mmToUnits = 3.7795275591

// MMToUnits converts a millimetre measurement to drawing units.
func MMToUnits(mm float64) float64 { return mm * mmToUnits }

// Config is the pipeline configuration record (spec §6). Every field is
// optional; Default returns spec's stated defaults.
type Config struct {
	Tolerance               float64
	Palette                 colour.Palette
	DeleteUnmanagedColours  bool
	SaveAsCutting           bool
	OptimizationEnabled     bool
	OptimizationStrategy    Strategy
	MaxIterations           int
	StripDirection          StripDirection
	StripSizeMM             float64
	LaserSpeedMMPerS        float64
	IdleSpeedMMPerS         float64
}

// Default returns the configuration spec §6 names as defaults.
func Default() Config {
	return Config{
		Tolerance:              0.15,
		Palette:                colour.DefaultPalette,
		DeleteUnmanagedColours: true,
		SaveAsCutting:          true,
		OptimizationEnabled:    true,
		OptimizationStrategy:   StrategyZoning,
		MaxIterations:          50,
		StripDirection:         StripColumns,
		StripSizeMM:            10.0,
		LaserSpeedMMPerS:       25,
		IdleSpeedMMPerS:        2800,
	}
}

// StripWidthUnits returns the configured strip width converted to
// drawing units, for the zoning strategy.
func (c Config) StripWidthUnits() float64 {
	return MMToUnits(c.StripSizeMM)
}
