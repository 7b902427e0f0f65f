// Command lasercore runs the optimization pipeline (spec §2) over one
// SVG file on disk, writing the result in place or, with
// -save-as-cutting, alongside the original as "<basename> -
// decoupe<ext>" (spec §6).
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/pipeline"
	"github.com/optimlaser/lasercore/svgio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lasercore:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lasercore", flag.ExitOnError)
	input := fs.String("in", "", "path to the source SVG file")
	catalogue := fs.String("catalogue", "", "path to the colour/speed catalogue JSON file (optional)")
	tolerance := fs.Float64("tolerance", drawing.Default().Tolerance, "overlap threshold, drawing units")
	deleteUnmanaged := fs.Bool("delete-unmanaged-colours", drawing.Default().DeleteUnmanagedColours, "drop atoms outside the palette")
	saveAsCutting := fs.Bool("save-as-cutting", drawing.Default().SaveAsCutting, "emit the \" - decoupe\" sibling file instead of overwriting")
	optimize := fs.Bool("optimize", drawing.Default().OptimizationEnabled, "run the ordering engine (spec §4.5)")
	strategy := fs.String("strategy", "zoning", "ordering strategy: nearest, two_opt, zoning")
	maxIterations := fs.Int("max-iterations", drawing.Default().MaxIterations, "2-opt pass cap")
	stripDirection := fs.String("strip-direction", "columns", "zoning strip axis: rows, columns")
	stripSizeMM := fs.Float64("strip-size-mm", drawing.Default().StripSizeMM, "zoning strip width, millimetres")
	laserSpeed := fs.Float64("laser-speed-mm-s", drawing.Default().LaserSpeedMMPerS, "cut speed for the time estimate")
	idleSpeed := fs.Float64("idle-speed-mm-s", drawing.Default().IdleSpeedMMPerS, "travel speed for the time estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *input == "" {
		return svgio.ErrUnsavedSource
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := drawing.Default()
	cfg.Tolerance = *tolerance
	cfg.DeleteUnmanagedColours = *deleteUnmanaged
	cfg.SaveAsCutting = *saveAsCutting
	cfg.OptimizationEnabled = *optimize
	cfg.MaxIterations = *maxIterations
	cfg.StripSizeMM = *stripSizeMM
	cfg.LaserSpeedMMPerS = *laserSpeed
	cfg.IdleSpeedMMPerS = *idleSpeed

	var err error
	cfg.OptimizationStrategy, err = parseStrategy(*strategy)
	if err != nil {
		return err
	}
	cfg.StripDirection, err = parseStripDirection(*stripDirection)
	if err != nil {
		return err
	}

	if *catalogue != "" {
		palette, err := loadPalette(*catalogue)
		if err != nil {
			return err
		}
		if len(palette) > 0 {
			cfg.Palette = palette
		}
	}

	original, err := os.ReadFile(*input)
	if err != nil {
		return err
	}

	d, err := svgio.Decode(bytes.NewReader(original), svgio.DecodeOptions{Logger: logger})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outputPath := *input
	if cfg.SaveAsCutting {
		outputPath = svgio.CuttingOutputPath(*input)
	}

	stats, err := pipeline.Run(ctx, d, pipeline.Options{
		Config:   cfg,
		Logger:   logger,
		Original: original,
		Restore: func(original []byte) error {
			return os.WriteFile(*input, original, 0o644)
		},
	})
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := svgio.Encode(out, d); err != nil {
		return err
	}

	logger.Info("done",
		"output", outputPath,
		"num_paths", stats.NumPaths,
		"improvement_pct", stats.ImprovementPct,
		"estimated_time_s", stats.EstimatedTimeS,
	)
	return nil
}

func parseStrategy(s string) (drawing.Strategy, error) {
	switch s {
	case "nearest":
		return drawing.StrategyNearest, nil
	case "two_opt":
		return drawing.StrategyTwoOpt, nil
	case "zoning":
		return drawing.StrategyZoning, nil
	default:
		return 0, fmt.Errorf("lasercore: unknown strategy %q", s)
	}
}

func parseStripDirection(s string) (drawing.StripDirection, error) {
	switch s {
	case "rows":
		return drawing.StripRows, nil
	case "columns":
		return drawing.StripColumns, nil
	default:
		return 0, fmt.Errorf("lasercore: unknown strip direction %q", s)
	}
}

func loadPalette(path string) (colour.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cat, err := svgio.LoadCatalogue(f)
	if err != nil {
		return nil, err
	}
	return cat.Palette(), nil
}
