package order

import (
	"testing"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrdersAndRenamesAtomsChemin(t *testing.T) {
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		straightAtomShape("x", 10, 10, 11, 10),
		straightAtomShape("y", 0, 0, 1, 0),
	}

	stats, err := Run(d, Options{Strategy: drawing.StrategyNearest})
	require.NoError(t, err)
	require.Len(t, d.Shapes, 2)
	assert.Equal(t, "chemin1", d.Shapes[0].ID)
	assert.Equal(t, "chemin2", d.Shapes[1].ID)
	assert.Equal(t, 2, stats.NumPaths)
}

func TestRunColourBucketsFollowPaletteOrder(t *testing.T) {
	red := colour.Colour{R: 255}
	blue := colour.Colour{B: 255}
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		colouredAtomShape("r", red, true),
		colouredAtomShape("b", blue, true),
	}

	_, err := Run(d, Options{Strategy: drawing.StrategyNearest, Palette: colour.Palette{blue, red}})
	require.NoError(t, err)
	require.Len(t, d.Shapes, 2)
	assert.Equal(t, blue, d.Shapes[0].Style.Stroke)
	assert.Equal(t, red, d.Shapes[1].Style.Stroke)
}

func TestRunStatsReflectImprovement(t *testing.T) {
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		straightAtomShape("far", 100, 0, 101, 0),
		straightAtomShape("near", 1, 0, 2, 0),
	}

	stats, err := Run(d, Options{Strategy: drawing.StrategyNearest})
	require.NoError(t, err)
	assert.LessOrEqual(t, stats.FinalIdle, stats.InitialIdle)
}

func TestRunTwoOptStrategy(t *testing.T) {
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		straightAtomShape("a", 0, 0, 1, 0),
		straightAtomShape("b", 3, 0, 4, 0),
		straightAtomShape("c", 1, 0, 2, 0),
		straightAtomShape("d", 2, 0, 3, 0),
	}

	stats, err := Run(d, Options{Strategy: drawing.StrategyTwoOpt, MaxIterations: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.NumPaths)
}

func TestRunZoningStrategy(t *testing.T) {
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		straightAtomShape("left", 0, 0, 0, 1),
		straightAtomShape("right", 20, 0, 20, 1),
	}

	stats, err := Run(d, Options{Strategy: drawing.StrategyZoning, StripWidth: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.NumPaths)
}

func TestRunClosedAtomNeverReversedByFinalPass(t *testing.T) {
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		{
			ID:        "loop",
			Primitive: drawing.PrimPath,
			Path: geom.Path{
				{Kind: geom.CmdMove, X: 5, Y: 5},
				{Kind: geom.CmdLine, X: 10, Y: 5},
				{Kind: geom.CmdLine, X: 5, Y: 5},
			},
			Transform: geom.Identity,
		},
	}

	_, err := Run(d, Options{Strategy: drawing.StrategyNearest})
	require.NoError(t, err)
	start, _ := d.Shapes[0].Path.Start()
	assert.Equal(t, geom.Point{X: 5, Y: 5}, start)
}

func TestRunNilDrawing(t *testing.T) {
	_, err := Run(nil, Options{})
	assert.ErrorIs(t, err, ErrNilDrawing)
}
