package pipeline

import (
	"context"
	"testing"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectShape(id string, x, y, w, h float64, stroke colour.Colour) *drawing.Shape {
	return &drawing.Shape{
		ID:        id,
		Primitive: drawing.PrimRect,
		Geom:      drawing.Geometry{X: x, Y: y, W: w, H: h},
		Style:     drawing.Style{Stroke: stroke, HasStroke: true},
		Transform: geom.Identity,
	}
}

func testDrawing(shapes ...*drawing.Shape) *drawing.Drawing {
	d := drawing.NewDrawing()
	for _, s := range shapes {
		s.Layer = d.Root
	}
	d.Shapes = shapes
	return d
}

func TestRunProducesAtomicPathsInCutOrder(t *testing.T) {
	red := colour.Colour{R: 255}
	d := testDrawing(rectShape("r", 0, 0, 10, 10, red))

	cfg := drawing.Default()
	cfg.Palette = colour.Palette{red}
	cfg.OptimizationStrategy = drawing.StrategyNearest

	stats, err := Run(context.Background(), d, Options{Config: cfg})
	require.NoError(t, err)
	require.NotEmpty(t, d.Shapes)
	for _, s := range d.Shapes {
		assert.Equal(t, drawing.PrimPath, s.Primitive)
		assert.Equal(t, geom.Identity, s.Transform)
	}
	assert.Equal(t, len(d.Shapes), stats.NumPaths)
}

func TestRunDropsUnmanagedColoursWhenEnabled(t *testing.T) {
	red := colour.Colour{R: 255}
	green := colour.Colour{G: 255}
	d := testDrawing(
		rectShape("r", 0, 0, 10, 10, red),
		rectShape("g", 20, 20, 10, 10, green),
	)

	cfg := drawing.Default()
	cfg.Palette = colour.Palette{red}
	cfg.DeleteUnmanagedColours = true

	_, err := Run(context.Background(), d, Options{Config: cfg})
	require.NoError(t, err)
	for _, s := range d.Shapes {
		assert.Equal(t, red, s.Style.Stroke)
	}
}

func TestRunSnapshotsAndRestoresGreyShapes(t *testing.T) {
	grey := colour.Colour{R: 128, G: 128, B: 128}
	red := colour.Colour{R: 255}
	d := testDrawing(
		rectShape("engrave", 0, 0, 5, 5, grey),
		rectShape("cut", 20, 20, 5, 5, red),
	)

	cfg := drawing.Default()
	cfg.Palette = colour.Palette{red}

	_, err := Run(context.Background(), d, Options{Config: cfg})
	require.NoError(t, err)

	found := false
	for _, s := range d.Shapes {
		if s.Style.HasStroke && s.Style.Stroke.IsGrey() {
			found = true
		}
	}
	assert.True(t, found, "grey shape should be reinserted")
}

func TestRunCancellationInvokesRestoreHook(t *testing.T) {
	d := testDrawing(rectShape("r", 0, 0, 10, 10, colour.Colour{R: 255}))
	ctx, stop := context.WithCancel(context.Background())
	stop()

	restored := false
	_, err := Run(ctx, d, Options{
		Config:   drawing.Default(),
		Original: []byte("original"),
		Restore: func(b []byte) error {
			restored = true
			assert.Equal(t, []byte("original"), b)
			return nil
		},
	})
	assert.ErrorIs(t, err, ErrCancelled)
	assert.True(t, restored)
}

func TestRunNilDrawing(t *testing.T) {
	_, err := Run(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, ErrNilDrawing)
}
