package overlap

import (
	"context"
	"testing"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineShape(id string, x1, y1, x2, y2 float64, c colour.Colour) *drawing.Shape {
	return &drawing.Shape{
		ID:        id,
		Primitive: drawing.PrimPath,
		Path: geom.Path{
			{Kind: geom.CmdMove, X: x1, Y: y1},
			{Kind: geom.CmdLine, X: x2, Y: y2},
		},
		Style:     drawing.Style{Stroke: c, HasStroke: true},
		Transform: geom.Identity,
	}
}

func TestRunDuplicateLinesMergeToOne(t *testing.T) {
	d := drawing.NewDrawing()
	black := colour.Colour{}
	d.Shapes = []*drawing.Shape{
		lineShape("a", 0, 0, 10, 0, black),
		lineShape("b", 0, 0, 10, 0, black),
	}

	require.NoError(t, Run(context.Background(), d, Options{Tolerance: 0.15}))
	require.Len(t, d.Shapes, 1)
}

func TestRunCollinearOverlapMergesToCoveringSegment(t *testing.T) {
	d := drawing.NewDrawing()
	black := colour.Colour{}
	d.Shapes = []*drawing.Shape{
		lineShape("a", 0, 0, 6, 0, black),
		lineShape("b", 4, 0, 10, 0, black),
	}

	require.NoError(t, Run(context.Background(), d, Options{Tolerance: 0.15}))
	require.Len(t, d.Shapes, 1)
	start, _ := d.Shapes[0].Path.Start()
	end, _ := d.Shapes[0].Path.End()
	assert.Equal(t, geom.Point{X: 0, Y: 0}, start)
	assert.Equal(t, geom.Point{X: 10, Y: 0}, end)
}

func TestRunYJunctionNeverMerges(t *testing.T) {
	d := drawing.NewDrawing()
	black := colour.Colour{}
	d.Shapes = []*drawing.Shape{
		lineShape("a", 0, 5, 5, 5, black),
		lineShape("b", 5, 5, 10, 5, black),
		lineShape("c", 5, 5, 5, 0, black),
	}

	require.NoError(t, Run(context.Background(), d, Options{Tolerance: 0.15}))
	// a and b are parallel but their projections only touch at the
	// junction point, and c is perpendicular to both, so nothing
	// merges.
	assert.Len(t, d.Shapes, 3)
}

func TestRunDifferentColoursNeverMerge(t *testing.T) {
	d := drawing.NewDrawing()
	d.Shapes = []*drawing.Shape{
		lineShape("a", 0, 0, 10, 0, colour.Colour{R: 255}),
		lineShape("b", 0, 0, 10, 0, colour.Colour{B: 255}),
	}

	require.NoError(t, Run(context.Background(), d, Options{Tolerance: 0.15}))
	assert.Len(t, d.Shapes, 2)
}

func TestRunNilDrawing(t *testing.T) {
	assert.ErrorIs(t, Run(context.Background(), nil, Options{}), ErrNilDrawing)
}
