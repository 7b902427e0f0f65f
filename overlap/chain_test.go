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

func arcShape(id string, x1, y1, x2, y2, rx, ry float64, c colour.Colour) *drawing.Shape {
	return &drawing.Shape{
		ID:        id,
		Primitive: drawing.PrimPath,
		Path: geom.Path{
			{Kind: geom.CmdMove, X: x1, Y: y1},
			{Kind: geom.CmdArc, X: x2, Y: y2, RX: rx, RY: ry},
		},
		Style:     drawing.Style{Stroke: c, HasStroke: true},
		Transform: geom.Identity,
	}
}

func TestBuildChainsJoinsTwoArcsEndToEnd(t *testing.T) {
	black := colour.Colour{}
	a := arcShape("a", 10, 0, 0, 10, 10, 10, black)
	b := arcShape("b", 0, 10, -10, 0, 10, 10, black)

	chains := buildChains([]*drawing.Shape{a, b}, 0.15)
	require.Len(t, chains, 1)
	assert.Len(t, chains[0].atoms, 2)
}

func TestRunDuplicateArcsDeduplicate(t *testing.T) {
	d := drawing.NewDrawing()
	black := colour.Colour{}
	d.Shapes = []*drawing.Shape{
		arcShape("a", 10, 0, 0, 10, 10, 10, black),
		arcShape("b", 10, 0, 0, 10, 10, 10, black),
	}

	require.NoError(t, Run(context.Background(), d, Options{Tolerance: 0.15}))
	assert.Len(t, d.Shapes, 1)
}

func TestRunFullEllipseFourArcsSurviveDistinct(t *testing.T) {
	d := drawing.NewDrawing()
	black := colour.Colour{}
	d.Shapes = []*drawing.Shape{
		arcShape("a", 10, 0, 0, -10, 10, 10, black),
		arcShape("b", 0, -10, -10, 0, 10, 10, black),
		arcShape("c", -10, 0, 0, 10, 10, 10, black),
		arcShape("d", 0, 10, 10, 0, 10, 10, black),
	}

	require.NoError(t, Run(context.Background(), d, Options{Tolerance: 0.15}))
	assert.Len(t, d.Shapes, 4)
}
