package order

import (
	"testing"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
)

func straightAtomShape(id string, x1, y1, x2, y2 float64) *drawing.Shape {
	return &drawing.Shape{
		ID:        id,
		Primitive: drawing.PrimPath,
		Path: geom.Path{
			{Kind: geom.CmdMove, X: x1, Y: y1},
			{Kind: geom.CmdLine, X: x2, Y: y2},
		},
		Transform: geom.Identity,
	}
}

func TestNearestNeighbourPicksClosestFirstAndAdvancesCursor(t *testing.T) {
	far := newAtom(straightAtomShape("far", 10, 0, 11, 0))
	near := newAtom(straightAtomShape("near", 1, 0, 2, 0))

	ordered := nearestNeighbour([]atom{far, near}, geom.Point{})
	assert.Equal(t, "near", ordered[0].shape.ID)
	assert.Equal(t, "far", ordered[1].shape.ID)
}

func TestNearestNeighbourReversesWhenEndIsCloser(t *testing.T) {
	a := newAtom(straightAtomShape("a", 5, 0, 0, 0)) // end (0,0) closer to cursor than start

	ordered := nearestNeighbour([]atom{a}, geom.Point{})
	assert.True(t, ordered[0].reversed)
	assert.Equal(t, geom.Point{X: 5, Y: 0}, ordered[0].effectiveEnd())
}

func TestNearestNeighbourNeverReversesClosedAtom(t *testing.T) {
	s := &drawing.Shape{
		ID:        "loop",
		Primitive: drawing.PrimPath,
		Path: geom.Path{
			{Kind: geom.CmdMove, X: 5, Y: 5},
			{Kind: geom.CmdLine, X: 10, Y: 5},
			{Kind: geom.CmdLine, X: 5, Y: 5},
		},
		Transform: geom.Identity,
	}
	a := newAtom(s)
	assert.True(t, a.closed)

	ordered := nearestNeighbour([]atom{a}, geom.Point{X: 100, Y: 100})
	assert.False(t, ordered[0].reversed)
}
