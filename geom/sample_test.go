package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleLineEndpoints(t *testing.T) {
	p := line(0, 0, 10, 0)
	pts := Sample(p, 10)
	require.Len(t, pts, 10)
	assert.Equal(t, Point{0, 0}, pts[0])
	assert.Equal(t, Point{10, 0}, pts[len(pts)-1])
}

func TestSampleArcEndpointsExact(t *testing.T) {
	// Quarter circle, east to north, radius 10, matches the flattener's
	// ellipse-splitting policy (spec §4.1).
	p := Path{
		{Kind: CmdMove, X: 10, Y: 0},
		{Kind: CmdArc, RX: 10, RY: 10, Rotation: 0, LargeArc: false, Sweep: false, X: 0, Y: -10},
	}
	pts := Sample(p, 30)
	require.Len(t, pts, 30)
	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, 0, pts[0].Y, 1e-9)
	assert.InDelta(t, 0, pts[len(pts)-1].X, 1e-9)
	assert.InDelta(t, -10, pts[len(pts)-1].Y, 1e-9)

	for _, pt := range pts {
		r := math.Hypot(pt.X, pt.Y)
		assert.InDelta(t, 10, r, 1e-6, "every sample should lie on the circle")
	}
}

func TestSampleCubicEndpoints(t *testing.T) {
	p := Path{
		{Kind: CmdMove, X: 0, Y: 0},
		{Kind: CmdCubic, CX1: 0, CY1: 10, CX2: 10, CY2: 10, X: 10, Y: 0},
	}
	pts := Sample(p, 30)
	assert.Equal(t, Point{0, 0}, pts[0])
	assert.Equal(t, Point{10, 0}, pts[len(pts)-1])
}

func TestLengthOfStraightLine(t *testing.T) {
	p := line(0, 0, 3, 4)
	assert.InDelta(t, 5.0, Length(p), 1e-9)
}

func TestSampleNotAtomicReturnsNil(t *testing.T) {
	p := Path{
		{Kind: CmdMove, X: 0, Y: 0},
		{Kind: CmdLine, X: 1, Y: 0},
		{Kind: CmdLine, X: 1, Y: 1},
	}
	assert.Nil(t, Sample(p, 10))
}
