package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHausdorffIdenticalSetsIsZero(t *testing.T) {
	a := []Point{{0, 0}, {1, 0}, {2, 0}}
	assert.Equal(t, 0.0, HausdorffDirected(a, a))
	assert.Equal(t, 0.0, HausdorffSymmetric(a, a))
}

func TestHausdorffDirectedAsymmetric(t *testing.T) {
	a := []Point{{0, 0}, {5, 0}}
	b := []Point{{0, 0}}
	// Every point of a must find its nearest in b: the point (5,0) is 5 away.
	assert.InDelta(t, 5.0, HausdorffDirected(a, b), 1e-9)
	// Every point of b trivially matches (0,0) in a.
	assert.InDelta(t, 0.0, HausdorffDirected(b, a), 1e-9)
	assert.InDelta(t, 5.0, HausdorffSymmetric(a, b), 1e-9)
}

func TestHausdorffEmptySets(t *testing.T) {
	assert.Equal(t, 0.0, HausdorffDirected(nil, []Point{{0, 0}}))
	assert.True(t, math.IsInf(HausdorffDirected([]Point{{0, 0}}, nil), 1))
}

func TestPointToSegmentDistance(t *testing.T) {
	d := PointToSegmentDistance(Point{5, 5}, Point{0, 0}, Point{10, 0})
	assert.InDelta(t, 5.0, d, 1e-9)

	// Beyond the segment's end clamps to the endpoint.
	d2 := PointToSegmentDistance(Point{20, 0}, Point{0, 0}, Point{10, 0})
	assert.InDelta(t, 10.0, d2, 1e-9)
}

func TestDistanceCacheMemoizes(t *testing.T) {
	c := NewDistanceCache()
	p, a, b := Point{5, 5}, Point{0, 0}, Point{10, 0}
	d1 := c.PointToSegment(p, a, b)
	d2 := c.PointToSegment(p, a, b)
	assert.Equal(t, d1, d2)
	c.Reset()
	assert.Empty(t, c.m)
}
