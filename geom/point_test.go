package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointEqual(t *testing.T) {
	a := Point{1, 2}
	b := Point{1 + 1e-12, 2 - 1e-12}
	c := Point{1.1, 2}

	assert.True(t, a.Equal(b), "within epsilon should compare equal")
	assert.False(t, a.Equal(c), "beyond epsilon should not compare equal")
}

func TestPointKeyRounds(t *testing.T) {
	a := Point{1.0000000001, 2.0000000002}
	b := Point{1.0, 2.0}
	require.Equal(t, a.Key(), b.Key(), "keys should round to the same bucket")
}

func TestPointArithmetic(t *testing.T) {
	a := Point{3, 4}
	b := Point{1, 0}

	assert.Equal(t, Point{4, 4}, a.Add(b))
	assert.Equal(t, Point{2, 4}, a.Sub(b))
	assert.InDelta(t, 5.0, a.Norm(), 1e-9)
	assert.InDelta(t, 5.0, Dist(Point{}, a), 1e-9)

	n := a.Normalize()
	assert.InDelta(t, 1.0, n.Norm(), 1e-9)
}

func TestLerp(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	mid := Lerp(a, b, 0.5)
	assert.Equal(t, Point{5, 0}, mid)
}
