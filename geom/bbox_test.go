package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBBoxOf(t *testing.T) {
	b := BBoxOf([]Point{{0, 0}, {10, 5}, {-2, 3}})
	assert.Equal(t, -2.0, b.MinX)
	assert.Equal(t, 0.0, b.MinY)
	assert.Equal(t, 10.0, b.MaxX)
	assert.Equal(t, 5.0, b.MaxY)
}

func TestBBoxExpandAndOverlap(t *testing.T) {
	a := BBoxOf([]Point{{0, 0}, {1, 1}})
	b := BBoxOf([]Point{{5, 5}, {6, 6}})
	assert.False(t, a.Overlaps(b))

	expanded := a.Expand(10)
	assert.True(t, expanded.Overlaps(b))
}
