package order

import (
	"testing"

	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
)

func TestTwoOptImprovesOnACrossedOrder(t *testing.T) {
	// Four unit segments laid out so that visiting them in input order
	// crosses back and forth; visiting in spatial order is shorter.
	a := newAtom(straightAtomShape("a", 0, 0, 1, 0))
	b := newAtom(straightAtomShape("b", 3, 0, 4, 0))
	c := newAtom(straightAtomShape("c", 1, 0, 2, 0))
	d := newAtom(straightAtomShape("d", 2, 0, 3, 0))

	improved := twoOpt([]atom{a, b, c, d}, geom.Point{}, 10)
	idle := idleDistance(improved, geom.Point{})
	naive := idleDistance([]atom{a, b, c, d}, geom.Point{})
	assert.LessOrEqual(t, idle, naive)
}

func TestReverseSegmentFlipsReversedFlagsAndOrder(t *testing.T) {
	a := newAtom(straightAtomShape("a", 0, 0, 1, 0))
	b := newAtom(straightAtomShape("b", 1, 0, 2, 0))
	c := newAtom(straightAtomShape("c", 2, 0, 3, 0))
	seq := []atom{a, b, c}

	reverseSegment(seq, 0, 2)
	assert.Equal(t, "c", seq[0].shape.ID)
	assert.Equal(t, "a", seq[2].shape.ID)
	assert.True(t, seq[0].reversed)
	assert.True(t, seq[1].reversed)
	assert.True(t, seq[2].reversed)
}
