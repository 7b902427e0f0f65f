package order

import (
	"testing"

	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
)

func TestOpenAtomReversalPassFlipsWhenClearlyShorter(t *testing.T) {
	// prev ends at (0,0), next starts at (10,0); the atom's own start
	// (10,0.1) and end (0,0.1) make the reversed traversal far shorter.
	prev := newAtom(straightAtomShape("prev", -1, 0, 0, 0))
	mid := newAtom(straightAtomShape("mid", 10, 0.1, 0, 0.1))
	next := newAtom(straightAtomShape("next", 10, 0, 11, 0))

	seq := []atom{prev, mid, next}
	openAtomReversalPass(seq, geom.Point{})
	assert.True(t, seq[1].reversed)
}

func TestOpenAtomReversalPassLeavesForwardWhenAlreadyBest(t *testing.T) {
	prev := newAtom(straightAtomShape("prev", -1, 0, 0, 0))
	mid := newAtom(straightAtomShape("mid", 0, 0.1, 10, 0.1))
	next := newAtom(straightAtomShape("next", 10, 0, 11, 0))

	seq := []atom{prev, mid, next}
	openAtomReversalPass(seq, geom.Point{})
	assert.False(t, seq[1].reversed)
}

func TestOpenAtomReversalPassSkipsClosedAtoms(t *testing.T) {
	closedAtom := atom{start: geom.Point{X: 1, Y: 1}, end: geom.Point{X: 1, Y: 1}, closed: true}
	seq := []atom{closedAtom}
	openAtomReversalPass(seq, geom.Point{})
	assert.False(t, seq[0].reversed)
}
