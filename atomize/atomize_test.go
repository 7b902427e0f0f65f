package atomize

import (
	"testing"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectPath() geom.Path {
	return geom.Path{
		{Kind: geom.CmdMove, X: 0, Y: 0},
		{Kind: geom.CmdLine, X: 10, Y: 0},
		{Kind: geom.CmdLine, X: 10, Y: 10},
		{Kind: geom.CmdLine, X: 0, Y: 10},
		{Kind: geom.CmdClose, X: 0, Y: 0},
	}
}

func TestDecomposeRectYieldsFourAtoms(t *testing.T) {
	atoms := Decompose(rectPath())
	require.Len(t, atoms, 4)
	for _, a := range atoms {
		assert.True(t, a.IsAtomic())
	}
	end, _ := atoms[3].End()
	start, _ := atoms[0].Start()
	assert.Equal(t, start, end)
}

func TestDecomposeOpenPathNoClose(t *testing.T) {
	p := geom.Path{
		{Kind: geom.CmdMove, X: 0, Y: 0},
		{Kind: geom.CmdLine, X: 5, Y: 0},
	}
	atoms := Decompose(p)
	require.Len(t, atoms, 1)
}

func TestDecomposeAlreadyClosedNoExtraLine(t *testing.T) {
	// Last command returns exactly to the subpath start: Close adds
	// nothing (step 4 drops the zero-length atom).
	p := geom.Path{
		{Kind: geom.CmdMove, X: 0, Y: 0},
		{Kind: geom.CmdLine, X: 10, Y: 0},
		{Kind: geom.CmdLine, X: 0, Y: 0},
		{Kind: geom.CmdClose, X: 0, Y: 0},
	}
	atoms := Decompose(p)
	require.Len(t, atoms, 2)
}

func TestDecomposeMultiSubpathOnlyLastCloseMaterialised(t *testing.T) {
	p := geom.Path{
		{Kind: geom.CmdMove, X: 0, Y: 0},
		{Kind: geom.CmdLine, X: 5, Y: 0},
		{Kind: geom.CmdClose, X: 0, Y: 0}, // intermediate close, dropped
		{Kind: geom.CmdMove, X: 20, Y: 20},
		{Kind: geom.CmdLine, X: 25, Y: 20},
		{Kind: geom.CmdClose, X: 20, Y: 20}, // last close, materialised
	}
	atoms := Decompose(p)
	// line(0,0->5,0), line(20,20->25,20), line(25,20->20,20)
	require.Len(t, atoms, 3)
	last := atoms[2]
	start, _ := last.Start()
	end, _ := last.End()
	assert.Equal(t, geom.Point{X: 25, Y: 20}, start)
	assert.Equal(t, geom.Point{X: 20, Y: 20}, end)
}

func TestAtomizeAssignsSequentialIdsAndForcesFillNone(t *testing.T) {
	d := drawing.NewDrawing()
	s := &drawing.Shape{
		ID:        "p1",
		Primitive: drawing.PrimPath,
		Path:      rectPath(),
		Style:     drawing.Style{HasFill: true},
		Transform: geom.Identity,
		Layer:     d.Root,
	}
	d.Shapes = append(d.Shapes, s)

	require.NoError(t, Atomize(d))
	require.Len(t, d.Shapes, 4)
	for i, a := range d.Shapes {
		assert.Equal(t, "chemin"+string(rune('1'+i)), a.ID)
		assert.False(t, a.Style.HasFill)
		assert.Same(t, d.Root, a.Layer)
	}
}

func TestAtomizeNilDrawing(t *testing.T) {
	assert.ErrorIs(t, Atomize(nil), ErrNilDrawing)
}
