package svgio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

func TestEncodeThenDecodeRoundTripsPathShape(t *testing.T) {
	d := drawing.NewDrawing()
	d.Root.IsLayer = true
	d.Shapes = []*drawing.Shape{
		{
			ID:        "chemin1",
			Primitive: drawing.PrimPath,
			Path:      geom.Path{{Kind: geom.CmdMove, X: 0, Y: 0}, {Kind: geom.CmdLine, X: 10, Y: 0}},
			Style:     drawing.Style{Stroke: colour.Colour{R: 255}, HasStroke: true},
			Transform: geom.Identity,
			Layer:     d.Root,
		},
	}

	var buf strings.Builder
	require.NoError(t, Encode(&buf, d))

	reread, err := Decode(strings.NewReader(buf.String()), DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, reread.Shapes, 1)
	assert.Equal(t, "chemin1", reread.Shapes[0].ID)
	assert.Equal(t, drawing.PrimPath, reread.Shapes[0].Primitive)
	assert.True(t, reread.Shapes[0].Style.HasStroke)
	assert.Equal(t, colour.Colour{R: 255}, reread.Shapes[0].Style.Stroke)
	assert.Equal(t, geom.Point{X: 10, Y: 0}, reread.Shapes[0].Path[1].End())
}

func TestEncodeNilDrawingErrors(t *testing.T) {
	var buf strings.Builder
	err := Encode(&buf, nil)
	assert.ErrorIs(t, err, ErrNilDrawing)
}

func TestEncodeMarksInkscapeLayer(t *testing.T) {
	d := drawing.NewDrawing()
	d.Root.IsLayer = true
	d.Root.Name = "Cuts"

	var buf strings.Builder
	require.NoError(t, Encode(&buf, d))
	assert.Contains(t, buf.String(), `inkscape:groupmode="layer"`)
	assert.Contains(t, buf.String(), `inkscape:label="Cuts"`)
}
