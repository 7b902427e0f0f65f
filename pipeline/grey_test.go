package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
)

func TestGreyRestoreZeroesAlphaWhenStrokeIsACuttingColour(t *testing.T) {
	red := colour.Colour{R: 255, A: 255}
	s := &drawing.Shape{Style: drawing.Style{Stroke: red, HasStroke: true}}
	d := drawing.NewDrawing()
	d.Grey = []*drawing.Shape{s}

	greyRestore(d, colour.Palette{red})

	assert.True(t, s.Style.HasStroke, "stroke is blanked via opacity, not removed")
	assert.Equal(t, uint8(255), s.Style.Stroke.R, "original stroke colour survives")
	assert.Equal(t, uint8(0), s.Style.Stroke.A, "alpha zeroed to hide the duplicate engraving stroke")
}

func TestGreyRestoreLeavesNonPaletteStrokeUntouched(t *testing.T) {
	grey := colour.Colour{R: 128, G: 128, B: 128, A: 255}
	s := &drawing.Shape{Style: drawing.Style{Stroke: grey, HasStroke: true}}
	d := drawing.NewDrawing()
	d.Grey = []*drawing.Shape{s}

	greyRestore(d, colour.Palette{{R: 255}})

	assert.Equal(t, uint8(255), s.Style.Stroke.A)
}
