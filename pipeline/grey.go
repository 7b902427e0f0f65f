package pipeline

import (
	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
)

// greySnapshot detaches every shape whose fill or stroke is grey
// (R==G==B) into d.Grey (spec §2 phase 1): these are engraving
// targets and bypass the rest of the pipeline.
func greySnapshot(d *drawing.Drawing) {
	var kept []*drawing.Shape
	for _, s := range d.Shapes {
		if isGreyShape(s) {
			d.Grey = append(d.Grey, s)
			continue
		}
		kept = append(kept, s)
	}
	d.Shapes = kept
}

func isGreyShape(s *drawing.Shape) bool {
	if s.Style.HasFill && s.Style.Fill.IsGrey() {
		return true
	}
	return s.Style.HasStroke && s.Style.Stroke.IsGrey()
}

// greyRestore reinserts the grey snapshot at the end of the drawing
// (spec §2 phase 8), making the stroke transparent (rather than
// removing it outright) when the original stroke happens to also be a
// configured cutting colour, so the engraving pass is never mistaken
// for a second cut of the same geometry while the original stroke
// colour still survives on the element (original_source's
// OptimLaser.py sets "stroke-opacity:0", not a bare stroke removal).
func greyRestore(d *drawing.Drawing, palette colour.Palette) {
	for _, s := range d.Grey {
		if s.Style.HasStroke && palette.Contains(s.Style.Stroke) {
			s.Style.Stroke.A = 0
		}
	}
	d.Shapes = append(d.Shapes, d.Grey...)
	d.Grey = nil
}
