package pipeline

import (
	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
)

// colourFilter deletes every shape whose stroke colour is not in the
// configured cutting palette (spec §2 phase 2), when enabled.
func colourFilter(d *drawing.Drawing, palette colour.Palette, enabled bool) {
	if !enabled {
		return
	}
	kept := make([]*drawing.Shape, 0, len(d.Shapes))
	for _, s := range d.Shapes {
		if s.Style.HasStroke && !palette.Contains(s.Style.Stroke) {
			continue
		}
		kept = append(kept, s)
	}
	d.Shapes = kept
}
