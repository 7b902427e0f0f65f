package order

import (
	"sort"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
)

// bucketByColour groups atoms by stroke colour, one bucket per
// palette entry in palette order, with unknown colours trailing in
// arbitrary (but deterministic, sorted-by-hex) order (spec §4.5
// "Pre-step"). Unstroked atoms are treated as unknown.
func bucketByColour(atoms []atom, palette colour.Palette) [][]atom {
	byIndex := make(map[int][]atom, len(palette))
	var unknown []atom

	for _, a := range atoms {
		if !a.shape.Style.HasStroke {
			unknown = append(unknown, a)
			continue
		}
		idx, ok := palette.Index(a.shape.Style.Stroke)
		if !ok {
			unknown = append(unknown, a)
			continue
		}
		byIndex[idx] = append(byIndex[idx], a)
	}

	out := make([][]atom, 0, len(palette)+1)
	for i := range palette {
		if b, ok := byIndex[i]; ok {
			out = append(out, b)
		}
	}
	if len(unknown) > 0 {
		sort.SliceStable(unknown, func(i, j int) bool {
			return unknown[i].shape.Style.Stroke.Hex() < unknown[j].shape.Style.Stroke.Hex()
		})
		out = append(out, unknown)
	}
	return out
}

// atomsFromShapes converts a drawing's atomic shapes to the ordering
// engine's working representation, skipping non-path survivors (spec
// §4.5 operates only on the atomic paths produced by earlier phases).
func atomsFromShapes(shapes []*drawing.Shape) []atom {
	out := make([]atom, 0, len(shapes))
	for _, s := range shapes {
		if s.Primitive != drawing.PrimPath {
			continue
		}
		out = append(out, newAtom(s))
	}
	return out
}
