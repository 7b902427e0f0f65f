package flatten

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// BakeTransform applies s's affine transform to every coordinate in
// its Path and clears the transform to Identity (spec §4.1
// bake_transform). The caller must populate s.Path first — for a
// non-path primitive that means calling ToPath and assigning the
// result before BakeTransform runs.
func BakeTransform(s *drawing.Shape) {
	s.Path = geom.Transform(s.Path, s.Transform)
	s.Transform = geom.Identity
}

// Flatten runs the full flattener stage (spec §4.1): Ungroup, then for
// every surviving shape, ToPath (if needed) followed by BakeTransform,
// leaving every shape a transform-free Path (invariant I1).
func Flatten(d *drawing.Drawing) error {
	if err := Ungroup(d); err != nil {
		return err
	}
	for _, s := range d.Shapes {
		if s.Primitive != drawing.PrimPath {
			p, err := ToPath(s)
			if err != nil {
				return err
			}
			s.Path = p
			s.Primitive = drawing.PrimPath
		}
		BakeTransform(s)
	}

	return nil
}
