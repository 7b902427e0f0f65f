package atomize

import (
	"fmt"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// Atomize replaces every PrimPath shape in d with its atomic paths
// (spec §4.2). Atoms inherit the originating shape's layer and style;
// fill is forced off. Ids are assigned chemin1, chemin2, … in overall
// emission order across the whole drawing. Non-path shapes (already
// excluded by a preceding flatten.Flatten) are left untouched.
func Atomize(d *drawing.Drawing) error {
	if d == nil {
		return ErrNilDrawing
	}

	out := make([]*drawing.Shape, 0, len(d.Shapes))
	n := 0
	for _, s := range d.Shapes {
		if s.Primitive != drawing.PrimPath {
			out = append(out, s)
			continue
		}
		for _, atom := range Decompose(s.Path) {
			n++
			out = append(out, &drawing.Shape{
				ID:        fmt.Sprintf("chemin%d", n),
				Primitive: drawing.PrimPath,
				Path:      atom,
				Style:     drawing.Style{Stroke: s.Style.Stroke, HasStroke: s.Style.HasStroke, HasFill: false},
				Transform: geom.Identity,
				Layer:     s.Layer,
			})
		}
	}
	d.Shapes = out

	return nil
}

// Decompose splits a single flattened path into its atomic paths,
// applying the algorithm of spec §4.2 steps 2–4. p is assumed already
// absolute (true by construction: geom.Path is always absolute).
func Decompose(p geom.Path) []geom.Path {
	var atoms []geom.Path
	var cur, subpathStart geom.Point

	for i, c := range p {
		switch c.Kind {
		case geom.CmdMove:
			cur = c.End()
			subpathStart = cur

		case geom.CmdClose:
			if i != len(p)-1 {
				// Intermediate close: not materialised, the next
				// subpath's Move already handles positioning.
				cur = subpathStart
				continue
			}
			if !cur.Equal(subpathStart) {
				atoms = appendAtom(atoms, cur, geom.Command{Kind: geom.CmdLine, X: subpathStart.X, Y: subpathStart.Y})
			}
			cur = subpathStart

		default: // Line, Arc, Cubic, Quadratic
			atoms = appendAtom(atoms, cur, c)
			cur = c.End()
		}
	}

	return atoms
}

// appendAtom emits Move(start); cmd as an atomic path, unless its
// start and endpoint coincide (spec §4.2 step 4).
func appendAtom(atoms []geom.Path, start geom.Point, cmd geom.Command) []geom.Path {
	if start.Equal(cmd.End()) {
		return atoms
	}
	return append(atoms, geom.Path{
		{Kind: geom.CmdMove, X: start.X, Y: start.Y},
		cmd,
	})
}
