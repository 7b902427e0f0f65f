package flatten

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// ToPath converts a non-path primitive into an equivalent geom.Path in
// the shape's own (pre-transform) coordinate space (spec §4.1
// to_path). A shape already holding PrimPath returns a clone of its
// existing Path unchanged.
func ToPath(s *drawing.Shape) (geom.Path, error) {
	switch s.Primitive {
	case drawing.PrimPath:
		return s.Path.Clone(), nil

	case drawing.PrimLine:
		g := s.Geom
		return geom.Path{
			{Kind: geom.CmdMove, X: g.X1, Y: g.Y1},
			{Kind: geom.CmdLine, X: g.X2, Y: g.Y2},
		}, nil

	case drawing.PrimRect:
		g := s.Geom
		return geom.Path{
			{Kind: geom.CmdMove, X: g.X, Y: g.Y},
			{Kind: geom.CmdLine, X: g.X + g.W, Y: g.Y},
			{Kind: geom.CmdLine, X: g.X + g.W, Y: g.Y + g.H},
			{Kind: geom.CmdLine, X: g.X, Y: g.Y + g.H},
			{Kind: geom.CmdClose, X: g.X, Y: g.Y},
		}, nil

	case drawing.PrimPolyline:
		return polyPath(s.Geom.Points, false), nil

	case drawing.PrimPolygon:
		return polyPath(s.Geom.Points, true), nil

	case drawing.PrimCircle, drawing.PrimEllipse:
		return ellipsePath(s.Geom.CX, s.Geom.CY, s.Geom.RX, s.Geom.RY), nil

	default:
		return nil, ErrUnknownPrimitive
	}
}

func polyPath(pts []geom.Point, closed bool) geom.Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(geom.Path, 0, len(pts)+1)
	p = append(p, geom.Command{Kind: geom.CmdMove, X: pts[0].X, Y: pts[0].Y})
	for _, pt := range pts[1:] {
		p = append(p, geom.Command{Kind: geom.CmdLine, X: pt.X, Y: pt.Y})
	}
	if closed {
		p = append(p, geom.Command{Kind: geom.CmdClose, X: pts[0].X, Y: pts[0].Y})
	}
	return p
}

// ellipsePath implements the fixed four-arc policy (spec §4.1): start
// at the east cardinal point, emit four 90° arcs East→North→West→
// South→East, sweep=0, large=0, rotation=0.
func ellipsePath(cx, cy, rx, ry float64) geom.Path {
	east := geom.Point{X: cx + rx, Y: cy}
	north := geom.Point{X: cx, Y: cy - ry}
	west := geom.Point{X: cx - rx, Y: cy}
	south := geom.Point{X: cx, Y: cy + ry}

	arc := func(to geom.Point) geom.Command {
		return geom.Command{Kind: geom.CmdArc, X: to.X, Y: to.Y, RX: rx, RY: ry}
	}

	return geom.Path{
		{Kind: geom.CmdMove, X: east.X, Y: east.Y},
		arc(north),
		arc(west),
		arc(south),
		arc(east),
	}
}
