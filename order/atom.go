package order

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// atom wraps one drawable shape with the cached geometry the ordering
// engine repeatedly needs: its raw start/end, its length estimate
// (spec §4.5 "Pre-step"), whether it is closed (start == end, or a
// multi-command path, which geom.Reverse leaves unchanged; in either
// case reversal is never applied), and
// whether it is currently traversed reversed.
type atom struct {
	shape    *drawing.Shape
	start    geom.Point
	end      geom.Point
	length   float64
	closed   bool
	reversed bool
}

func newAtom(s *drawing.Shape) atom {
	start, _ := s.Path.Start()
	end, _ := s.Path.End()
	return atom{
		shape:  s,
		start:  start,
		end:    end,
		length: geom.Length(s.Path),
		closed: start.Equal(end) || !s.Path.IsAtomic(),
	}
}

// effectiveStart/effectiveEnd report the atom's endpoints as actually
// traversed, honoring the reversed flag.
func (a atom) effectiveStart() geom.Point {
	if a.reversed {
		return a.end
	}
	return a.start
}

func (a atom) effectiveEnd() geom.Point {
	if a.reversed {
		return a.start
	}
	return a.end
}

// path returns the atom's Path as actually traversed.
func (a atom) path() geom.Path {
	if a.reversed {
		return geom.Reverse(a.shape.Path)
	}
	return a.shape.Path
}
