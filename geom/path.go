package geom

import "math"

// CommandKind tags the variant a Command holds.
type CommandKind int

const (
	// CmdMove starts a new subpath at (X,Y).
	CmdMove CommandKind = iota
	// CmdLine draws a straight line to (X,Y).
	CmdLine
	// CmdArc draws an elliptical arc to (X,Y).
	CmdArc
	// CmdCubic draws a cubic Bézier to (X,Y) via control points (CX1,CY1),(CX2,CY2).
	CmdCubic
	// CmdQuadratic draws a quadratic Bézier to (X,Y) via control point (CX1,CY1).
	CmdQuadratic
	// CmdClose closes the current subpath back to its most recent Move.
	CmdClose
)

func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "Move"
	case CmdLine:
		return "Line"
	case CmdArc:
		return "Arc"
	case CmdCubic:
		return "Cubic"
	case CmdQuadratic:
		return "Quadratic"
	case CmdClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Command is a single path drawing instruction, always in absolute
// coordinates. Which fields are meaningful depends on Kind:
//
//	Move, Line:        X, Y
//	Arc:                RX, RY, Rotation, LargeArc, Sweep, X, Y
//	Cubic:              CX1, CY1, CX2, CY2, X, Y
//	Quadratic:          CX1, CY1, X, Y
//	Close:              (no fields)
type Command struct {
	Kind CommandKind

	X, Y float64 // endpoint, meaningless for Close

	// Arc fields.
	RX, RY, Rotation float64
	LargeArc, Sweep  bool

	// Bézier control points. Cubic uses both; Quadratic uses CX1/CY1 only.
	CX1, CY1, CX2, CY2 float64
}

// End returns the command's endpoint. Close has no endpoint of its own;
// callers resolve it against the owning subpath's Move.
func (c Command) End() Point { return Point{c.X, c.Y} }

// Path is an ordered sequence of commands. By invariant the first command
// is always Move, and a non-Close command's start equals the previous
// command's end.
type Path []Command

// Start returns the path's starting point (the first Move's target).
// Returns the zero Point and false for an empty path.
func (p Path) Start() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0].End(), true
}

// End returns the path's final endpoint, resolving a trailing Close
// against the most recent Move. Returns the zero Point and false for an
// empty path.
func (p Path) End() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	last := p[len(p)-1]
	if last.Kind == CmdClose {
		// Resolve against the most recent Move.
		for i := len(p) - 1; i >= 0; i-- {
			if p[i].Kind == CmdMove {
				return p[i].End(), true
			}
		}
		return Point{}, false
	}
	return last.End(), true
}

// IsAtomic reports whether p is exactly Move followed by one non-Close
// drawing command whose endpoint differs from the Move (spec §3: "A path
// is atomic when it has exactly two commands... whose endpoint differs
// from the Move").
func (p Path) IsAtomic() bool {
	if len(p) != 2 {
		return false
	}
	if p[0].Kind != CmdMove {
		return false
	}
	if p[1].Kind == CmdMove || p[1].Kind == CmdClose {
		return false
	}
	return !p[0].End().Equal(p[1].End())
}

// Kind returns the drawing-command kind of an atomic path's sole
// command ('L', 'A', 'C', or 'Q'), matching spec's path_type field.
// Returns 0 and false if p is not atomic.
func (p Path) Kind() (rune, bool) {
	if !p.IsAtomic() {
		return 0, false
	}
	switch p[1].Kind {
	case CmdLine:
		return 'L', true
	case CmdArc:
		return 'A', true
	case CmdCubic:
		return 'C', true
	case CmdQuadratic:
		return 'Q', true
	}
	return 0, false
}

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Transform applies m to every point in p (endpoints and control points),
// correctly re-deriving arc radii and rotation under non-uniform scale
// and rotation (spec §4.1 bake_transform). Close commands carry no
// coordinates and pass through unchanged.
func Transform(p Path, m Matrix) Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	out := make(Path, len(p))
	var subpathStart Point
	var cur Point
	for i, c := range p {
		switch c.Kind {
		case CmdMove:
			np := m.Apply(c.End())
			out[i] = Command{Kind: CmdMove, X: np.X, Y: np.Y}
			subpathStart, cur = np, np
		case CmdLine:
			np := m.Apply(c.End())
			out[i] = Command{Kind: CmdLine, X: np.X, Y: np.Y}
			cur = np
		case CmdClose:
			out[i] = Command{Kind: CmdClose}
			cur = subpathStart
		case CmdCubic:
			c1 := m.Apply(Point{c.CX1, c.CY1})
			c2 := m.Apply(Point{c.CX2, c.CY2})
			np := m.Apply(c.End())
			out[i] = Command{Kind: CmdCubic, CX1: c1.X, CY1: c1.Y, CX2: c2.X, CY2: c2.Y, X: np.X, Y: np.Y}
			cur = np
		case CmdQuadratic:
			c1 := m.Apply(Point{c.CX1, c.CY1})
			np := m.Apply(c.End())
			out[i] = Command{Kind: CmdQuadratic, CX1: c1.X, CY1: c1.Y, X: np.X, Y: np.Y}
			cur = np
		case CmdArc:
			out[i] = transformArc(cur, c, m)
			cur = out[i].End()
		}
	}
	return out
}

// transformArc bakes m into an Arc command by converting to center
// parameterization, transforming the ellipse's defining matrix, and
// reading the new radii/rotation off its 2x2 SVD (see decompose2x2).
func transformArc(start Point, c Command, m Matrix) Command {
	end := c.End()
	newEnd := m.Apply(end)

	rx, ry := c.RX, c.RY
	if rx <= 0 || ry <= 0 {
		// Degenerate radius: treat as a transformed line.
		return Command{Kind: CmdArc, RX: 0, RY: 0, X: newEnd.X, Y: newEnd.Y, Sweep: c.Sweep, LargeArc: c.LargeArc}
	}
	phi := c.Rotation * math.Pi / 180

	// Ellipse-defining matrix E = R(phi) * diag(rx, ry).
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	e11, e12 := cosPhi*rx, -sinPhi*ry
	e21, e22 := sinPhi*rx, cosPhi*ry

	// A = linear(m) * E
	lin := m.ApplyVector
	col1 := lin(Point{e11, e21})
	col2 := lin(Point{e12, e22})
	a11, a21 := col1.X, col1.Y
	a12, a22 := col2.X, col2.Y

	newRx, newRy, newRot := decompose2x2(a11, a12, a21, a22)
	newRx, newRy = math.Abs(newRx), math.Abs(newRy)

	sweep := c.Sweep
	if m.Det() < 0 {
		sweep = !sweep
	}

	return Command{
		Kind:     CmdArc,
		RX:       newRx,
		RY:       newRy,
		Rotation: newRot * 180 / math.Pi,
		LargeArc: c.LargeArc,
		Sweep:    sweep,
		X:        newEnd.X,
		Y:        newEnd.Y,
	}
}
