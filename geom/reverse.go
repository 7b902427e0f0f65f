package geom

// Reverse returns the reversal of an atomic path p, per spec §9's
// contract: Line swaps endpoints; Arc swaps endpoints and complements
// Sweep; Cubic swaps endpoints and swaps its two control points; Quadratic
// swaps endpoints and keeps its single control point. Close-bearing
// (multi-command) atoms are never reversed — per spec, Reverse is only
// ever called on atomic paths; if p is not atomic it is returned
// unchanged.
func Reverse(p Path) Path {
	if !p.IsAtomic() {
		return p
	}
	move, cmd := p[0], p[1]
	oldStart := move.End()
	newEnd := cmd.End()

	out := make(Path, 2)
	out[0] = Command{Kind: CmdMove, X: newEnd.X, Y: newEnd.Y}

	switch cmd.Kind {
	case CmdLine:
		out[1] = Command{Kind: CmdLine, X: oldStart.X, Y: oldStart.Y}
	case CmdArc:
		out[1] = Command{
			Kind:     CmdArc,
			RX:       cmd.RX,
			RY:       cmd.RY,
			Rotation: cmd.Rotation,
			LargeArc: cmd.LargeArc,
			Sweep:    !cmd.Sweep,
			X:        oldStart.X,
			Y:        oldStart.Y,
		}
	case CmdCubic:
		out[1] = Command{
			Kind: CmdCubic,
			CX1:  cmd.CX2, CY1: cmd.CY2,
			CX2: cmd.CX1, CY2: cmd.CY1,
			X: oldStart.X, Y: oldStart.Y,
		}
	case CmdQuadratic:
		out[1] = Command{
			Kind: CmdQuadratic,
			CX1:  cmd.CX1, CY1: cmd.CY1,
			X: oldStart.X, Y: oldStart.Y,
		}
	default:
		return p
	}
	return out
}
