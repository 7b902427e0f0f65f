package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePathData parses an SVG 1.1 path "d" attribute into a Path,
// resolving every relative command and shorthand (H/V/S/T) to the
// absolute Move/Line/Arc/Cubic/Quadratic/Close vocabulary (spec §3
// "PathCommand"). Grounded on the token-scanning style of the
// reference parsers in oksvg/cogentcore-svg/tdewolff-canvas (none of
// those packages is the teacher; see DESIGN.md).
func ParsePathData(d string) (Path, error) {
	toks := newPathTokenizer(d)

	var out Path
	var cur, subpathStart Point
	var lastCubicCtrl, lastQuadCtrl Point
	var lastCmd byte

	for {
		cmd, ok := toks.nextCommand()
		if !ok {
			break
		}
		abs := cmd >= 'A' && cmd <= 'Z'
		lower := cmd | 0x20 // fold to lowercase for switch comparison

		switch lower {
		case 'm':
			for first := true; ; first = false {
				x, y, ok := toks.nextPair()
				if !ok {
					break
				}
				if !abs {
					x, y = cur.X+x, cur.Y+y
				}
				cur = Point{x, y}
				if first {
					subpathStart = cur
					out = append(out, Command{Kind: CmdMove, X: cur.X, Y: cur.Y})
				} else {
					// Subsequent pairs after an initial moveto are
					// implicit linetos (SVG 1.1 §8.3.2).
					out = append(out, Command{Kind: CmdLine, X: cur.X, Y: cur.Y})
				}
				if !toks.moreArgs() {
					break
				}
			}
		case 'l':
			for {
				x, y, ok := toks.nextPair()
				if !ok {
					break
				}
				if !abs {
					x, y = cur.X+x, cur.Y+y
				}
				cur = Point{x, y}
				out = append(out, Command{Kind: CmdLine, X: cur.X, Y: cur.Y})
				if !toks.moreArgs() {
					break
				}
			}
		case 'h':
			for {
				x, ok := toks.nextNum()
				if !ok {
					break
				}
				if !abs {
					x = cur.X + x
				}
				cur = Point{x, cur.Y}
				out = append(out, Command{Kind: CmdLine, X: cur.X, Y: cur.Y})
				if !toks.moreArgs() {
					break
				}
			}
		case 'v':
			for {
				y, ok := toks.nextNum()
				if !ok {
					break
				}
				if !abs {
					y = cur.Y + y
				}
				cur = Point{cur.X, y}
				out = append(out, Command{Kind: CmdLine, X: cur.X, Y: cur.Y})
				if !toks.moreArgs() {
					break
				}
			}
		case 'c':
			for {
				x1, y1, ok1 := toks.nextPair()
				x2, y2, ok2 := toks.nextPair()
				x, y, ok3 := toks.nextPair()
				if !ok1 || !ok2 || !ok3 {
					break
				}
				if !abs {
					x1, y1 = cur.X+x1, cur.Y+y1
					x2, y2 = cur.X+x2, cur.Y+y2
					x, y = cur.X+x, cur.Y+y
				}
				out = append(out, Command{Kind: CmdCubic, CX1: x1, CY1: y1, CX2: x2, CY2: y2, X: x, Y: y})
				lastCubicCtrl = Point{x2, y2}
				cur = Point{x, y}
				if !toks.moreArgs() {
					break
				}
			}
		case 's':
			for {
				x2, y2, ok1 := toks.nextPair()
				x, y, ok2 := toks.nextPair()
				if !ok1 || !ok2 {
					break
				}
				if !abs {
					x2, y2 = cur.X+x2, cur.Y+y2
					x, y = cur.X+x, cur.Y+y
				}
				x1, y1 := reflect(lastCubicCtrl, cur, lastCmd == 'c' || lastCmd == 's')
				out = append(out, Command{Kind: CmdCubic, CX1: x1, CY1: y1, CX2: x2, CY2: y2, X: x, Y: y})
				lastCubicCtrl = Point{x2, y2}
				cur = Point{x, y}
				if !toks.moreArgs() {
					break
				}
			}
		case 'q':
			for {
				x1, y1, ok1 := toks.nextPair()
				x, y, ok2 := toks.nextPair()
				if !ok1 || !ok2 {
					break
				}
				if !abs {
					x1, y1 = cur.X+x1, cur.Y+y1
					x, y = cur.X+x, cur.Y+y
				}
				out = append(out, Command{Kind: CmdQuadratic, CX1: x1, CY1: y1, X: x, Y: y})
				lastQuadCtrl = Point{x1, y1}
				cur = Point{x, y}
				if !toks.moreArgs() {
					break
				}
			}
		case 't':
			for {
				x, y, ok := toks.nextPair()
				if !ok {
					break
				}
				if !abs {
					x, y = cur.X+x, cur.Y+y
				}
				x1, y1 := reflect(lastQuadCtrl, cur, lastCmd == 'q' || lastCmd == 't')
				out = append(out, Command{Kind: CmdQuadratic, CX1: x1, CY1: y1, X: x, Y: y})
				lastQuadCtrl = Point{x1, y1}
				cur = Point{x, y}
				if !toks.moreArgs() {
					break
				}
			}
		case 'a':
			for {
				rx, ry, ok1 := toks.nextPair()
				rot, ok2 := toks.nextNum()
				large, ok3 := toks.nextFlag()
				sweep, ok4 := toks.nextFlag()
				x, y, ok5 := toks.nextPair()
				if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
					break
				}
				if !abs {
					x, y = cur.X+x, cur.Y+y
				}
				out = append(out, Command{Kind: CmdArc, RX: rx, RY: ry, Rotation: rot, LargeArc: large, Sweep: sweep, X: x, Y: y})
				cur = Point{x, y}
				if !toks.moreArgs() {
					break
				}
			}
		case 'z':
			out = append(out, Command{Kind: CmdClose})
			cur = subpathStart
		default:
			return nil, fmt.Errorf("%w: unsupported command %q", ErrMalformedPath, string(cmd))
		}
		lastCmd = lower
	}

	if len(out) == 0 || out[0].Kind != CmdMove {
		return nil, ErrMalformedPath
	}
	return out, nil
}

// reflect returns the control point mirrored through pivot when the
// previous command was the same Bézier family (SVG 1.1 §8.3.6/8.3.8),
// otherwise pivot itself (treated as a coincident control point).
func reflect(prevCtrl, pivot Point, chain bool) (float64, float64) {
	if !chain {
		return pivot.X, pivot.Y
	}
	return 2*pivot.X - prevCtrl.X, 2*pivot.Y - prevCtrl.Y
}

// Encode renders p back to an SVG 1.1 path "d" attribute string, one
// absolute command per token (no shorthand), so every serialized path
// round-trips byte-for-byte through ParsePathData modulo formatting.
func (p Path) Encode() string {
	var b strings.Builder
	for _, c := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch c.Kind {
		case CmdMove:
			fmt.Fprintf(&b, "M%s,%s", f(c.X), f(c.Y))
		case CmdLine:
			fmt.Fprintf(&b, "L%s,%s", f(c.X), f(c.Y))
		case CmdArc:
			fmt.Fprintf(&b, "A%s,%s %s %d,%d %s,%s",
				f(c.RX), f(c.RY), f(c.Rotation), boolInt(c.LargeArc), boolInt(c.Sweep), f(c.X), f(c.Y))
		case CmdCubic:
			fmt.Fprintf(&b, "C%s,%s %s,%s %s,%s", f(c.CX1), f(c.CY1), f(c.CX2), f(c.CY2), f(c.X), f(c.Y))
		case CmdQuadratic:
			fmt.Fprintf(&b, "Q%s,%s %s,%s", f(c.CX1), f(c.CY1), f(c.X), f(c.Y))
		case CmdClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func f(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// pathTokenizer scans an SVG path-data string into commands and
// numbers, tolerating the grammar's optional comma/whitespace
// separators and the "flag" digit shorthand (no separator required
// between two consecutive 0/1 flags).
type pathTokenizer struct {
	s   string
	pos int
}

func newPathTokenizer(s string) *pathTokenizer { return &pathTokenizer{s: s} }

func (t *pathTokenizer) skipSep() {
	for t.pos < len(t.s) {
		c := t.s[t.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ',' {
			t.pos++
			continue
		}
		break
	}
}

func (t *pathTokenizer) nextCommand() (byte, bool) {
	t.skipSep()
	if t.pos >= len(t.s) {
		return 0, false
	}
	c := t.s[t.pos]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		t.pos++
		return c, true
	}
	return 0, false
}

// moreArgs reports whether another argument group follows before the
// next command letter (commands may repeat their argument tuple).
func (t *pathTokenizer) moreArgs() bool {
	t.skipSep()
	if t.pos >= len(t.s) {
		return false
	}
	c := t.s[t.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (t *pathTokenizer) nextNum() (float64, bool) {
	t.skipSep()
	start := t.pos
	if t.pos < len(t.s) && (t.s[t.pos] == '-' || t.s[t.pos] == '+') {
		t.pos++
	}
	sawDigitOrDot := false
	for t.pos < len(t.s) {
		c := t.s[t.pos]
		if c >= '0' && c <= '9' {
			sawDigitOrDot = true
			t.pos++
			continue
		}
		if c == '.' {
			sawDigitOrDot = true
			t.pos++
			continue
		}
		if (c == 'e' || c == 'E') && t.pos > start {
			t.pos++
			if t.pos < len(t.s) && (t.s[t.pos] == '-' || t.s[t.pos] == '+') {
				t.pos++
			}
			continue
		}
		break
	}
	if !sawDigitOrDot {
		t.pos = start
		return 0, false
	}
	v, err := strconv.ParseFloat(t.s[start:t.pos], 64)
	if err != nil {
		t.pos = start
		return 0, false
	}
	return v, true
}

func (t *pathTokenizer) nextPair() (float64, float64, bool) {
	x, ok := t.nextNum()
	if !ok {
		return 0, 0, false
	}
	t.skipSep()
	y, ok := t.nextNum()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

// nextFlag reads a single 0/1 digit, the arc command's compact
// boolean encoding (SVG 1.1 §8.3.8): no separator is required before
// the next token.
func (t *pathTokenizer) nextFlag() (bool, bool) {
	t.skipSep()
	if t.pos >= len(t.s) {
		return false, false
	}
	c := t.s[t.pos]
	if c != '0' && c != '1' {
		return false, false
	}
	t.pos++
	return c == '1', true
}
