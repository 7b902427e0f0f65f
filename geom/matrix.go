package geom

import "math"

// Matrix is a 2D affine transform in the SVG matrix(a,b,c,d,e,f) layout:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the no-op transform.
var Identity = Matrix{A: 1, D: 1}

// IsIdentity reports whether m is (within Epsilon) the identity transform.
func (m Matrix) IsIdentity() bool {
	return approxEq(m.A, 1) && approxEq(m.B, 0) && approxEq(m.C, 0) &&
		approxEq(m.D, 1) && approxEq(m.E, 0) && approxEq(m.F, 0)
}

func approxEq(a, b float64) bool { return math.Abs(a-b) <= Epsilon }

// IsFinite reports whether every component of m is finite. A malformed
// "transform" attribute (unparsable numbers, NaN from a bad unit) is
// replaced by Identity rather than propagated (flatten §4.1 error modes).
func (m Matrix) IsFinite() bool {
	return !math.IsNaN(m.A) && !math.IsInf(m.A, 0) &&
		!math.IsNaN(m.B) && !math.IsInf(m.B, 0) &&
		!math.IsNaN(m.C) && !math.IsInf(m.C, 0) &&
		!math.IsNaN(m.D) && !math.IsInf(m.D, 0) &&
		!math.IsNaN(m.E) && !math.IsInf(m.E, 0) &&
		!math.IsNaN(m.F) && !math.IsInf(m.F, 0)
}

// Mul returns the composition m∘n, i.e. applying n first, then m — the
// layout a parent transform composes onto a child's own transform
// (flatten.ungroup: "composing the group's transform onto each child's
// transform").
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms a point by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVector transforms a vector (ignores translation) by m. Used for
// control-point deltas and for ellipse axis transforms.
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Det returns the determinant of the linear part of m. A negative
// determinant indicates the transform includes a reflection, which flips
// arc sweep direction when baked into an Arc command.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Translate returns a pure translation matrix.
func Translate(dx, dy float64) Matrix {
	return Matrix{A: 1, D: 1, E: dx, F: dy}
}

// Scale returns a pure (possibly non-uniform) scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a pure rotation matrix, angle in radians.
func Rotate(theta float64) Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// decompose2x2 performs the closed-form 2x2 SVD used by bakeArc: given
// A = [[m11,m12],[m21,m22]], returns singular values (sx,sy) and the
// rotation angle (radians) of the left singular vectors (U). The caller
// reads the ellipse's new semi-axes directly off (sx,sy) and its new
// rotation directly off the returned angle, independent of the right
// singular vectors V (the domain being transformed is always a unit
// circle, which V alone cannot distort).
func decompose2x2(m11, m12, m21, m22 float64) (sx, sy, phi float64) {
	e := (m11 + m22) / 2
	f := (m11 - m22) / 2
	g := (m21 + m12) / 2
	h := (m21 - m12) / 2

	q := math.Hypot(e, h)
	r := math.Hypot(f, g)

	sx = q + r
	sy = q - r

	a1 := math.Atan2(g, f)
	a2 := math.Atan2(h, e)

	phi = (a2 + a1) / 2
	return sx, sy, phi
}
