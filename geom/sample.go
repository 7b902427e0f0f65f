package geom

import "math"

// MinChainSamples is the minimum number of points the overlap engine
// samples along a curve chain before computing Hausdorff distance
// (spec §4.3.2: "sample ≥ 30 points along each chain").
const MinChainSamples = 30

// LengthSamples is the number of polyline samples used to estimate an
// atom's length (spec §4.5 pre-step: "polyline sum of 10 samples").
const LengthSamples = 10

// SampleCommand returns n points (n ≥ 2) running from start to the
// command's endpoint, uniform in the Bézier parameter for Cubic/
// Quadratic and linear along the arc's swept angle for Arc (spec
// §4.3.2: "uniformly in the Bézier parameter, linearly along arcs").
// Close and Move are treated as degenerate lines (their "end" is all
// there is).
func SampleCommand(start Point, c Command, n int) []Point {
	if n < 2 {
		n = 2
	}
	switch c.Kind {
	case CmdLine, CmdMove, CmdClose:
		return sampleLine(start, c.End(), n)
	case CmdArc:
		return sampleArc(start, c, n)
	case CmdCubic:
		return sampleCubic(start, Point{c.CX1, c.CY1}, Point{c.CX2, c.CY2}, c.End(), n)
	case CmdQuadratic:
		return sampleQuadratic(start, Point{c.CX1, c.CY1}, c.End(), n)
	}
	return sampleLine(start, c.End(), n)
}

// Sample samples an atomic path's single drawing command with n points.
// Returns nil if p is not atomic.
func Sample(p Path, n int) []Point {
	if !p.IsAtomic() {
		return nil
	}
	return SampleCommand(p[0].End(), p[1], n)
}

// Length estimates an atomic path's length as the polyline sum over
// LengthSamples samples (spec §4.5 pre-step).
func Length(p Path) float64 {
	pts := Sample(p, LengthSamples)
	return polylineLength(pts)
}

func polylineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}
	return total
}

func sampleLine(a, b Point, n int) []Point {
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = Lerp(a, b, t)
	}
	return out
}

func sampleCubic(p0, p1, p2, p3 Point, n int) []Point {
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		out[i] = Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		}
	}
	return out
}

func sampleQuadratic(p0, p1, p2 Point, n int) []Point {
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		mt := 1 - t
		a := mt * mt
		b := 2 * mt * t
		c := t * t
		out[i] = Point{
			X: a*p0.X + b*p1.X + c*p2.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y,
		}
	}
	return out
}

// sampleArc uses the standard SVG endpoint-to-center arc parameterization
// (SVG 1.1 appendix F.6.5) to sample n points uniformly in swept angle.
func sampleArc(start Point, c Command, n int) []Point {
	end := c.End()
	rx, ry := c.RX, c.RY
	if rx <= Epsilon || ry <= Epsilon || start.Equal(end) {
		return sampleLine(start, end, n)
	}
	phi := c.Rotation * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (start.X - end.X) / 2
	dy2 := (start.Y - end.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sign := 1.0
	if c.LargeArc == c.Sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if num < 0 {
		num = 0
	}
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	var co float64
	if den > Epsilon {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	theta1 := angleBetween(Point{1, 0}, Point{(x1p - cxp) / rx, (y1p - cyp) / ry})
	delta := angleBetween(
		Point{(x1p - cxp) / rx, (y1p - cyp) / ry},
		Point{(-x1p - cxp) / rx, (-y1p - cyp) / ry},
	)
	if !c.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	if c.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	out := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		theta := theta1 + delta*t
		x := cx + rx*math.Cos(theta)*cosPhi - ry*math.Sin(theta)*sinPhi
		y := cy + rx*math.Cos(theta)*sinPhi + ry*math.Sin(theta)*cosPhi
		out[i] = Point{x, y}
	}
	// Force exact endpoints to avoid accumulated trig error confusing
	// downstream endpoint-equality tests.
	out[0] = start
	out[n-1] = end
	return out
}

func angleBetween(u, v Point) float64 {
	dot := u.Dot(v)
	nu, nv := u.Norm(), v.Norm()
	if nu <= Epsilon || nv <= Epsilon {
		return 0
	}
	cosA := dot / (nu * nv)
	if cosA > 1 {
		cosA = 1
	} else if cosA < -1 {
		cosA = -1
	}
	a := math.Acos(cosA)
	if u.Cross(v) < 0 {
		a = -a
	}
	return a
}
