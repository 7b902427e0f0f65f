package geom

import "math"

// Epsilon is the absolute tolerance applied component-wise when testing
// point equality (spec: "Equality uses absolute tolerance ε = 1e-9 on
// each component").
const Epsilon = 1e-9

// hashPrecision is the number of decimal places a Point is rounded to
// before it is used as a map key (spec: "Hash rounds to 9 decimals").
const hashPrecision = 9

// Point is an immutable pair of 64-bit floats.
type Point struct {
	X, Y float64
}

// Equal reports whether a and b are within Epsilon on each axis.
func (a Point) Equal(b Point) bool {
	return math.Abs(a.X-b.X) <= Epsilon && math.Abs(a.Y-b.Y) <= Epsilon
}

// Key returns a hashable representation of p, rounded to hashPrecision
// decimals, suitable for use as a map key (endpoint graphs, critical
// point tables).
func (p Point) Key() PointKey {
	f := math.Pow(10, hashPrecision)
	return PointKey{
		X: math.Round(p.X*f) / f,
		Y: math.Round(p.Y*f) / f,
	}
}

// PointKey is the rounded, comparable form of a Point.
type PointKey struct {
	X, Y float64
}

// RoundedKey rounds p to the given number of decimal places. Used by the
// topological merger, whose critical-point detection rounds to a coarser
// precision than the general-purpose Key().
func (p Point) RoundedKey(decimals int) PointKey {
	f := math.Pow(10, float64(decimals))
	return PointKey{
		X: math.Round(p.X*f) / f,
		Y: math.Round(p.Y*f) / f,
	}
}

// Add returns a+b.
func (a Point) Add(b Point) Point { return Point{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Point) Sub(b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

// Scale returns a scaled by k.
func (a Point) Scale(k float64) Point { return Point{a.X * k, a.Y * k} }

// Dot returns the dot product of a and b.
func (a Point) Dot(b Point) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the 2D cross product (z-component) of a and b.
func (a Point) Cross(b Point) float64 { return a.X*b.Y - a.Y*b.X }

// Norm returns the Euclidean length of a.
func (a Point) Norm() float64 { return math.Hypot(a.X, a.Y) }

// Normalize returns a unit vector in the direction of a. Returns the
// zero vector for a zero-length input rather than dividing by zero.
func (a Point) Normalize() Point {
	n := a.Norm()
	if n <= Epsilon {
		return Point{}
	}
	return Point{a.X / n, a.Y / n}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp linearly interpolates between a and b at parameter t in [0,1].
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
