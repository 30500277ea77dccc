// Package geometry provides the 2D primitives the map core works in:
// points and axis-aligned rectangles in global map or pixel coordinates,
// the oriented rectangle [AnyRect], and linear interpolation helpers.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 1e-9

// Point represents a 2D point or vector. The coordinate space (global map
// units or pixels) is determined by context.
type Point struct {
	X float64
	Y float64
}

// Add returns the vector sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul returns p scaled by factor.
func (p Point) Mul(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	return other.Sub(p).Length()
}

// Rotate returns p rotated around the origin by angle radians,
// counter-clockwise.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Equal returns true if p and other are approximately equal.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) <= epsilon && math.Abs(p.Y-other.Y) <= epsilon
}

// Lerp linearly interpolates between two float64 values.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint linearly interpolates between two Point values.
func LerpPoint(a, b Point, t float64) Point {
	return Point{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}
