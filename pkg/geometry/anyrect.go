package geometry

// AnyRect is a rectangle with an arbitrary orientation: a local axis-aligned
// rectangle placed in a rotated coordinate frame. The frame's origin in
// global coordinates is Zero and its rotation is Angle. A map viewport is an
// AnyRect whose local rect is the pixel rect centered on the origin and
// scaled into global units.
type AnyRect struct {
	zero      Point
	angle     float64
	localRect Rect
}

// NewAnyRect constructs an oriented rectangle from the global origin of its
// local frame, the frame rotation in radians, and the local rectangle.
func NewAnyRect(zero Point, angle float64, localRect Rect) AnyRect {
	return AnyRect{zero: zero, angle: angle, localRect: localRect}
}

// GlobalZero returns the origin of the local frame in global coordinates.
func (r AnyRect) GlobalZero() Point {
	return r.zero
}

// Angle returns the rotation of the local frame in radians.
func (r AnyRect) Angle() float64 {
	return r.angle
}

// LocalRect returns the axis-aligned rectangle in the local frame.
func (r AnyRect) LocalRect() Rect {
	return r.localRect
}

// GlobalCenter returns the center of the rectangle in global coordinates.
func (r AnyRect) GlobalCenter() Point {
	return r.ConvertFrom(r.localRect.Center())
}

// ConvertFrom maps a point from the local frame to global coordinates.
func (r AnyRect) ConvertFrom(local Point) Point {
	return local.Rotate(r.angle).Add(r.zero)
}

// ConvertTo maps a global point into the local frame.
func (r AnyRect) ConvertTo(global Point) Point {
	return global.Sub(r.zero).Rotate(-r.angle)
}

// GlobalCorners returns the four corners of the rectangle in global
// coordinates, in local order left-top, right-top, right-bottom, left-bottom.
func (r AnyRect) GlobalCorners() [4]Point {
	lr := r.localRect
	return [4]Point{
		r.ConvertFrom(Point{X: lr.Left, Y: lr.Top}),
		r.ConvertFrom(Point{X: lr.Right, Y: lr.Top}),
		r.ConvertFrom(Point{X: lr.Right, Y: lr.Bottom}),
		r.ConvertFrom(Point{X: lr.Left, Y: lr.Bottom}),
	}
}
