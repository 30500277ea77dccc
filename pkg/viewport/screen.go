// Package viewport provides the Screen converter between global map
// coordinates and pixel coordinates. The animation core consumes it through
// the animation.Screen interface; the render loop owns the single live
// instance and commits animated state back into it every frame.
package viewport

import (
	"github.com/MikhayN/omim/pkg/errors"
	"github.com/MikhayN/omim/pkg/geometry"
)

// Screen models the map viewport: a pixel rectangle looking at a region of
// the global map plane, with a center position, a rotation angle, and a
// scale in global units per pixel.
type Screen struct {
	pixelRect geometry.Rect
	center    geometry.Point
	angle     float64
	scale     float64
}

// New creates a screen over the given pixel rectangle with scale 1, no
// rotation, and the global center aligned with the pixel center, so that
// GtoP starts out as the identity mapping.
func New(pixelRect geometry.Rect) *Screen {
	return &Screen{
		pixelRect: pixelRect,
		center:    pixelRect.Center(),
		scale:     1,
	}
}

// PixelRect returns the viewport rectangle in pixel coordinates.
func (s *Screen) PixelRect() geometry.Rect {
	return s.pixelRect
}

// Center returns the global point at the center of the viewport.
func (s *Screen) Center() geometry.Point {
	return s.center
}

// Angle returns the viewport rotation in radians.
func (s *Screen) Angle() float64 {
	return s.angle
}

// Scale returns the viewport scale in global units per pixel.
func (s *Screen) Scale() float64 {
	return s.scale
}

// SetCenter moves the viewport to look at the given global point.
func (s *Screen) SetCenter(center geometry.Point) {
	s.center = center
}

// SetAngle sets the viewport rotation in radians.
func (s *Screen) SetAngle(angle float64) {
	s.angle = angle
}

// SetScale sets the viewport scale in global units per pixel.
// A non-positive scale is a contract violation and is ignored.
func (s *Screen) SetScale(scale float64) {
	if !errors.Assert(scale > 0, "viewport.Screen.SetScale", "scale must be positive, got %v", scale) {
		return
	}
	s.scale = scale
}

// SetPixelRect resizes the viewport rectangle, keeping center, angle, and
// scale unchanged.
func (s *Screen) SetPixelRect(pixelRect geometry.Rect) {
	s.pixelRect = pixelRect
}

// GtoP converts a global point to pixel coordinates.
func (s *Screen) GtoP(global geometry.Point) geometry.Point {
	local := global.Sub(s.center).Rotate(-s.angle).Mul(1 / s.scale)
	return s.pixelRect.Center().Add(local)
}

// PtoG converts a pixel point to global coordinates.
func (s *Screen) PtoG(pixel geometry.Point) geometry.Point {
	local := pixel.Sub(s.pixelRect.Center()).Mul(s.scale).Rotate(s.angle)
	return s.center.Add(local)
}

// GlobalRect returns the viewport as an oriented rectangle in global
// coordinates: the pixel rect centered on the origin, scaled into global
// units, placed at the viewport center with the viewport rotation.
func (s *Screen) GlobalRect() geometry.AnyRect {
	local := s.pixelRect.Translated(s.pixelRect.Center().Mul(-1)).Scaled(s.scale)
	return geometry.NewAnyRect(s.center, s.angle, local)
}

// SetFromRect commits an oriented viewport rectangle, as produced by the
// animation system, back into the screen state.
func (s *Screen) SetFromRect(rect geometry.AnyRect) {
	s.center = rect.GlobalZero()
	s.angle = rect.Angle()
	if w := s.pixelRect.Width(); w > 0 {
		s.SetScale(rect.LocalRect().Width() / w)
	}
}
