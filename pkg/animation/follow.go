package animation

import (
	"math"

	"github.com/MikhayN/omim/pkg/errors"
	"github.com/MikhayN/omim/pkg/geometry"
)

// FollowAnimation moves the map plane toward a target state: up to three
// interpolators (position, angle, scale) advancing in lock-step. Their
// durations may differ, so attributes can settle at different times; the
// composite finishes when the last one does.
//
// A follow animation refuses mixing and accepts interruption.
type FollowAnimation struct {
	baseAnimation
	objects    ObjectSet
	properties PropertySet
	position   *PositionInterpolator
	angle      *AngleInterpolator
	scale      *ScaleInterpolator
}

// NewFollowAnimation creates an empty follow animation, to be filled with
// SetMove, SetRotate, and SetScale.
func NewFollowAnimation() *FollowAnimation {
	return &FollowAnimation{
		baseAnimation: newBaseAnimation(true, false),
		objects:       ObjectSet{ObjectMapPlane: true},
		properties:    PropertySet{},
	}
}

// NewFullFollowAnimation creates a follow animation over all three
// map-plane attributes. Attributes whose endpoints are equal are skipped.
func NewFullFollowAnimation(startPos, endPos geometry.Point,
	startAngle, endAngle, startScale, endScale float64, screen Screen) *FollowAnimation {
	a := NewFollowAnimation()
	a.SetMove(startPos, endPos, screen)
	a.SetRotate(startAngle, endAngle)
	a.SetScale(startScale, endScale)
	return a
}

// SetMove installs the position interpolator. A no-op when the endpoints
// are equal.
func (a *FollowAnimation) SetMove(start, end geometry.Point, screen Screen) {
	if start == end {
		return
	}
	a.position = NewPositionInterpolator(start, end, screen)
	a.properties[PropertyPosition] = true
}

// SetRotate installs the angle interpolator. A no-op when the endpoints
// are equal.
func (a *FollowAnimation) SetRotate(start, end float64) {
	if start == end {
		return
	}
	a.angle = NewAngleInterpolator(start, end)
	a.properties[PropertyAngle] = true
}

// SetScale installs the scale interpolator. A no-op when the endpoints are
// equal.
func (a *FollowAnimation) SetScale(start, end float64) {
	if start == end {
		return
	}
	a.scale = NewScaleInterpolator(start, end)
	a.properties[PropertyScale] = true
}

// SetEasing applies an easing function to every installed interpolator.
func (a *FollowAnimation) SetEasing(easing EasingFunc) {
	if a.position != nil {
		a.position.SetEasing(easing)
	}
	if a.angle != nil {
		a.angle.SetEasing(easing)
	}
	if a.scale != nil {
		a.scale.SetEasing(easing)
	}
}

// Objects returns the map plane.
func (a *FollowAnimation) Objects() ObjectSet {
	return a.objects
}

// HasObject reports whether the animation touches the object.
func (a *FollowAnimation) HasObject(object Object) bool {
	return a.objects[object]
}

// Properties returns the driven map-plane properties.
func (a *FollowAnimation) Properties(object Object) PropertySet {
	if !errors.Assert(a.HasObject(object), "animation.FollowAnimation.Properties", "animation does not touch %v", object) {
		return PropertySet{}
	}
	return a.properties
}

// HasProperty reports whether the animation drives the property on the
// object.
func (a *FollowAnimation) HasProperty(object Object, property Property) bool {
	return a.HasObject(object) && a.properties[property]
}

// Property returns the current value of a driven property.
func (a *FollowAnimation) Property(object Object, property Property) PropertyValue {
	if !errors.Assert(object == ObjectMapPlane, "animation.FollowAnimation.Property", "animation does not touch %v", object) {
		return ScalarValue(0)
	}
	switch property {
	case PropertyPosition:
		if !errors.Assert(a.position != nil, "animation.FollowAnimation.Property", "no position interpolator") {
			return PointValue(geometry.Point{})
		}
		return PointValue(a.position.Position())
	case PropertyAngle:
		if !errors.Assert(a.angle != nil, "animation.FollowAnimation.Property", "no angle interpolator") {
			return ScalarValue(0)
		}
		return ScalarValue(a.angle.Angle())
	case PropertyScale:
		if !errors.Assert(a.scale != nil, "animation.FollowAnimation.Property", "no scale interpolator") {
			return ScalarValue(0)
		}
		return ScalarValue(a.scale.Scale())
	}
	errors.Reportf("animation.FollowAnimation.Property", errors.KindContract, "unknown property %v", property)
	return ScalarValue(0)
}

// Advance steps every installed interpolator independently.
func (a *FollowAnimation) Advance(dt float64) {
	if a.angle != nil {
		a.angle.Advance(dt)
	}
	if a.scale != nil {
		a.scale.Advance(dt)
	}
	if a.position != nil {
		a.position.Advance(dt)
	}
}

// SetMaxDuration caps every installed interpolator.
func (a *FollowAnimation) SetMaxDuration(maxDuration float64) {
	if a.angle != nil {
		a.angle.SetMaxDuration(maxDuration)
	}
	if a.scale != nil {
		a.scale.SetMaxDuration(maxDuration)
	}
	if a.position != nil {
		a.position.SetMaxDuration(maxDuration)
	}
}

// Duration returns the longest of the installed interpolators' durations.
func (a *FollowAnimation) Duration() float64 {
	duration := 0.0
	if a.angle != nil {
		duration = a.angle.Duration()
	}
	if a.scale != nil {
		duration = math.Max(duration, a.scale.Duration())
	}
	if a.position != nil {
		duration = math.Max(duration, a.position.Duration())
	}
	return duration
}

// IsFinished reports whether every installed interpolator has finished.
func (a *FollowAnimation) IsFinished() bool {
	return (a.angle == nil || a.angle.IsFinished()) &&
		(a.scale == nil || a.scale.IsFinished()) &&
		(a.position == nil || a.position.IsFinished())
}

// Interrupt jumps every installed interpolator to its end state.
func (a *FollowAnimation) Interrupt() {
	if a.angle != nil {
		a.angle.Finish()
	}
	if a.scale != nil {
		a.scale.Finish()
	}
	if a.position != nil {
		a.position.Finish()
	}
}
