package animation

import (
	"math"

	"github.com/MikhayN/omim/pkg/errors"
	"github.com/MikhayN/omim/pkg/geometry"
)

// durationEps is the tolerance below which a visual difference is treated
// as no motion at all.
const durationEps = 1e-5

// EasingFunc maps linear progress in [0, 1] to eased progress in [0, 1].
// The functions in github.com/fogleman/ease satisfy this signature.
type EasingFunc func(float64) float64

// Screen is the viewport converter the animation core consults. It is
// implemented by viewport.Screen; the core only calls conversion and size
// queries and never mutates it.
type Screen interface {
	PixelRect() geometry.Rect
	GtoP(geometry.Point) geometry.Point
	Scale() float64
	Angle() float64
	GlobalRect() geometry.AnyRect
}

// Interpolator carries the time accounting shared by all concrete
// interpolators: elapsed time, an optional start delay, and a duration.
// Progress t is 0 until the delay has passed, then grows linearly to 1
// over the duration. An optional easing function shapes the value mapping
// without affecting the time accounting.
type Interpolator struct {
	elapsed  float64
	delay    float64
	duration float64
	easing   EasingFunc
	finished bool
}

// NewInterpolator creates an interpolator with the given duration and
// delay, both in seconds. Negative values are contract violations and are
// clamped to 0.
func NewInterpolator(duration, delay float64) Interpolator {
	if !errors.Assert(duration >= 0, "animation.NewInterpolator", "negative duration %v", duration) {
		duration = 0
	}
	if !errors.Assert(delay >= 0, "animation.NewInterpolator", "negative delay %v", delay) {
		delay = 0
	}
	return Interpolator{duration: duration, delay: delay}
}

// Advance adds dt seconds of elapsed time. Negative dt is a contract
// violation and is ignored.
func (i *Interpolator) Advance(dt float64) {
	if !errors.Assert(dt >= 0, "animation.Interpolator.Advance", "negative dt %v", dt) {
		return
	}
	i.elapsed += dt
}

// SetMaxDuration clamps the duration to at most maxDuration. The duration
// never grows. System does not call it; the cap is applied only when a
// caller invokes it.
func (i *Interpolator) SetMaxDuration(maxDuration float64) {
	if !errors.Assert(maxDuration >= 0, "animation.Interpolator.SetMaxDuration", "negative duration %v", maxDuration) {
		return
	}
	i.duration = math.Min(i.duration, maxDuration)
}

// SetEasing installs an easing function applied to the value mapping.
// A nil easing means linear motion.
func (i *Interpolator) SetEasing(easing EasingFunc) {
	i.easing = easing
}

// T returns the normalized linear progress in [0, 1]. A finished or
// zero-duration interpolator reports 1.
func (i *Interpolator) T() float64 {
	if i.IsFinished() || i.duration <= 0 {
		return 1
	}
	return math.Max(i.elapsed-i.delay, 0) / i.duration
}

// easedT returns the progress shaped by the easing function, if any.
func (i *Interpolator) easedT() float64 {
	t := i.T()
	if i.easing == nil {
		return t
	}
	return i.easing(t)
}

// IsFinished returns true once the elapsed time has passed delay plus
// duration, or after Finish.
func (i *Interpolator) IsFinished() bool {
	return i.finished || i.elapsed > i.duration+i.delay
}

// Finish jumps the interpolator to its terminal state.
func (i *Interpolator) Finish() {
	i.elapsed = math.Max(i.elapsed, i.duration+i.delay)
	i.finished = true
}

// Duration returns the duration in seconds, excluding the delay.
func (i *Interpolator) Duration() float64 {
	return i.duration
}

// ElapsedTime returns the accumulated elapsed time in seconds.
func (i *Interpolator) ElapsedTime() float64 {
	return i.elapsed
}

// speedDuration converts a visual difference and a speed into a duration,
// treating differences below durationEps as instantaneous.
func speedDuration(diff, speed float64) float64 {
	if math.Abs(diff) < durationEps {
		return 0
	}
	return math.Abs(diff) / speed
}
