package animation

import (
	"math"

	"github.com/MikhayN/omim/pkg/geometry"
)

// rotateDuration gives half a second per 45 degrees of rotation.
func rotateDuration(startAngle, endAngle float64) float64 {
	return 0.5 * math.Abs(endAngle-startAngle) / (math.Pi / 4)
}

// AngleInterpolator rotates a scalar angle in radians. It does not
// normalize the shortest arc; callers pre-adjust the end angle relative to
// the start.
type AngleInterpolator struct {
	Interpolator
	start float64
	end   float64
	angle float64
}

// NewAngleInterpolator creates an angle interpolator between two angles in
// radians.
func NewAngleInterpolator(start, end float64) *AngleInterpolator {
	return NewDelayedAngleInterpolator(0, start, end)
}

// NewDelayedAngleInterpolator is like NewAngleInterpolator with a start
// delay in seconds.
func NewDelayedAngleInterpolator(delay, start, end float64) *AngleInterpolator {
	return &AngleInterpolator{
		Interpolator: NewInterpolator(rotateDuration(start, end), delay),
		start:        start,
		end:          end,
		angle:        start,
	}
}

// Advance steps time and recomputes the current angle.
func (i *AngleInterpolator) Advance(dt float64) {
	i.Interpolator.Advance(dt)
	i.angle = geometry.Lerp(i.start, i.end, i.easedT())
}

// Finish jumps to the end angle.
func (i *AngleInterpolator) Finish() {
	i.Interpolator.Finish()
	i.angle = i.end
}

// Angle returns the interpolated angle after the most recent Advance.
func (i *AngleInterpolator) Angle() float64 {
	return i.angle
}
