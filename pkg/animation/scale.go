package animation

import (
	"math"

	"github.com/MikhayN/omim/pkg/geometry"
)

// scaleSpeed expresses zoom speed as resize ratio per second: a 2x resize
// takes 0.3 seconds.
const scaleSpeed = 2.0 / 0.3

// scaleDuration derives the zoom duration from the resize ratio between
// the endpoints, regardless of zoom direction.
func scaleDuration(startScale, endScale float64) float64 {
	if startScale > endScale {
		startScale, endScale = endScale, startScale
	}
	ratio := endScale / startScale
	if math.Abs(ratio-1) < durationEps {
		return 0
	}
	return ratio / scaleSpeed
}

// ScaleInterpolator zooms a dimensionless positive scale factor. The value
// is interpolated linearly in the original direction; only the duration is
// derived from the direction-independent resize ratio.
type ScaleInterpolator struct {
	Interpolator
	start float64
	end   float64
	scale float64
}

// NewScaleInterpolator creates a scale interpolator between two scale
// factors.
func NewScaleInterpolator(start, end float64) *ScaleInterpolator {
	return NewDelayedScaleInterpolator(0, start, end)
}

// NewDelayedScaleInterpolator is like NewScaleInterpolator with a start
// delay in seconds.
func NewDelayedScaleInterpolator(delay, start, end float64) *ScaleInterpolator {
	return &ScaleInterpolator{
		Interpolator: NewInterpolator(scaleDuration(start, end), delay),
		start:        start,
		end:          end,
		scale:        start,
	}
}

// Advance steps time and recomputes the current scale.
func (i *ScaleInterpolator) Advance(dt float64) {
	i.Interpolator.Advance(dt)
	i.scale = geometry.Lerp(i.start, i.end, i.easedT())
}

// Finish jumps to the end scale.
func (i *ScaleInterpolator) Finish() {
	i.Interpolator.Finish()
	i.scale = i.end
}

// Scale returns the interpolated scale after the most recent Advance.
func (i *ScaleInterpolator) Scale() float64 {
	return i.scale
}
