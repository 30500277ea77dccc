package animation

import (
	"math"

	"github.com/MikhayN/omim/pkg/geometry"
)

const (
	// minMoveDuration is the floor for short pans; micro-animations below
	// it look choppy.
	minMoveDuration = 0.2
	// minSpeedScalar is the fraction of the shorter viewport dimension
	// under which the floor applies.
	minSpeedScalar = 0.2
	// maxSpeedScalar expresses pan speed in shorter-viewport-dimensions
	// per second, so travel feels consistent across screen sizes.
	maxSpeedScalar = 7.0
)

// moveDuration derives the pan duration from the on-screen pixel distance
// between the endpoints.
func moveDuration(start, end geometry.Point, screen Screen) float64 {
	pixelLength := screen.GtoP(end).DistanceTo(screen.GtoP(start))
	if pixelLength < durationEps {
		return 0
	}
	pixelRect := screen.PixelRect()
	minSize := math.Min(pixelRect.Width(), pixelRect.Height())
	if pixelLength < minSpeedScalar*minSize {
		return minMoveDuration
	}
	return speedDuration(pixelLength, maxSpeedScalar*minSize)
}

// PositionInterpolator moves a point through global map coordinates. Its
// duration is derived from the visual (pixel) distance of the move.
type PositionInterpolator struct {
	Interpolator
	start    geometry.Point
	end      geometry.Point
	position geometry.Point
}

// NewPositionInterpolator creates a position interpolator between two
// global points, deriving the duration through the given screen.
func NewPositionInterpolator(start, end geometry.Point, screen Screen) *PositionInterpolator {
	return NewDelayedPositionInterpolator(0, start, end, screen)
}

// NewDelayedPositionInterpolator is like NewPositionInterpolator with a
// start delay in seconds.
func NewDelayedPositionInterpolator(delay float64, start, end geometry.Point, screen Screen) *PositionInterpolator {
	return &PositionInterpolator{
		Interpolator: NewInterpolator(moveDuration(start, end, screen), delay),
		start:        start,
		end:          end,
		position:     start,
	}
}

// Advance steps time and recomputes the current position.
func (i *PositionInterpolator) Advance(dt float64) {
	i.Interpolator.Advance(dt)
	i.position = geometry.LerpPoint(i.start, i.end, i.easedT())
}

// Finish jumps to the end position.
func (i *PositionInterpolator) Finish() {
	i.Interpolator.Finish()
	i.position = i.end
}

// Position returns the interpolated global position after the most recent
// Advance.
func (i *PositionInterpolator) Position() geometry.Point {
	return i.position
}
