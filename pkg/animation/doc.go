// Package animation schedules, composes, and advances time-based
// transitions of map-plane state: position, rotation angle, and zoom scale.
//
// # Core Components
//
//   - [Interpolator] and its concrete variants [PositionInterpolator],
//     [AngleInterpolator], [ScaleInterpolator]: time accounting plus duration
//     formulas derived from visual distance, producing values at a normalized
//     progress t in [0, 1].
//
//   - [Animation]: the polymorphic contract — which objects and properties an
//     animation drives, whether it can be mixed with peers or interrupted,
//     and how it advances and reports values.
//
//   - [FollowAnimation]: up to three interpolators (position, angle, scale)
//     over the map plane running in lock-step.
//
//   - [ParallelAnimation] and [SequenceAnimation]: composition operators.
//
//   - [System]: the scheduler. It keeps a chain of concurrently running
//     groups, decides whether a new animation mixes with, interrupts, or
//     queues behind the in-flight ones, and serves per-frame property reads
//     with a one-shot leftover cache for continuity across handoffs.
//
// # Basic Usage
//
// The render loop owns a single System. Gestures construct animations and
// hand them over; each frame advances the system and reads the viewport back:
//
//	sys := animation.Instance()
//	sys.AddAnimation(animation.NewFullFollowAnimation(
//		from, to, angleFrom, angleTo, scaleFrom, scaleTo, screen), false)
//
//	// each frame
//	sys.Advance(dt)
//	rect := sys.GetRect(screen)
//	screen.SetFromRect(rect)
//
// All System operations must run on the render thread; the package contains
// no locks and no internal timers.
package animation
