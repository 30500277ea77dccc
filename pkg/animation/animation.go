package animation

import "github.com/MikhayN/omim/pkg/errors"

// Animation is a time-bounded transformation of one or more
// (object, property) pairs. Implementations advance under external time
// steps and expose the current value of every property they drive.
//
// Lifecycle: OnStart is called before the first Advance; System calls it
// when the animation is inserted and again when a queued group becomes the
// head group. OnFinish is called once after IsFinished first returns true,
// before removal from the scheduler. Both hooks must tolerate defensive
// re-invocation.
type Animation interface {
	// Objects returns the set of objects this animation touches.
	Objects() ObjectSet
	// HasObject reports whether the animation touches the object.
	HasObject(object Object) bool
	// Properties returns the properties driven on the object.
	// The object must be one of Objects.
	Properties(object Object) PropertySet
	// HasProperty reports whether the animation drives the property on
	// the object.
	HasProperty(object Object, property Property) bool
	// Property returns the current value of a driven property, reflecting
	// the most recent Advance. Reading an undriven property is a contract
	// violation.
	Property(object Object, property Property) PropertyValue

	// Advance steps the animation by dt seconds, dt >= 0.
	Advance(dt float64)
	// SetMaxDuration caps the duration, cascading to children.
	SetMaxDuration(maxDuration float64)
	// Duration returns the maximum remaining logical duration in seconds,
	// including any delay.
	Duration() float64
	// IsFinished reports whether the animation reached its terminal state.
	IsFinished() bool
	// Interrupt forces the animation to its end state immediately, with
	// its final property values readable.
	Interrupt()

	// OnStart is invoked before the first Advance.
	OnStart()
	// OnFinish is invoked after the animation finishes, before removal.
	OnFinish()

	// CouldBeInterrupted reports whether the scheduler may abort this
	// animation to make room.
	CouldBeInterrupted() bool
	// CouldBeMixed reports whether this animation tolerates concurrent
	// peers in the same chain slot.
	CouldBeMixed() bool
}

// baseAnimation carries the static scheduling flags and the default no-op
// lifecycle hooks shared by all animations.
type baseAnimation struct {
	couldBeInterrupted bool
	couldBeMixed       bool
}

func newBaseAnimation(couldBeInterrupted, couldBeMixed bool) baseAnimation {
	return baseAnimation{
		couldBeInterrupted: couldBeInterrupted,
		couldBeMixed:       couldBeMixed,
	}
}

func (b *baseAnimation) CouldBeInterrupted() bool {
	return b.couldBeInterrupted
}

func (b *baseAnimation) CouldBeMixed() bool {
	return b.couldBeMixed
}

func (b *baseAnimation) OnStart() {}

func (b *baseAnimation) OnFinish() {}

// MixableWith reports whether two animations tolerate running concurrently
// in the same scheduler group: both must allow mixing, and on every shared
// object their property sets must be disjoint.
func MixableWith(a, b Animation) bool {
	if !a.CouldBeMixed() || !b.CouldBeMixed() {
		return false
	}
	for object := range b.Objects() {
		if !a.HasObject(object) {
			continue
		}
		if a.Properties(object).Intersects(b.Properties(object)) {
			return false
		}
	}
	return true
}

// MixableWithProperties specializes the mixability check against an
// already-known property set on a single object.
func MixableWithProperties(a Animation, object Object, properties PropertySet) bool {
	if !a.CouldBeMixed() {
		return false
	}
	if !errors.Assert(a.HasObject(object), "animation.MixableWithProperties", "animation does not touch %v", object) {
		return false
	}
	return !a.Properties(object).Intersects(properties)
}
