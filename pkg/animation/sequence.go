package animation

import "github.com/MikhayN/omim/pkg/errors"

// SequenceAnimation runs a queue of child animations one at a time, each
// to completion. Only the front child is active, and the sequence exposes
// the front's objects and properties as its own — its externally visible
// footprint changes when a stage completes. The scheduler's mixability
// decision is made at insertion time; a conflict with a later stage only
// becomes visible when that stage reaches the front.
type SequenceAnimation struct {
	baseAnimation
	animations   []Animation
	frontStarted bool
}

// NewSequenceAnimation creates an empty sequence.
func NewSequenceAnimation(couldBeInterrupted, couldBeMixed bool) *SequenceAnimation {
	return &SequenceAnimation{
		baseAnimation: newBaseAnimation(couldBeInterrupted, couldBeMixed),
	}
}

// AddAnimation appends a child to the queue.
func (a *SequenceAnimation) AddAnimation(child Animation) {
	a.animations = append(a.animations, child)
}

// Objects returns the front child's objects. An empty sequence has no
// footprint; querying it is a contract violation.
func (a *SequenceAnimation) Objects() ObjectSet {
	if !errors.Assert(len(a.animations) > 0, "animation.SequenceAnimation.Objects", "empty sequence") {
		return ObjectSet{}
	}
	return a.animations[0].Objects()
}

// HasObject reports whether the front child touches the object.
func (a *SequenceAnimation) HasObject(object Object) bool {
	if len(a.animations) == 0 {
		return false
	}
	return a.animations[0].HasObject(object)
}

// Properties returns the front child's properties on the object.
func (a *SequenceAnimation) Properties(object Object) PropertySet {
	if !errors.Assert(len(a.animations) > 0, "animation.SequenceAnimation.Properties", "empty sequence") {
		return PropertySet{}
	}
	return a.animations[0].Properties(object)
}

// HasProperty reports whether the front child drives the property.
func (a *SequenceAnimation) HasProperty(object Object, property Property) bool {
	if len(a.animations) == 0 {
		return false
	}
	return a.animations[0].HasProperty(object, property)
}

// Property returns the front child's value for the property.
func (a *SequenceAnimation) Property(object Object, property Property) PropertyValue {
	if !errors.Assert(len(a.animations) > 0, "animation.SequenceAnimation.Property", "empty sequence") {
		return ScalarValue(0)
	}
	return a.animations[0].Property(object, property)
}

// OnStart starts the front child. Subsequent fronts are started lazily on
// their first Advance tick. Safe to invoke defensively.
func (a *SequenceAnimation) OnStart() {
	if len(a.animations) == 0 || a.frontStarted {
		return
	}
	a.animations[0].OnStart()
	a.frontStarted = true
}

// Advance steps the front child, starting it first if a previous stage
// just completed. A finished front fires OnFinish and is popped; the next
// stage begins on the following tick.
func (a *SequenceAnimation) Advance(dt float64) {
	if len(a.animations) == 0 {
		return
	}
	if !a.frontStarted {
		a.animations[0].OnStart()
		a.frontStarted = true
	}
	front := a.animations[0]
	front.Advance(dt)
	if front.IsFinished() {
		front.OnFinish()
		a.animations = a.animations[1:]
		a.frontStarted = false
	}
}

// SetMaxDuration caps every queued child.
func (a *SequenceAnimation) SetMaxDuration(maxDuration float64) {
	for _, child := range a.animations {
		child.SetMaxDuration(maxDuration)
	}
}

// Duration returns the summed duration of the queued children.
func (a *SequenceAnimation) Duration() float64 {
	duration := 0.0
	for _, child := range a.animations {
		duration += child.Duration()
	}
	return duration
}

// IsFinished reports whether the queue has drained.
func (a *SequenceAnimation) IsFinished() bool {
	return len(a.animations) == 0
}

// Interrupt jumps the front child to its end state and drops the rest of
// the queue, so the front's terminal values stay readable until the
// scheduler removes the sequence.
func (a *SequenceAnimation) Interrupt() {
	if len(a.animations) == 0 {
		return
	}
	a.animations[0].Interrupt()
	a.animations = a.animations[:1]
}
