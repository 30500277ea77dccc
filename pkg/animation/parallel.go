package animation

import (
	"math"

	"github.com/MikhayN/omim/pkg/errors"
)

// ParallelAnimation advances a collection of child animations together.
// Its footprint is the union of the children's objects and properties.
// Children are assumed compatible by construction: the scheduler performs
// mixability checks before a parallel composite enters a group, not here.
type ParallelAnimation struct {
	baseAnimation
	animations []Animation
	objects    ObjectSet
	properties map[Object]PropertySet
}

// NewParallelAnimation creates an empty parallel composite.
func NewParallelAnimation(couldBeInterrupted, couldBeMixed bool) *ParallelAnimation {
	return &ParallelAnimation{
		baseAnimation: newBaseAnimation(couldBeInterrupted, couldBeMixed),
		objects:       ObjectSet{},
		properties:    map[Object]PropertySet{},
	}
}

// AddAnimation appends a child and unions its footprint into the
// composite's.
func (a *ParallelAnimation) AddAnimation(child Animation) {
	for object := range child.Objects() {
		a.objects[object] = true
		props := a.properties[object]
		if props == nil {
			props = PropertySet{}
			a.properties[object] = props
		}
		for property := range child.Properties(object) {
			props[property] = true
		}
	}
	a.animations = append(a.animations, child)
}

// Objects returns the union of the children's objects.
func (a *ParallelAnimation) Objects() ObjectSet {
	return a.objects
}

// HasObject reports whether any child touches the object.
func (a *ParallelAnimation) HasObject(object Object) bool {
	return a.objects[object]
}

// Properties returns the union of the children's properties on the object.
func (a *ParallelAnimation) Properties(object Object) PropertySet {
	if !errors.Assert(a.HasObject(object), "animation.ParallelAnimation.Properties", "animation does not touch %v", object) {
		return PropertySet{}
	}
	return a.properties[object]
}

// HasProperty reports whether any child drives the property on the object.
func (a *ParallelAnimation) HasProperty(object Object, property Property) bool {
	return a.HasObject(object) && a.properties[object][property]
}

// Property returns the value from the first remaining child driving the
// property.
func (a *ParallelAnimation) Property(object Object, property Property) PropertyValue {
	for _, child := range a.animations {
		if child.HasProperty(object, property) {
			return child.Property(object, property)
		}
	}
	errors.Reportf("animation.ParallelAnimation.Property", errors.KindContract, "no child drives %v on %v", property, object)
	return ScalarValue(0)
}

// OnStart starts every child.
func (a *ParallelAnimation) OnStart() {
	for _, child := range a.animations {
		child.OnStart()
	}
}

// Advance steps every child; children that finish fire OnFinish and are
// removed, and the footprint is rebuilt from the remaining children.
func (a *ParallelAnimation) Advance(dt float64) {
	removed := false
	remaining := a.animations[:0]
	for _, child := range a.animations {
		child.Advance(dt)
		if child.IsFinished() {
			child.OnFinish()
			removed = true
			continue
		}
		remaining = append(remaining, child)
	}
	a.animations = remaining
	if removed {
		a.objects = ObjectSet{}
		a.properties = map[Object]PropertySet{}
		children := a.animations
		a.animations = nil
		for _, child := range children {
			a.AddAnimation(child)
		}
	}
}

// SetMaxDuration caps every child.
func (a *ParallelAnimation) SetMaxDuration(maxDuration float64) {
	for _, child := range a.animations {
		child.SetMaxDuration(maxDuration)
	}
}

// Duration returns the longest remaining child duration.
func (a *ParallelAnimation) Duration() float64 {
	duration := 0.0
	for _, child := range a.animations {
		duration = math.Max(duration, child.Duration())
	}
	return duration
}

// IsFinished reports whether all children have finished and been removed.
func (a *ParallelAnimation) IsFinished() bool {
	return len(a.animations) == 0
}

// Interrupt jumps every remaining child to its end state.
func (a *ParallelAnimation) Interrupt() {
	for _, child := range a.animations {
		child.Interrupt()
	}
}
