package animation

import "github.com/MikhayN/omim/pkg/geometry"

// propertyKey identifies one animated attribute of one object.
type propertyKey struct {
	object   Object
	property Property
}

// System is the animation scheduler. It holds a chain of groups of
// concurrently running animations; only the head group advances. A new
// animation either mixes into an existing group, interrupts members that
// stand in its way (when forced), or queues behind the chain in a new
// group.
//
// When an animation finishes or is interrupted, its terminal property
// values are parked in a one-shot cache, so the first read of the next
// frame still observes continuity before the caller commits the new state.
//
// All methods must be called from the thread that owns the render loop;
// System contains no locks.
type System struct {
	chain            [][]Animation
	propertyCache    map[propertyKey]PropertyValue
	headStartPending bool
}

// NewSystem creates an independent scheduler. The render subsystem uses
// the process-wide [Instance]; tests construct their own.
func NewSystem() *System {
	return &System{
		propertyCache: map[propertyKey]PropertyValue{},
	}
}

var instance *System

// Instance returns the process-wide scheduler, creating it on first use.
func Instance() *System {
	if instance == nil {
		instance = NewSystem()
	}
	return instance
}

// AddAnimation places the animation in the chain. Each existing group is
// tried in order: members the animation can mix with are kept; members it
// cannot mix with are interrupted and evicted when force is set and they
// allow it, with their terminal values parked in the property cache;
// otherwise the group is skipped. The first group that accepts the
// animation receives it. If none does, the animation starts a new group at
// the tail of the chain.
func (s *System) AddAnimation(animation Animation, force bool) {
	for gi := range s.chain {
		canMix := true
		i := 0
		for i < len(s.chain[gi]) {
			member := s.chain[gi][i]
			if MixableWith(member, animation) {
				i++
				continue
			}
			if force && member.CouldBeInterrupted() {
				member.Interrupt()
				member.OnFinish()
				s.saveAnimationResult(member)
				s.chain[gi] = append(s.chain[gi][:i], s.chain[gi][i+1:]...)
				continue
			}
			canMix = false
			break
		}
		if canMix {
			animation.OnStart()
			s.chain[gi] = append(s.chain[gi], animation)
			return
		}
	}
	s.pushAnimation(animation)
}

// pushAnimation opens a new singleton group at the tail of the chain.
func (s *System) pushAnimation(animation Animation) {
	animation.OnStart()
	s.chain = append(s.chain, []Animation{animation})
}

// Advance steps every member of the head group by dt seconds. Members
// that finish fire OnFinish, park their terminal values in the property
// cache, and are removed. An emptied head group is dropped; the successor
// group's members are started on the next tick, before they first advance.
func (s *System) Advance(dt float64) {
	if len(s.chain) == 0 {
		return
	}
	if s.headStartPending {
		for _, member := range s.chain[0] {
			member.OnStart()
		}
		s.headStartPending = false
	}
	i := 0
	for i < len(s.chain[0]) {
		member := s.chain[0][i]
		member.Advance(dt)
		if member.IsFinished() {
			member.OnFinish()
			s.saveAnimationResult(member)
			s.chain[0] = append(s.chain[0][:i], s.chain[0][i+1:]...)
			continue
		}
		i++
	}
	if len(s.chain[0]) == 0 {
		s.chain = s.chain[1:]
		s.headStartPending = len(s.chain) > 0
	}
}

// GetProperty resolves the current value of an object's property: the
// head group's members in insertion order first, then the one-shot
// property cache (consumed on read), then the caller's live value.
func (s *System) GetProperty(object Object, property Property, current PropertyValue) PropertyValue {
	if len(s.chain) > 0 {
		for _, member := range s.chain[0] {
			if member.HasProperty(object, property) {
				return member.Property(object, property)
			}
		}
	}
	key := propertyKey{object: object, property: property}
	if value, ok := s.propertyCache[key]; ok {
		delete(s.propertyCache, key)
		return value
	}
	return current
}

// GetRect assembles the animated viewport rectangle: scale, angle, and
// position are read through the system with the live screen state as
// fallback, and applied to the pixel rect centered on the origin.
func (s *System) GetRect(currentScreen Screen) geometry.AnyRect {
	scale := s.GetProperty(ObjectMapPlane, PropertyScale,
		ScalarValue(currentScreen.Scale())).Scalar()
	angle := s.GetProperty(ObjectMapPlane, PropertyAngle,
		ScalarValue(currentScreen.Angle())).Scalar()
	position := s.GetProperty(ObjectMapPlane, PropertyPosition,
		PointValue(currentScreen.GlobalRect().GlobalZero())).Point()

	pixelRect := currentScreen.PixelRect()
	local := pixelRect.Translated(pixelRect.Center().Mul(-1)).Scaled(scale)
	return geometry.NewAnyRect(position, angle, local)
}

// AnimationExists reports whether the object is currently animated: a
// member of the head group touches it, or a cached terminal value for it
// awaits its first read.
func (s *System) AnimationExists(object Object) bool {
	if len(s.chain) > 0 {
		for _, member := range s.chain[0] {
			if member.HasObject(object) {
				return true
			}
		}
	}
	for key := range s.propertyCache {
		if key.object == object {
			return true
		}
	}
	return false
}

// saveAnimationResult parks the animation's current property values in
// the cache, overwriting earlier entries for the same keys.
func (s *System) saveAnimationResult(animation Animation) {
	for object := range animation.Objects() {
		for property := range animation.Properties(object) {
			key := propertyKey{object: object, property: property}
			s.propertyCache[key] = animation.Property(object, property)
		}
	}
}
