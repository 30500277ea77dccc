package animation

// stubAnimation is a scriptable Animation for scheduler and composite
// tests: a fixed footprint, a fixed duration, counted lifecycle hooks, and
// canned property values.
type stubAnimation struct {
	baseAnimation
	objects    ObjectSet
	properties map[Object]PropertySet
	values     map[propertyKey]PropertyValue
	duration   float64
	elapsed    float64
	forced     bool
	starts     int
	finishes   int
	interrupts int
}

func newStubAnimation(duration float64, couldBeInterrupted, couldBeMixed bool, properties PropertySet) *stubAnimation {
	return &stubAnimation{
		baseAnimation: newBaseAnimation(couldBeInterrupted, couldBeMixed),
		objects:       ObjectSet{ObjectMapPlane: true},
		properties:    map[Object]PropertySet{ObjectMapPlane: properties},
		values:        map[propertyKey]PropertyValue{},
		duration:      duration,
	}
}

func (a *stubAnimation) setValue(property Property, value PropertyValue) {
	a.values[propertyKey{object: ObjectMapPlane, property: property}] = value
}

func (a *stubAnimation) Objects() ObjectSet { return a.objects }

func (a *stubAnimation) HasObject(object Object) bool { return a.objects[object] }

func (a *stubAnimation) Properties(object Object) PropertySet { return a.properties[object] }

func (a *stubAnimation) HasProperty(object Object, property Property) bool {
	return a.properties[object][property]
}

func (a *stubAnimation) Property(object Object, property Property) PropertyValue {
	if v, ok := a.values[propertyKey{object: object, property: property}]; ok {
		return v
	}
	return ScalarValue(a.elapsed)
}

func (a *stubAnimation) Advance(dt float64) { a.elapsed += dt }

func (a *stubAnimation) SetMaxDuration(maxDuration float64) {
	if maxDuration < a.duration {
		a.duration = maxDuration
	}
}

func (a *stubAnimation) Duration() float64 { return a.duration }

func (a *stubAnimation) IsFinished() bool { return a.forced || a.elapsed > a.duration }

func (a *stubAnimation) Interrupt() {
	a.forced = true
	a.interrupts++
}

func (a *stubAnimation) OnStart() { a.starts++ }

func (a *stubAnimation) OnFinish() { a.finishes++ }
