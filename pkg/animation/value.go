package animation

import (
	"fmt"

	"github.com/MikhayN/omim/pkg/errors"
	"github.com/MikhayN/omim/pkg/geometry"
)

// Object identifies an animated entity. Only the map plane exists today;
// the scheduler is polymorphic over this identifier so that future entities
// (markers, overlays) can be animated without changing it.
type Object int

const (
	// ObjectMapPlane is the 2D map viewport.
	ObjectMapPlane Object = iota
)

func (o Object) String() string {
	switch o {
	case ObjectMapPlane:
		return "map-plane"
	default:
		return fmt.Sprintf("Object(%d)", int(o))
	}
}

// Property identifies an animated attribute on an object.
type Property int

const (
	// PropertyPosition is a 2D point in global map coordinates.
	PropertyPosition Property = iota
	// PropertyAngle is a rotation in radians.
	PropertyAngle
	// PropertyScale is a dimensionless positive zoom factor.
	PropertyScale
)

func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyAngle:
		return "angle"
	case PropertyScale:
		return "scale"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

// ObjectSet is a set of animated objects.
type ObjectSet map[Object]bool

// PropertySet is a set of animated properties.
type PropertySet map[Property]bool

// Intersects returns true if the two sets share a property.
func (s PropertySet) Intersects(other PropertySet) bool {
	for p := range s {
		if other[p] {
			return true
		}
	}
	return false
}

// ValueKind discriminates the variants of a PropertyValue.
type ValueKind int

const (
	// KindPoint marks a 2D point value.
	KindPoint ValueKind = iota
	// KindScalar marks a float64 value.
	KindScalar
)

// PropertyValue is a tagged union over the value types a property can
// carry: a 2D point for positions, a scalar for angles and scales.
// Consumers that know the property's kind unwrap the expected variant;
// a mismatch is a programming error.
type PropertyValue struct {
	kind   ValueKind
	point  geometry.Point
	scalar float64
}

// PointValue wraps a 2D point.
func PointValue(p geometry.Point) PropertyValue {
	return PropertyValue{kind: KindPoint, point: p}
}

// ScalarValue wraps a float64.
func ScalarValue(s float64) PropertyValue {
	return PropertyValue{kind: KindScalar, scalar: s}
}

// Kind returns the variant tag.
func (v PropertyValue) Kind() ValueKind {
	return v.kind
}

// Point unwraps the point variant. Unwrapping a scalar is a contract
// violation and returns the origin.
func (v PropertyValue) Point() geometry.Point {
	if !errors.Assert(v.kind == KindPoint, "animation.PropertyValue.Point", "value holds a scalar") {
		return geometry.Point{}
	}
	return v.point
}

// Scalar unwraps the scalar variant. Unwrapping a point is a contract
// violation and returns 0.
func (v PropertyValue) Scalar() float64 {
	if !errors.Assert(v.kind == KindScalar, "animation.PropertyValue.Scalar", "value holds a point") {
		return 0
	}
	return v.scalar
}
