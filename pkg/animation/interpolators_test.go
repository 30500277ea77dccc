package animation

import (
	"math"
	"testing"

	"github.com/MikhayN/omim/pkg/geometry"
	"github.com/MikhayN/omim/pkg/viewport"
	"github.com/fogleman/ease"
)

// testScreen returns a 1000x1000 screen whose GtoP is the identity.
func testScreen() *viewport.Screen {
	return viewport.New(geometry.RectFromLTWH(0, 0, 1000, 1000))
}

func pointEqual(a, b geometry.Point) bool {
	return scalarEqual(a.X, b.X) && scalarEqual(a.Y, b.Y)
}

// TestPositionInterpolator_PurePan verifies the speed-derived duration and
// midpoint value of a long pan on a 1000px screen.
func TestPositionInterpolator_PurePan(t *testing.T) {
	i := NewPositionInterpolator(geometry.Point{}, geometry.Point{X: 500}, testScreen())

	// 500px over 7 * 1000 px/s.
	if want := 500.0 / 7000.0; !scalarEqual(i.Duration(), want) {
		t.Fatalf("expected duration %v, got %v", want, i.Duration())
	}

	i.Advance(i.Duration() / 2)
	if got := i.Position(); !pointEqual(got, geometry.Point{X: 250}) {
		t.Errorf("expected midpoint (250, 0), got %v", got)
	}

	i.Advance(0.04)
	if !i.IsFinished() {
		t.Error("expected finished after overshooting the duration")
	}
	if got := i.Position(); !pointEqual(got, geometry.Point{X: 500}) {
		t.Errorf("expected end position (500, 0), got %v", got)
	}
}

// TestPositionInterpolator_SmallPanFloor verifies pans shorter than a fifth
// of the viewport get the 0.2s floor.
func TestPositionInterpolator_SmallPanFloor(t *testing.T) {
	i := NewPositionInterpolator(geometry.Point{}, geometry.Point{X: 100}, testScreen())

	if !scalarEqual(i.Duration(), 0.2) {
		t.Fatalf("expected floor duration 0.2, got %v", i.Duration())
	}
	i.Advance(0.1)
	if got := i.Position(); !pointEqual(got, geometry.Point{X: 50}) {
		t.Errorf("expected (50, 0) at half time, got %v", got)
	}
}

// TestPositionInterpolator_NoMove verifies a sub-epsilon pan is instantaneous.
func TestPositionInterpolator_NoMove(t *testing.T) {
	i := NewPositionInterpolator(geometry.Point{X: 1}, geometry.Point{X: 1}, testScreen())
	if i.Duration() != 0 {
		t.Errorf("expected zero duration, got %v", i.Duration())
	}
}

// TestAngleInterpolator_QuarterTurn verifies half a second per 45 degrees
// and the midpoint angle.
func TestAngleInterpolator_QuarterTurn(t *testing.T) {
	i := NewAngleInterpolator(0, math.Pi/2)

	if !scalarEqual(i.Duration(), 1.0) {
		t.Fatalf("expected duration 1.0, got %v", i.Duration())
	}
	i.Advance(0.5)
	if got := i.Angle(); !scalarEqual(got, math.Pi/4) {
		t.Errorf("expected pi/4 at half time, got %v", got)
	}
}

// TestScaleInterpolator_ZoomIn verifies the ratio-derived duration and the
// linear midpoint of a 1 -> 4 zoom.
func TestScaleInterpolator_ZoomIn(t *testing.T) {
	i := NewScaleInterpolator(1, 4)

	if !scalarEqual(i.Duration(), 0.6) {
		t.Fatalf("expected duration 0.6, got %v", i.Duration())
	}
	i.Advance(0.3)
	if got := i.Scale(); !scalarEqual(got, 2.5) {
		t.Errorf("expected scale 2.5 at half time, got %v", got)
	}
}

// TestScaleInterpolator_ZoomOut verifies the duration is direction
// independent while the value still moves in the original direction.
func TestScaleInterpolator_ZoomOut(t *testing.T) {
	i := NewScaleInterpolator(4, 1)

	if !scalarEqual(i.Duration(), 0.6) {
		t.Fatalf("expected duration 0.6, got %v", i.Duration())
	}
	i.Advance(0.3)
	if got := i.Scale(); !scalarEqual(got, 2.5) {
		t.Errorf("expected scale 2.5 at half time, got %v", got)
	}
	i.Advance(0.31)
	if got := i.Scale(); !scalarEqual(got, 1) {
		t.Errorf("expected end scale 1, got %v", got)
	}
}

// TestScaleInterpolator_NoResize verifies a ratio of 1 is instantaneous.
func TestScaleInterpolator_NoResize(t *testing.T) {
	i := NewScaleInterpolator(2, 2)
	if i.Duration() != 0 {
		t.Errorf("expected zero duration, got %v", i.Duration())
	}
}

// TestInterpolator_Easing verifies an easing function reshapes the value
// without touching the time accounting.
func TestInterpolator_Easing(t *testing.T) {
	i := NewScaleInterpolator(1, 2)
	i.SetEasing(ease.OutQuad)

	i.Advance(i.Duration() / 2)
	if got := i.T(); !scalarEqual(got, 0.5) {
		t.Fatalf("easing must not change T, got %v", got)
	}
	// OutQuad(0.5) = 0.75, so the value is 1 + 1*0.75.
	if got := i.Scale(); !scalarEqual(got, 1.75) {
		t.Errorf("expected eased value 1.75, got %v", got)
	}
}

// TestDelayedPositionInterpolator verifies the value holds at the start
// until the delay expires.
func TestDelayedPositionInterpolator(t *testing.T) {
	i := NewDelayedPositionInterpolator(0.5, geometry.Point{}, geometry.Point{X: 500}, testScreen())
	i.Advance(0.4)
	if got := i.Position(); !pointEqual(got, geometry.Point{}) {
		t.Errorf("expected start position during delay, got %v", got)
	}
	if i.IsFinished() {
		t.Error("should not finish during delay")
	}
}
