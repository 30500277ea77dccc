package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

// TestPoint_Rotate_QuarterTurn verifies rotation by π/2 maps the X axis onto the Y axis.
func TestPoint_Rotate_QuarterTurn(t *testing.T) {
	p := Point{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !almostEqual(p.X, 0) || !almostEqual(p.Y, 1) {
		t.Errorf("expected (0, 1), got (%v, %v)", p.X, p.Y)
	}
}

// TestPoint_Rotate_RoundTrip verifies that rotating forward and back restores the point.
func TestPoint_Rotate_RoundTrip(t *testing.T) {
	p := Point{X: 3, Y: -4}
	got := p.Rotate(0.7).Rotate(-0.7)
	if !p.Equal(got) {
		t.Errorf("expected %v, got %v", p, got)
	}
}

// TestPoint_DistanceTo verifies the Euclidean distance of a 3-4-5 triangle.
func TestPoint_DistanceTo(t *testing.T) {
	d := Point{X: 0, Y: 0}.DistanceTo(Point{X: 3, Y: 4})
	if !almostEqual(d, 5) {
		t.Errorf("expected 5, got %v", d)
	}
}

// TestLerp_Endpoints verifies interpolation hits both endpoints exactly.
func TestLerp_Endpoints(t *testing.T) {
	if got := Lerp(2, 10, 0); got != 2 {
		t.Errorf("t=0: expected 2, got %v", got)
	}
	if got := Lerp(2, 10, 1); got != 10 {
		t.Errorf("t=1: expected 10, got %v", got)
	}
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Errorf("t=0.5: expected 6, got %v", got)
	}
}

// TestLerpPoint_Midpoint verifies component-wise interpolation.
func TestLerpPoint_Midpoint(t *testing.T) {
	got := LerpPoint(Point{X: 0, Y: 2}, Point{X: 10, Y: 4}, 0.5)
	if !got.Equal(Point{X: 5, Y: 3}) {
		t.Errorf("expected (5, 3), got %v", got)
	}
}

// TestRect_CenterAndSize verifies center, width, and height reporters.
func TestRect_CenterAndSize(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if c := r.Center(); !c.Equal(Point{X: 60, Y: 45}) {
		t.Errorf("expected center (60, 45), got %v", c)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("expected 100x50, got %vx%v", r.Width(), r.Height())
	}
}

// TestRect_TranslatedScaled verifies the offset-then-scale sequence used to
// build a viewport local rect.
func TestRect_TranslatedScaled(t *testing.T) {
	r := RectFromLTWH(0, 0, 1000, 1000)
	local := r.Translated(r.Center().Mul(-1)).Scaled(2)
	if local.Left != -1000 || local.Top != -1000 || local.Right != 1000 || local.Bottom != 1000 {
		t.Errorf("expected (-1000,-1000)-(1000,1000), got %+v", local)
	}
	if !local.Center().Equal(Point{}) {
		t.Errorf("expected origin center, got %v", local.Center())
	}
}

// TestAnyRect_ConvertRoundTrip verifies ConvertTo inverts ConvertFrom.
func TestAnyRect_ConvertRoundTrip(t *testing.T) {
	r := NewAnyRect(Point{X: 100, Y: 50}, 0.3, RectFromCenter(Point{}, 10, 20))
	local := Point{X: 4, Y: -7}
	got := r.ConvertTo(r.ConvertFrom(local))
	if !local.Equal(got) {
		t.Errorf("expected %v, got %v", local, got)
	}
}

// TestAnyRect_GlobalZero_CenteredLocalRect verifies that a local rect
// centered on the origin makes GlobalZero the global center.
func TestAnyRect_GlobalZero_CenteredLocalRect(t *testing.T) {
	zero := Point{X: 7, Y: 9}
	r := NewAnyRect(zero, math.Pi/4, RectFromCenter(Point{}, 100, 100))
	if !r.GlobalZero().Equal(zero) {
		t.Errorf("expected %v, got %v", zero, r.GlobalZero())
	}
	if !r.GlobalCenter().Equal(zero) {
		t.Errorf("expected center %v, got %v", zero, r.GlobalCenter())
	}
}

// TestAnyRect_GlobalCorners_NoRotation verifies corners of an unrotated rect.
func TestAnyRect_GlobalCorners_NoRotation(t *testing.T) {
	r := NewAnyRect(Point{X: 10, Y: 10}, 0, RectFromCenter(Point{}, 4, 2))
	corners := r.GlobalCorners()
	want := [4]Point{
		{X: 8, Y: 9},
		{X: 12, Y: 9},
		{X: 12, Y: 11},
		{X: 8, Y: 11},
	}
	for i := range corners {
		if !corners[i].Equal(want[i]) {
			t.Errorf("corner %d: expected %v, got %v", i, want[i], corners[i])
		}
	}
}
