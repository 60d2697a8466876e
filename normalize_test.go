package ease

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tw := TweenData{StartFrame: 0, EndFrame: 30, StartValue: 0, EndValue: 100}
	n := NewNormalizer(tw, true)
	diff(t, Pt(0.5, 0.25), n.Normalize(Pt(15, 25)))
	diff(t, Pt(0, 0), n.Normalize(Pt(0, 0)))
	diff(t, Pt(1, 1), n.Normalize(Pt(30, 100)))
	// Control points may leave the unit square; that is not clamped.
	diff(t, Pt(1.5, -0.25), n.Normalize(Pt(45, -25)))
}

func TestNormalizeOffsetPair(t *testing.T) {
	tw := TweenData{StartFrame: 12, EndFrame: 36, StartValue: 10, EndValue: -30}
	n := NewNormalizer(tw, true)
	diff(t, Pt(0.25, 0.5), n.Normalize(Pt(18, -10)))
}

func TestNormalizeFlatSegment(t *testing.T) {
	// With no value delta the Y coordinate is defined to equal X,
	// whatever the point's actual value.
	tw := TweenData{StartFrame: 0, EndFrame: 24, StartValue: 5, EndValue: 5}
	n := NewNormalizer(tw, true)
	diff(t, Pt(0.25, 0.25), n.Normalize(Pt(6, 123)))
	diff(t, Pt(0.75, 0.75), n.Normalize(Pt(18, 5)))
}

func TestNormalizeClampsInfinity(t *testing.T) {
	// A zero-duration pair divides by zero on the X axis.
	tw := TweenData{StartFrame: 10, EndFrame: 10, StartValue: 0, EndValue: 5}
	n := NewNormalizer(tw, true)
	diff(t, Pt(10, 0.4), n.Normalize(Pt(15, 2)))
	diff(t, Pt(-10, 0.4), n.Normalize(Pt(5, 2)))
}

func TestNormalizeKeepsInfinityUnclamped(t *testing.T) {
	tw := TweenData{StartFrame: 10, EndFrame: 10, StartValue: 0, EndValue: 5}
	n := NewNormalizer(tw, false)
	got := n.Normalize(Pt(15, 2))
	if !math.IsInf(got.X, 1) {
		t.Errorf("got x %v, want +Inf", got.X)
	}
	got = n.Normalize(Pt(5, 2))
	if !math.IsInf(got.X, -1) {
		t.Errorf("got x %v, want -Inf", got.X)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	tw := TweenData{StartFrame: 3, EndFrame: 17, StartValue: -4, EndValue: 9}
	n := NewNormalizer(tw, true)
	pt := Pt(7.5, 2.25)
	diff(t, n.Normalize(pt), n.Normalize(pt))
}
