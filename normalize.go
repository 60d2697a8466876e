package ease

import "math"

// infinityCap bounds normalized coordinates that come out as ±Inf, which
// happens when a keyframe pair has zero duration. The cap limits magnitude
// only; it does not renormalize the rest of the segment.
const infinityCap = 10

// Normalizer maps absolute (frame, value) points of one keyframe pair into
// the unit square: the pair's start anchor becomes (0, 0) and its end anchor
// (1, 1).
type Normalizer struct {
	tween TweenData
	clamp bool
}

// NewNormalizer returns a normalizer for the pair described by tw. With
// clampInfinite set, infinite results are capped at ±10.
func NewNormalizer(tw TweenData, clampInfinite bool) Normalizer {
	return Normalizer{tween: tw, clamp: clampInfinite}
}

// Normalize maps pt into the unit square. When the pair's value delta is
// zero, the Y coordinate is defined to equal the X coordinate, so flat
// segments keep a well-defined shape instead of dividing by zero.
func (n Normalizer) Normalize(pt Point) Point {
	x := (pt.X - n.tween.StartFrame) / (n.tween.EndFrame - n.tween.StartFrame)
	if n.clamp {
		x = capInfinite(x)
	}
	var y float64
	if n.tween.StartValue == n.tween.EndValue {
		y = x
	} else {
		y = (pt.Y - n.tween.StartValue) / (n.tween.EndValue - n.tween.StartValue)
		if n.clamp {
			y = capInfinite(y)
		}
	}
	return Pt(x, y)
}

func capInfinite(v float64) float64 {
	if math.IsInf(v, 1) {
		return infinityCap
	}
	if math.IsInf(v, -1) {
		return -infinityCap
	}
	return v
}
