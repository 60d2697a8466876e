package ease

// Control point derivation. A keyframe's temporal ease gives a speed (value
// units per second) and an influence (percent of the pair's duration). The
// influence places the control point horizontally; the speed, converted to a
// per-frame slope, places it vertically along the tangent at the anchor.

// OutgoingControlPoint derives the Bézier control point leaving the start
// keyframe of the pair (i, i+1).
func OutgoingControlPoint(p Property, i int, tw TweenData, frameRate float64) Point {
	e := firstEase(p.KeyOutTemporalEase(i))
	m := e.Speed / frameRate
	x := tw.DurationFrames * (e.Influence / 100)
	return Pt(tw.StartFrame+x, tw.StartValue+m*x)
}

// IncomingControlPoint derives the Bézier control point entering the end
// keyframe of the pair (i, i+1). The host reports incoming speed as the slope
// of the value curve approaching the keyframe; the control point sits before
// the end anchor, so the slope is negated when walking back from it.
func IncomingControlPoint(p Property, i int, tw TweenData, frameRate float64) Point {
	e := firstEase(p.KeyInTemporalEase(i + 1))
	m := -e.Speed / frameRate
	x := tw.DurationFrames * (e.Influence / 100)
	return Pt(tw.EndFrame-x, tw.EndValue+m*x)
}

// firstEase collapses multi-dimensional ease data to its first element, like
// vector values collapse to their first component.
func firstEase(es []Ease) Ease {
	if len(es) == 0 {
		return Ease{}
	}
	return es[0]
}
