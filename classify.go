package ease

// EaseType classifies the interpolation-type combination of a keyframe pair:
// the outgoing type of the pair's start keyframe crossed with the incoming
// type of its end keyframe.
type EaseType int

const (
	// Unsupported covers every combination involving a type other than
	// linear or bezier. The converter still emits a cubic segment for such
	// pairs, as a best-effort approximation.
	Unsupported EaseType = iota
	LinearLinear
	LinearBezier
	BezierLinear
	BezierBezier
)

func (et EaseType) String() string {
	switch et {
	case LinearLinear:
		return "linear-linear"
	case LinearBezier:
		return "linear-bezier"
	case BezierLinear:
		return "bezier-linear"
	case BezierBezier:
		return "bezier-bezier"
	default:
		return "unsupported"
	}
}

// Classify returns the ease type of the keyframe pair starting at key i. It
// is a pure lookup on the pair's two interpolation types and decides which
// command the pair renders to.
func Classify(p Property, i int) EaseType {
	out := p.KeyOutInterpolationType(i)
	in := p.KeyInInterpolationType(i + 1)
	switch {
	case out == InterpolationLinear && in == InterpolationLinear:
		return LinearLinear
	case out == InterpolationLinear && in == InterpolationBezier:
		return LinearBezier
	case out == InterpolationBezier && in == InterpolationLinear:
		return BezierLinear
	case out == InterpolationBezier && in == InterpolationBezier:
		return BezierBezier
	default:
		return Unsupported
	}
}
