package ease

// InterpolationType identifies how the host interpolates on one side of a
// keyframe.
type InterpolationType int

const (
	InterpolationLinear InterpolationType = iota + 1
	InterpolationBezier
	InterpolationHold
)

func (it InterpolationType) String() string {
	switch it {
	case InterpolationLinear:
		return "linear"
	case InterpolationBezier:
		return "bezier"
	case InterpolationHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Ease is one temporal-ease segment: how fast the value changes at a keyframe
// and over what fraction of the pair's duration that change applies.
type Ease struct {
	// Speed is measured in value units per second.
	Speed float64 `yaml:"speed"`
	// Influence is a percentage of the pair's duration, nominally 0–100.
	// It is not range-checked.
	Influence float64 `yaml:"influence"`
}

// Property exposes one animatable property's keyframe data the way the host
// scripting API reports it. Keyframe indices are 1-based and must lie in
// [1, NumKeys()]; implementations may panic on anything else.
type Property interface {
	NumKeys() int
	// KeyTime returns the keyframe's time in seconds.
	KeyTime(i int) float64
	// KeyValue returns the keyframe's value. Vector-valued properties
	// return one element per dimension; the conversion uses only the
	// first.
	KeyValue(i int) []float64
	KeyOutInterpolationType(i int) InterpolationType
	KeyInInterpolationType(i int) InterpolationType
	// KeyOutTemporalEase returns the ease segments leaving the keyframe,
	// one per value dimension; the conversion uses only the first.
	KeyOutTemporalEase(i int) []Ease
	// KeyInTemporalEase returns the ease segments entering the keyframe.
	KeyInTemporalEase(i int) []Ease
}

// TweenData describes the timing and value deltas of one keyframe pair.
// Frames are time × frame rate. Records are computed fresh per pair and
// never mutated.
type TweenData struct {
	StartTime      float64
	EndTime        float64
	DurationTime   float64
	StartFrame     float64
	EndFrame       float64
	DurationFrames float64
	StartValue     float64
	EndValue       float64
}

// NewTweenData derives the tween record for the keyframe pair (start, end),
// both 1-based. Vector-valued properties collapse to their first component.
func NewTweenData(p Property, start, end int, frameRate float64) TweenData {
	startTime := p.KeyTime(start)
	endTime := p.KeyTime(end)
	startFrame := startTime * frameRate
	endFrame := endTime * frameRate
	return TweenData{
		StartTime:      startTime,
		EndTime:        endTime,
		DurationTime:   endTime - startTime,
		StartFrame:     startFrame,
		EndFrame:       endFrame,
		DurationFrames: endFrame - startFrame,
		StartValue:     firstComponent(p.KeyValue(start)),
		EndValue:       firstComponent(p.KeyValue(end)),
	}
}

func firstComponent(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}
