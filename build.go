package ease

import (
	"fmt"
	"log/slog"
	"strings"
)

// OutputMode selects the serialization [Convert] produces.
type OutputMode int

const (
	// SVGPath emits one M/L/C path string per property, in absolute
	// (frame, value) coordinates with the final Y flip applied.
	SVGPath OutputMode = iota
	// NormalizedArray emits one [x1,y1,x2,y2] group per keyframe pair,
	// control points normalized into the unit square. Meant for a single
	// property; no Y flip applies.
	NormalizedArray
)

// Options configures a conversion.
type Options struct {
	// ClampInfiniteValues caps normalized coordinates that come out
	// infinite (zero-duration pairs) at ±10. Only NormalizedArray output
	// normalizes, so SVGPath output ignores it.
	ClampInfiniteValues bool
	OutputMode          OutputMode
	// Logger receives per-pair classification records at debug level.
	// nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the recommended configuration: SVG path output with
// infinity clamping enabled.
func DefaultOptions() Options {
	return Options{ClampInfiniteValues: true}
}

// Diagnostic reports a keyframe pair whose interpolation-type combination is
// none of the four supported ones. The conversion does not abort on it: the
// pair is still rendered through the Bézier branch as a best-effort
// approximation.
type Diagnostic struct {
	// Pair is the 1-based index of the pair's start keyframe.
	Pair    int
	OutType InterpolationType
	InType  InterpolationType
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("keyframe pair %d: unsupported ease combination %s/%s, emitting a cubic approximation",
		d.Pair, d.OutType, d.InType)
}

// Result is the outcome of converting one property.
type Result struct {
	// Output is the serialized curve. It is empty when the property was
	// skipped for having fewer than two keyframes; that is not an error.
	Output      string
	Diagnostics []Diagnostic
}

// Convert turns one property's keyframes into a serialized easing curve.
// Everything is computed fresh per call; nothing is retained between
// invocations.
func Convert(p Property, frameRate float64, opts Options) Result {
	if opts.OutputMode == NormalizedArray {
		segs, diags := BuildNormalizedSegments(p, frameRate, opts)
		return Result{Output: formatSegments(segs), Diagnostics: diags}
	}
	path, diags := BuildPath(p, frameRate, opts.Logger)
	if path == nil {
		return Result{Diagnostics: diags}
	}
	return Result{Output: path.String(), Diagnostics: diags}
}

// BuildPath walks the property's consecutive keyframe pairs and assembles the
// absolute (frame, value) easing path: a MoveTo at the first keyframe, then
// per pair a LineTo for linear-linear combinations and a CubicCurveTo for
// everything else. If the finished path ends above its start value, the whole
// path is mirrored around the X axis; the consuming format expects the
// curve's orientation to be independent of whether the source value rises or
// falls.
//
// Properties with fewer than two keyframes yield a nil path and no
// diagnostics.
func BuildPath(p Property, frameRate float64, logger *slog.Logger) (Path, []Diagnostic) {
	numKeys := p.NumKeys()
	if numKeys < 2 {
		return nil, nil
	}
	var (
		path  Path
		diags []Diagnostic
	)
	start := Pt(p.KeyTime(1)*frameRate, firstComponent(p.KeyValue(1)))
	path.MoveTo(start)
	for i := 1; i < numKeys; i++ {
		tw := NewTweenData(p, i, i+1, frameRate)
		et := Classify(p, i)
		logPair(logger, i, et, tw)
		end := Pt(tw.EndFrame, tw.EndValue)
		if et == LinearLinear {
			path.LineTo(end)
			continue
		}
		if et == Unsupported {
			diags = append(diags, diagnose(p, i))
		}
		out := OutgoingControlPoint(p, i, tw, frameRate)
		in := IncomingControlPoint(p, i, tw, frameRate)
		path.CubicCurveTo(out, in, end)
	}
	if end, ok := path.End(); ok && end.Y > start.Y {
		path = path.InvertY()
	}
	return path, diags
}

// NormalizedSegment holds one keyframe pair's control points in the unit
// square: outgoing (x1, y1), incoming (x2, y2).
type NormalizedSegment [4]float64

// BuildNormalizedSegments computes both control points of every keyframe
// pair, regardless of classification, and normalizes them into the unit
// square. Unsupported combinations are still reported through diagnostics.
//
// Properties with fewer than two keyframes yield nil and no diagnostics.
func BuildNormalizedSegments(p Property, frameRate float64, opts Options) ([]NormalizedSegment, []Diagnostic) {
	numKeys := p.NumKeys()
	if numKeys < 2 {
		return nil, nil
	}
	var (
		segs  []NormalizedSegment
		diags []Diagnostic
	)
	for i := 1; i < numKeys; i++ {
		tw := NewTweenData(p, i, i+1, frameRate)
		et := Classify(p, i)
		logPair(opts.Logger, i, et, tw)
		if et == Unsupported {
			diags = append(diags, diagnose(p, i))
		}
		norm := NewNormalizer(tw, opts.ClampInfiniteValues)
		out := norm.Normalize(OutgoingControlPoint(p, i, tw, frameRate))
		in := norm.Normalize(IncomingControlPoint(p, i, tw, frameRate))
		segs = append(segs, NormalizedSegment{out.X, out.Y, in.X, in.Y})
	}
	return segs, diags
}

// arrayPrecision is the number of decimals the normalized-array serialization
// uses.
const arrayPrecision = 2

func formatSegments(segs []NormalizedSegment) string {
	sb := &strings.Builder{}
	for i, seg := range segs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j, v := range seg {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatFixed(v, arrayPrecision))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func diagnose(p Property, i int) Diagnostic {
	return Diagnostic{
		Pair:    i,
		OutType: p.KeyOutInterpolationType(i),
		InType:  p.KeyInInterpolationType(i + 1),
	}
}

func logPair(logger *slog.Logger, i int, et EaseType, tw TweenData) {
	if logger == nil {
		return
	}
	logger.Debug("classified keyframe pair",
		slog.Int("pair", i),
		slog.String("ease", et.String()),
		slog.Float64("startFrame", tw.StartFrame),
		slog.Float64("endFrame", tw.EndFrame),
		slog.Float64("startValue", tw.StartValue),
		slog.Float64("endValue", tw.EndValue),
	)
}
