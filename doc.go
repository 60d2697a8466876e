// Package ease converts per-keyframe temporal easing data, as recorded by a
// keyframe animation editor, into cubic-Bézier curve descriptions understood
// by CustomEase-style web animation libraries.
//
// # Pipeline
//
// The input is one animatable property's keyframes: for each keyframe a time,
// a value, the interpolation types on its incoming and outgoing side, and the
// temporal ease (speed and influence) applied on each side. Keyframe data is
// consumed through the [Property] interface, so the conversion is independent
// of any particular host; [PropertyData] is a ready-made implementation
// backed by a YAML document.
//
// For every consecutive keyframe pair the converter derives a [TweenData]
// record (timing and value deltas in frame units), classifies the pair's
// interpolation-type combination (see [EaseType]), and derives the pair's two
// Bézier control points from its ease data. The pairs assemble into a [Path]
// of move, line, and cubic curve commands in absolute (frame, value)
// coordinates.
//
// # Output modes
//
// [Convert] serializes a property in one of two formats. The default is an
// SVG-style path string:
//
//	M0.0000,0.0000C8.0000,2.6667,16.0000,-97.3333,24.0000,-100.0000
//
// with all coordinates fixed to four decimals and no whitespace. When the
// curve's final value exceeds its start value, the whole path is flipped
// around the X axis first; the consuming format derives animation progress
// from the path's shape and expects this orientation regardless of whether
// the source animation's value rises or falls.
//
// The alternate mode emits, for a single property, one group of four
// normalized numbers per keyframe pair:
//
//	[0.33,0.03,0.67,0.97]
//
// where each pair's control points are mapped into the unit square by
// [Normalizer] and rounded to two decimals.
//
// # Limitations
//
// Vector-valued properties collapse to their first component, and
// multi-element temporal ease data collapses to its first element. The
// conversion therefore describes a one-dimensional value curve;
// multi-dimensional curves are out of scope.
package ease
