package ease

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type CommandKind int

const (
	// Start the curve at the point without drawing anything.
	MoveToKind CommandKind = iota + 1
	// Draw a straight segment from the current location to the point.
	LineToKind
	// Draw a cubic Bézier from the current location using an outgoing
	// control point, an incoming control point, and an end anchor.
	CubicCurveToKind
)

func (k CommandKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CubicCurveToKind:
		return "CubicCurveTo"
	default:
		return "InvalidCommand"
	}
}

// arity returns the number of points the kind carries.
func (k CommandKind) arity() int {
	if k == CubicCurveToKind {
		return 3
	}
	return 1
}

// Command is a single drawing instruction of an easing path. MoveTo and
// LineTo use P0 only; CubicCurveTo uses P0 (outgoing control point), P1
// (incoming control point), and P2 (end anchor), in that order.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
}

// NewCommand builds a command from interleaved x,y coordinates. It panics
// unless coords holds exactly one x,y pair for MoveTo and LineTo, or three
// pairs for CubicCurveTo; a mismatch is a bug in the caller, not bad keyframe
// data, and must not be swallowed.
func NewCommand(kind CommandKind, coords ...float64) Command {
	if len(coords) != 2*kind.arity() {
		panic(fmt.Sprintf("ease: %v requires %d coordinates, got %d", kind, 2*kind.arity(), len(coords)))
	}
	cmd := Command{Kind: kind}
	pts := [...]*Point{&cmd.P0, &cmd.P1, &cmd.P2}
	for i := 0; i < len(coords); i += 2 {
		*pts[i/2] = Pt(coords[i], coords[i+1])
	}
	return cmd
}

func MoveTo(pt Point) Command {
	return NewCommand(MoveToKind, pt.X, pt.Y)
}

func LineTo(pt Point) Command {
	return NewCommand(LineToKind, pt.X, pt.Y)
}

func CubicCurveTo(out, in, end Point) Command {
	return NewCommand(CubicCurveToKind, out.X, out.Y, in.X, in.Y, end.X, end.Y)
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case CubicCurveToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", cmd.Kind, cmd.P0, cmd.P1, cmd.P2)
	default:
		return fmt.Sprintf("%s(%s)", cmd.Kind, cmd.P0)
	}
}

// Points returns the command's points, in kind order.
func (cmd Command) Points() []Point {
	if cmd.Kind == CubicCurveToKind {
		return []Point{cmd.P0, cmd.P1, cmd.P2}
	}
	return []Point{cmd.P0}
}

// End returns the point the pen rests at after the command.
func (cmd Command) End() Point {
	if cmd.Kind == CubicCurveToKind {
		return cmd.P2
	}
	return cmd.P0
}

// InvertY returns the command with every point mirrored around the X axis.
func (cmd Command) InvertY() Command {
	switch cmd.Kind {
	case CubicCurveToKind:
		return CubicCurveTo(cmd.P0.InvertY(), cmd.P1.InvertY(), cmd.P2.InvertY())
	case MoveToKind:
		return MoveTo(cmd.P0.InvertY())
	case LineToKind:
		return LineTo(cmd.P0.InvertY())
	default:
		panic(fmt.Sprintf("ease: invalid command kind %v", cmd.Kind))
	}
}

// Path is one property's complete easing curve, an ordered sequence of
// drawing commands. A path built from keyframe data always begins with a
// MoveTo at the first keyframe's (frame, value) coordinate.
type Path []Command

// Push adds a command to the path.
func (p *Path) Push(cmd Command) {
	*p = append(*p, cmd)
}

// MoveTo pushes a "move to" command onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" command onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicCurveTo pushes a cubic curve command onto the path.
func (p *Path) CubicCurveTo(out, in, end Point) { p.Push(CubicCurveTo(out, in, end)) }

// Start returns the path's first point. ok is false for an empty path.
func (p Path) Start() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0].P0, true
}

// End returns the final point of the path's last command. ok is false for an
// empty path.
func (p Path) End() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1].End(), true
}

// InvertY returns a new path with every point mirrored around the X axis.
// Applying it twice yields the original coordinates.
func (p Path) InvertY() Path {
	cmds := make(Path, len(p))
	for i := range p {
		cmds[i] = p[i].InvertY()
	}
	return cmds
}

// pathPrecision is the number of decimals the path serialization uses. The
// consuming easing format parses fixed-precision coordinates.
const pathPrecision = 4

// String renders the path in the easing library's format: each command's
// single-letter tag followed by its points' x,y pairs, every coordinate fixed
// to four decimals, points separated by commas, commands concatenated with no
// whitespace.
//
// See [Path.Write] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p Path) String() string {
	sb := &strings.Builder{}
	p.Write(sb)
	return sb.String()
}

// Write renders the path to w. See [Path.String] for the format.
func (p Path) Write(w io.Writer) error {
	var err error
	writef := func(format string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}
	for _, cmd := range p {
		switch cmd.Kind {
		case MoveToKind:
			writef("M%s,%s", formatFixed(cmd.P0.X, pathPrecision), formatFixed(cmd.P0.Y, pathPrecision))
		case LineToKind:
			writef("L%s,%s", formatFixed(cmd.P0.X, pathPrecision), formatFixed(cmd.P0.Y, pathPrecision))
		case CubicCurveToKind:
			writef("C%s,%s,%s,%s,%s,%s",
				formatFixed(cmd.P0.X, pathPrecision), formatFixed(cmd.P0.Y, pathPrecision),
				formatFixed(cmd.P1.X, pathPrecision), formatFixed(cmd.P1.Y, pathPrecision),
				formatFixed(cmd.P2.X, pathPrecision), formatFixed(cmd.P2.Y, pathPrecision))
		default:
			panic(fmt.Sprintf("ease: invalid command kind %v", cmd.Kind))
		}
	}
	return err
}

func formatFixed(v float64, prec int) string {
	if v == 0 {
		v = 0 // fold negative zero, Y inversion produces it
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
