package cadence

import (
	"fmt"
	"image/color"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied 8-bit color.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

// Vec2 is a 2D vector used for positions and spline control points.
type Vec2 struct {
	X, Y float64
}

// Kind distinguishes actions that finish in the tick they start from actions
// that advance over several ticks.
type Kind uint8

const (
	Instant  Kind = iota // completes within a single tick
	Interval             // advances once per tick until its duration elapses
)

func (k Kind) String() string {
	switch k {
	case Instant:
		return "instant"
	case Interval:
		return "interval"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result is the control-flow signal an action returns from Execute.
// Values are ranked: InProgress < Done < Repeat < RepeatBack(1) < RepeatBack(2) ...
// Repeat and every RepeatBack value rewind the sequence cursor.
type Result int

const (
	InProgress Result = iota // the action needs more ticks
	Done                     // the action finished; advance the cursor
	Repeat                   // restart the sequence from its first action
)

// MaxRepeatBack is the largest distance a RepeatBack result can encode.
const MaxRepeatBack = 10

// DefaultMaxRewind is the rewind limit of a scheduler configured without one.
const DefaultMaxRewind = MaxRepeatBack

// RepeatBack returns the result that moves the cursor n actions back.
// n <= 0 is equivalent to Repeat; n above MaxRepeatBack is clamped.
func RepeatBack(n int) Result {
	if n <= 0 {
		return Repeat
	}
	return Repeat + Result(min(n, MaxRepeatBack))
}

// Back returns how many actions a RepeatBack result rewinds, or 0 for any
// other result (including Repeat).
func (r Result) Back() int {
	if r <= Repeat {
		return 0
	}
	return int(r - Repeat)
}

// IsRewind reports whether r is Repeat or a RepeatBack value.
func (r Result) IsRewind() bool {
	return r >= Repeat
}

func (r Result) String() string {
	switch {
	case r == InProgress:
		return "in-progress"
	case r == Done:
		return "done"
	case r == Repeat:
		return "repeat"
	case r > Repeat:
		return fmt.Sprintf("repeat-back-%d", r.Back())
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// toMillis converts a duration to the float32 milliseconds actions keep
// their clocks in.
func toMillis(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}
