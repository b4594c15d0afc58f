package cadence

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is the unit of behavior a Scheduler runs.
//
// Start is called every time the scheduler enters the action, including after
// a Repeat or RepeatBack rewind lands on it, and once when a sequence is
// submitted. Actions that depend on their target's current state capture it
// there. Execute advances the action by dt milliseconds and reports what the
// scheduler should do next.
type Action interface {
	Tag() uint32
	Kind() Kind
	Start()
	Execute(dt float32) Result
}

// --- Instant ---

// instant is embedded by every zero-duration action.
type instant struct {
	tag uint32
}

func (i *instant) Tag() uint32 { return i.tag }
func (i *instant) Kind() Kind  { return Instant }
func (i *instant) Start()      {}

// --- Interval ---

// interval is the shared clock of every duration-bearing action. The tween
// runs linearly from 0 to 1 over duration milliseconds; easeFn shapes the
// result.
type interval struct {
	tag      uint32
	duration float32
	clock    *gween.Tween
	progress float32
	easeFn   EaseFunc
}

func newInterval(tag uint32, d time.Duration) interval {
	ms := toMillis(d)
	return interval{
		tag:      tag,
		duration: ms,
		clock:    gween.New(0, 1, ms, ease.Linear),
		easeFn:   easeLinear,
	}
}

func (i *interval) Tag() uint32 { return i.tag }
func (i *interval) Kind() Kind  { return Interval }

// Start rewinds the clock. Actions that capture target state override Start
// and call this first.
func (i *interval) Start() {
	i.clock.Reset()
	i.progress = 0
}

// SetInterpolation selects the easing curve from the catalog.
func (i *interval) SetInterpolation(e Ease) {
	i.easeFn = e.Func()
}

// SetEaseFunc installs a custom easing curve. nil restores linear.
func (i *interval) SetEaseFunc(fn EaseFunc) {
	if fn == nil {
		fn = easeLinear
	}
	i.easeFn = fn
}

// Elapsed returns the time accumulated since the last Start, capped at the
// duration.
func (i *interval) Elapsed() time.Duration {
	if i.duration <= 0 {
		return 0
	}
	ms := float64(i.progress) * float64(i.duration)
	return time.Duration(ms * float64(time.Millisecond)).Round(time.Microsecond)
}

// Duration returns the configured duration.
func (i *interval) Duration() time.Duration {
	return time.Duration(i.duration * float32(time.Millisecond))
}

// Progress returns the raw progress in [0, 1]. A non-positive duration is
// always complete.
func (i *interval) Progress() float32 {
	if i.duration <= 0 {
		return 1
	}
	return i.progress
}

// step advances the clock by dt and returns raw and eased progress.
func (i *interval) step(dt float32) (progress, eased float32) {
	v, finished := i.clock.Update(dt)
	if finished {
		v = 1
	}
	i.progress = v
	return v, i.easeFn(v)
}

func resultFor(progress float32) Result {
	if progress < 1 {
		return InProgress
	}
	return Done
}

// Easer is implemented by every interval action.
type Easer interface {
	SetInterpolation(e Ease)
	SetEaseFunc(fn EaseFunc)
}

// Eased sets the interpolation of a and returns it, for inline use when
// building sequences:
//
//	cadence.Eased(cadence.NewMoveTo(0, hero, 100, 0, time.Second), cadence.EaseBounceOut)
func Eased[A Easer](a A, e Ease) A {
	a.SetInterpolation(e)
	return a
}

func lerp(from, delta float64, t float32) float64 {
	return from + delta*float64(t)
}
