// Package cadence schedules timed action sequences against 2D scene objects
// for [Ebitengine] games.
//
// An action is either instant (place, show, set texture, run a callback) or
// an interval that runs over a duration (move, rotate, scale, fade, blink,
// tint, shake, follow a spline). Actions are grouped into a [Sequence] and
// handed to a [Scheduler], which advances every running sequence once per
// [Scheduler.Tick].
//
// # Quick start
//
//	sched := cadence.NewScheduler(cadence.Config{})
//	hero := cadence.NewSprite("hero", cadence.NewTexture(img))
//
//	seq := cadence.MustSequence(1, hero,
//		cadence.Eased(cadence.NewMoveTo(0, hero, 200, 100, 500*time.Millisecond), cadence.EaseBounceOut),
//		cadence.NewCallback(1, func(tag uint32) { log.Print("landed") }),
//		cadence.NewRepeatForever(),
//	)
//	sched.RunSequence(seq)
//
// Call Tick from your game's Update with the frame duration, or let
// [Driver] do it:
//
//	d := cadence.NewDriver(sched, 640, 480)
//	d.DrawFunc = func(screen *ebiten.Image) { cadence.DrawNodes(screen, nodes) }
//	cadence.Run(d, cadence.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// # Ticks
//
// Within one tick every live sequence is visited in submission order. A
// sequence executes instant actions back to back until an interval action
// reports it is still in progress, so a chain of instants resolves in a
// single tick while at most one interval advances per sequence per tick.
//
// Repeat actions rewind the cursor: [Repeat] restarts the sequence and
// [RepeatBack] steps back a number of actions. Each action is started again
// when the cursor lands on it. Rewinds are clamped by
// [Settings.MaxRewind]. A sequence that loops over instant actions only
// never yields unless [Settings.MaxStepsPerTick] is set.
//
// # Cancellation
//
// [Scheduler.Cancel] and [Scheduler.CancelByTag] remove sequences without
// firing the end hook. Cancelling from inside a callback, including the
// sequence currently executing, is safe.
//
// # Scripts
//
// [LoadScript] reads sequences from JSON so that timelines can be authored
// outside Go code. The cadence-play command plays a script headlessly.
//
// [Ebitengine]: https://ebitengine.org
package cadence
