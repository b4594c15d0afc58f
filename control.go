package cadence

// Control-flow actions. They are instant and have no target; their only
// effect is the Result they hand back to the scheduler (and, for the callback
// variants, the host function they call).

// RepeatForever restarts its sequence from the first action every time it
// runs.
type RepeatForever struct {
	instant
}

// NewRepeatForever creates a RepeatForever action.
func NewRepeatForever() *RepeatForever {
	return &RepeatForever{}
}

func (a *RepeatForever) Execute(float32) Result {
	return Repeat
}

// counter implements the pre-decrement loop count shared by RepeatCount and
// RepeatBackCount. The counter is decremented before it is compared, so a
// count of 1 finishes on the first call and a count of n loops n-1 times.
// Once it reports done it re-arms, so an enclosing loop replays it in full.
type counter struct {
	times     int
	remaining int
}

func newCounter(times int) counter {
	return counter{times: times, remaining: times}
}

// next reports whether the loop should run again.
func (c *counter) next() bool {
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = c.times
		return false
	}
	return true
}

// RepeatCount restarts its sequence from the first action until it has run
// times times.
type RepeatCount struct {
	instant
	counter
}

// NewRepeatCount creates a RepeatCount action. times <= 1 never loops.
func NewRepeatCount(times int) *RepeatCount {
	return &RepeatCount{counter: newCounter(times)}
}

func (a *RepeatCount) Execute(float32) Result {
	if a.next() {
		return Repeat
	}
	return Done
}

// RepeatBackCount moves the cursor back actions steps until it has run times
// times. The scheduler limits the jump to its configured maximum rewind.
type RepeatBackCount struct {
	instant
	counter
	back int
}

// NewRepeatBackCount creates a RepeatBackCount action. back <= 0 rewinds to
// the start of the sequence, like RepeatCount.
func NewRepeatBackCount(back, times int) *RepeatBackCount {
	return &RepeatBackCount{counter: newCounter(times), back: max(back, 0)}
}

func (a *RepeatBackCount) Execute(float32) Result {
	if a.next() {
		return RepeatBack(a.back)
	}
	return Done
}

// RepeatCondition asks the host whether to restart the sequence. A nil
// predicate always continues forward.
type RepeatCondition struct {
	instant
	cond func(tag uint32) bool
}

// NewRepeatCondition creates a RepeatCondition action. cond receives tag.
func NewRepeatCondition(tag uint32, cond func(tag uint32) bool) *RepeatCondition {
	return &RepeatCondition{instant: instant{tag: tag}, cond: cond}
}

func (a *RepeatCondition) Execute(float32) Result {
	if a.cond != nil && a.cond(a.tag) {
		return Repeat
	}
	return Done
}

// RepeatBackCondition asks the host whether to move the cursor back.
// A nil predicate always continues forward.
type RepeatBackCondition struct {
	instant
	cond func(tag uint32) bool
	back int
}

// NewRepeatBackCondition creates a RepeatBackCondition action.
func NewRepeatBackCondition(tag uint32, back int, cond func(tag uint32) bool) *RepeatBackCondition {
	return &RepeatBackCondition{instant: instant{tag: tag}, cond: cond, back: max(back, 0)}
}

func (a *RepeatBackCondition) Execute(float32) Result {
	if a.cond != nil && a.cond(a.tag) {
		return RepeatBack(a.back)
	}
	return Done
}

// Callback calls a host function with its tag.
type Callback struct {
	instant
	fn func(tag uint32)
}

// NewCallback creates a Callback action. A nil fn is a no-op.
func NewCallback(tag uint32, fn func(tag uint32)) *Callback {
	return &Callback{instant: instant{tag: tag}, fn: fn}
}

func (a *Callback) Execute(float32) Result {
	if a.fn != nil {
		a.fn(a.tag)
	}
	return Done
}

// CallbackInteger calls a host function with its tag and a fixed value.
type CallbackInteger struct {
	instant
	fn    func(tag uint32, value int32)
	value int32
}

// NewCallbackInteger creates a CallbackInteger action. A nil fn is a no-op.
func NewCallbackInteger(tag uint32, fn func(tag uint32, value int32), value int32) *CallbackInteger {
	return &CallbackInteger{instant: instant{tag: tag}, fn: fn, value: value}
}

func (a *CallbackInteger) Execute(float32) Result {
	if a.fn != nil {
		a.fn(a.tag, a.value)
	}
	return Done
}
