package cadence

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Handle identifies a live sequence. The zero Handle never matches a
// sequence. Handles of finished or cancelled sequences stay invalid even
// after their slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// instance is the scheduler-owned run of a sequence.
type instance struct {
	tag     uint32
	actions []Action
	cursor  int
	gen     uint32
	live    bool
}

// Scheduler owns the live sequences and advances them once per frame. It is
// not safe for concurrent use; call every method from the frame goroutine.
// Actions may call back into the scheduler (Run, Cancel) from Execute.
type Scheduler struct {
	cfg    Config
	logger zerolog.Logger
	debug  bool

	// slots is an arena of instances; free holds reusable indices. order is
	// the submission order of live handles and may hold stale handles until
	// the next compaction.
	slots []*instance
	free  []uint32
	order []Handle
	stale int
	count int

	ticking  bool
	clock    func() time.Time
	lastTime time.Time
}

// NewScheduler creates a scheduler. A non-zero cfg.ElasticPeriod is applied
// process-wide, so with several schedulers the most recently created one
// wins.
func NewScheduler(cfg Config) *Scheduler {
	cfg.Settings = cfg.Settings.withDefaults()
	if cfg.ElasticPeriod > 0 {
		SetElasticPeriod(cfg.ElasticPeriod)
	}
	s := &Scheduler{
		cfg:   cfg,
		clock: cfg.Clock,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	switch {
	case cfg.Logger != nil:
		s.logger = *cfg.Logger
	case cfg.Debug:
		s.logger = newDebugLogger()
	default:
		s.logger = zerolog.Nop()
	}
	s.debug = cfg.Debug
	return s
}

// Settings returns the effective settings.
func (s *Scheduler) Settings() Settings {
	return s.cfg.Settings
}

// SetOnSequenceEnd replaces the completion callback.
func (s *Scheduler) SetOnSequenceEnd(fn func(tag uint32)) {
	s.cfg.OnSequenceEnd = fn
}

// Len returns the number of live sequences.
func (s *Scheduler) Len() int {
	return s.count
}

// Run submits a single action as a one-element sequence tagged with the
// action's tag.
func (s *Scheduler) Run(a Action) (Handle, error) {
	if a == nil {
		return Handle{}, ErrNilAction
	}
	return s.add(a.Tag(), []Action{a}), nil
}

// RunSequence submits a template. On success the scheduler owns its actions
// and the template can no longer be used. On error the template is left
// untouched.
func (s *Scheduler) RunSequence(q *Sequence) (Handle, error) {
	if q == nil {
		return Handle{}, ErrEmptySequence
	}
	actions, err := q.take(s.cfg.MaxSequenceActions)
	if err != nil {
		return Handle{}, fmt.Errorf("run sequence: %w", err)
	}
	return s.add(q.tag, actions), nil
}

// add stores a new instance and starts its first action.
func (s *Scheduler) add(tag uint32, actions []Action) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, &instance{})
	}
	inst := s.slots[idx]
	inst.gen++
	if inst.gen == 0 {
		inst.gen = 1
	}
	inst.tag = tag
	inst.actions = actions
	inst.cursor = 0
	inst.live = true

	h := Handle{index: idx, gen: inst.gen}
	s.order = append(s.order, h)
	s.count++
	actions[0].Start()
	s.logAdded(h, inst)
	return h
}

// lookup returns the live instance for h, or nil.
func (s *Scheduler) lookup(h Handle) *instance {
	if h.gen == 0 || int(h.index) >= len(s.slots) {
		return nil
	}
	inst := s.slots[h.index]
	if !inst.live || inst.gen != h.gen {
		return nil
	}
	return inst
}

// Running reports whether h refers to a live sequence.
func (s *Scheduler) Running(h Handle) bool {
	return s.lookup(h) != nil
}

// Cancel removes the sequence identified by h without notifying
// OnSequenceEnd. It reports whether a live sequence was removed.
func (s *Scheduler) Cancel(h Handle) bool {
	inst := s.lookup(h)
	if inst == nil {
		return false
	}
	s.logCancelled(h, inst)
	s.release(h)
	s.settle()
	return true
}

// CancelByTag removes the first live sequence, in submission order, whose
// tag matches. OnSequenceEnd is not called. It reports whether one was found.
func (s *Scheduler) CancelByTag(tag uint32) bool {
	for _, h := range s.order {
		if inst := s.lookup(h); inst != nil && inst.tag == tag {
			s.logCancelled(h, inst)
			s.release(h)
			s.settle()
			return true
		}
	}
	return false
}

// Reset discards every live sequence silently and restarts the Update clock.
func (s *Scheduler) Reset() {
	for _, h := range s.order {
		if s.lookup(h) != nil {
			s.release(h)
		}
	}
	s.lastTime = time.Time{}
	s.settle()
}

// release frees the slot behind h. The order entry is left in place and
// skipped until compaction.
func (s *Scheduler) release(h Handle) {
	inst := s.slots[h.index]
	inst.live = false
	inst.actions = nil
	inst.gen++
	if inst.gen == 0 {
		inst.gen = 1
	}
	s.free = append(s.free, h.index)
	s.count--
	s.stale++
}

// settle compacts order unless a tick is iterating it.
func (s *Scheduler) settle() {
	if !s.ticking {
		s.compact()
	}
}

// compact drops stale handles from order, keeping submission order.
func (s *Scheduler) compact() {
	if s.stale == 0 {
		return
	}
	live := s.order[:0]
	for _, h := range s.order {
		if s.lookup(h) != nil {
			live = append(live, h)
		}
	}
	clear(s.order[len(live):])
	s.order = live
	s.stale = 0
}

// Update ticks with the wall-clock time elapsed since the previous Update.
// The first call after NewScheduler or Reset uses a zero delta.
func (s *Scheduler) Update() {
	now := s.clock()
	var dt time.Duration
	if !s.lastTime.IsZero() {
		dt = now.Sub(s.lastTime)
	}
	s.lastTime = now
	s.Tick(dt)
}

// Tick advances every live sequence by dt. Consecutive instant actions run
// immediately; each sequence executes at most one interval action per tick.
// Sequences that finish are removed and reported to OnSequenceEnd in the
// order they finish.
func (s *Scheduler) Tick(dt time.Duration) {
	if s.ticking {
		panic("cadence: Tick called from inside an action")
	}
	delta := toMillis(dt)
	s.ticking = true
	defer func() {
		s.ticking = false
		s.compact()
	}()

	// order may grow while iterating; sequences submitted during the tick
	// are visited in this same pass.
	for i := 0; i < len(s.order); i++ {
		h := s.order[i]
		inst := s.lookup(h)
		if inst == nil {
			continue
		}
		if !s.advance(h, inst, delta) {
			continue
		}
		tag := inst.tag
		s.logFinished(h, inst)
		s.release(h)
		if s.cfg.OnSequenceEnd != nil {
			s.cfg.OnSequenceEnd(tag)
		}
	}
}

// advance runs one instance for the current tick and reports whether it ran
// past its last action.
func (s *Scheduler) advance(h Handle, inst *instance, dt float32) bool {
	intervalDone := false
	for steps := 1; ; steps++ {
		a := inst.actions[inst.cursor]
		if a.Kind() == Interval {
			intervalDone = true
		}
		result := a.Execute(dt)
		// The action may have cancelled its own sequence.
		if s.lookup(h) != inst {
			return false
		}
		s.logStep(h, inst, a, result)

		switch {
		case result == InProgress:
			return false
		case result == Repeat:
			inst.cursor = 0
		case result.IsRewind():
			back := min(result.Back(), s.cfg.MaxRewind)
			inst.cursor = max(inst.cursor-back, 0)
		default:
			inst.cursor++
			if inst.cursor >= len(inst.actions) {
				return true
			}
		}

		next := inst.actions[inst.cursor]
		next.Start()
		if next.Kind() == Interval && intervalDone {
			return false
		}
		if s.cfg.MaxStepsPerTick > 0 && steps >= s.cfg.MaxStepsPerTick {
			s.logStepLimit(h, inst)
			return false
		}
	}
}
