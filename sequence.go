package cadence

import (
	"errors"
	"fmt"
)

// MaxTemplateActions is the capacity of a Sequence template.
const MaxTemplateActions = 64

var (
	// ErrNilAction is returned when a nil Action is submitted or appended.
	ErrNilAction = errors.New("cadence: nil action")
	// ErrEmptySequence is returned when a sequence with no actions is submitted.
	ErrEmptySequence = errors.New("cadence: empty sequence")
	// ErrSequenceFull is returned when appending would exceed MaxTemplateActions.
	ErrSequenceFull = errors.New("cadence: sequence template full")
	// ErrSequenceTooLong is returned when a template holds more actions than
	// the scheduler's per-sequence capacity.
	ErrSequenceTooLong = errors.New("cadence: sequence exceeds scheduler capacity")
	// ErrSequenceConsumed is returned when a template is used after it was
	// submitted.
	ErrSequenceConsumed = errors.New("cadence: sequence already submitted")
	// ErrTooManyPoints is returned by NewSplineTo for oversized point lists.
	ErrTooManyPoints = errors.New("cadence: too many spline points")
	// ErrNoPoints is returned by NewSplineTo for an empty point list.
	ErrNoPoints = errors.New("cadence: spline needs at least one point")
)

// Sequence is an ordered list of actions built by the caller and handed to
// Scheduler.RunSequence, which takes ownership of the actions. A Sequence is
// single-use: after a successful submission every method that would change
// or resubmit it returns ErrSequenceConsumed.
type Sequence struct {
	tag      uint32
	target   Target
	actions  []Action
	consumed bool
}

// NewSequence creates a template holding actions, in order. It fails if any
// action is nil or there are more than MaxTemplateActions; in that case
// nothing is kept.
func NewSequence(tag uint32, target Target, actions ...Action) (*Sequence, error) {
	q := &Sequence{tag: tag, target: target}
	if err := q.Append(actions...); err != nil {
		return nil, err
	}
	return q, nil
}

// MustSequence is like NewSequence but panics on error. Use it for
// sequences built from literals.
func MustSequence(tag uint32, target Target, actions ...Action) *Sequence {
	q, err := NewSequence(tag, target, actions...)
	if err != nil {
		panic(err)
	}
	return q
}

// Append adds actions to the end of the template. Either all of them are
// added or, on error, none are.
func (q *Sequence) Append(actions ...Action) error {
	if q.consumed {
		return ErrSequenceConsumed
	}
	for i, a := range actions {
		if a == nil {
			return fmt.Errorf("append action %d: %w", i, ErrNilAction)
		}
	}
	if n := len(q.actions) + len(actions); n > MaxTemplateActions {
		return fmt.Errorf("append %d actions (%d total, max %d): %w",
			len(actions), n, MaxTemplateActions, ErrSequenceFull)
	}
	q.actions = append(q.actions, actions...)
	return nil
}

// Tag returns the tag reported to the completion callback and matched by
// CancelByTag.
func (q *Sequence) Tag() uint32 {
	return q.tag
}

// Target returns the target the sequence was built for, which may be nil.
func (q *Sequence) Target() Target {
	return q.target
}

// Len returns the number of actions in the template.
func (q *Sequence) Len() int {
	return len(q.actions)
}

// Consumed reports whether the template has been submitted.
func (q *Sequence) Consumed() bool {
	return q.consumed
}

// take validates the template against capacity and hands its actions over.
func (q *Sequence) take(capacity int) ([]Action, error) {
	if q.consumed {
		return nil, ErrSequenceConsumed
	}
	if len(q.actions) == 0 {
		return nil, ErrEmptySequence
	}
	if len(q.actions) > capacity {
		return nil, fmt.Errorf("sequence %d has %d actions (max %d): %w",
			q.tag, len(q.actions), capacity, ErrSequenceTooLong)
	}
	actions := q.actions
	q.actions = nil
	q.consumed = true
	return actions, nil
}
