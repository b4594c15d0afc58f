package cadence

import (
	"errors"
	"testing"
)

func TestNewSequence(t *testing.T) {
	n := NewNode("n")
	q, err := NewSequence(3, n, NewShow(n), NewHide(n))
	if err != nil {
		t.Fatal(err)
	}
	if q.Tag() != 3 || q.Target() != Target(n) || q.Len() != 2 || q.Consumed() {
		t.Errorf("sequence = tag %d target %v len %d consumed %v", q.Tag(), q.Target(), q.Len(), q.Consumed())
	}
}

func TestNewSequenceRejectsNil(t *testing.T) {
	n := NewNode("n")
	q, err := NewSequence(0, n, NewShow(n), nil)
	if !errors.Is(err, ErrNilAction) {
		t.Errorf("err = %v, want ErrNilAction", err)
	}
	if q != nil {
		t.Error("expected nil sequence on error")
	}
}

func TestSequenceAppendIsAtomic(t *testing.T) {
	q := MustSequence(0, nil)
	for range MaxTemplateActions - 1 {
		if err := q.Append(NewDelayTime(0)); err != nil {
			t.Fatal(err)
		}
	}
	err := q.Append(NewDelayTime(0), NewDelayTime(0))
	if !errors.Is(err, ErrSequenceFull) {
		t.Errorf("err = %v, want ErrSequenceFull", err)
	}
	if q.Len() != MaxTemplateActions-1 {
		t.Errorf("Len = %d after failed append, want %d", q.Len(), MaxTemplateActions-1)
	}
	if err := q.Append(NewDelayTime(0), nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("err = %v, want ErrNilAction", err)
	}
	if q.Len() != MaxTemplateActions-1 {
		t.Errorf("Len = %d after nil append, want %d", q.Len(), MaxTemplateActions-1)
	}
	if err := q.Append(NewDelayTime(0)); err != nil {
		t.Errorf("filling the last slot: %v", err)
	}
}

func TestSequenceConsumedAfterRun(t *testing.T) {
	s := NewScheduler(Config{})
	q := MustSequence(0, nil, NewDelayTime(0))
	if _, err := s.RunSequence(q); err != nil {
		t.Fatal(err)
	}
	if !q.Consumed() || q.Len() != 0 {
		t.Errorf("consumed %v len %d, want true 0", q.Consumed(), q.Len())
	}
	if err := q.Append(NewDelayTime(0)); !errors.Is(err, ErrSequenceConsumed) {
		t.Errorf("Append after run = %v, want ErrSequenceConsumed", err)
	}
}

func TestMustSequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustSequence(0, nil, nil)
}
