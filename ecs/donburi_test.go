package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/cadence"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiNotifier(t *testing.T) {
	world := donburi.NewWorld()
	notify := NewDonburiNotifier(world)
	if notify == nil {
		t.Fatal("NewDonburiNotifier returned nil")
	}

	var received []SequenceEnded
	SequenceEndedEventType.Subscribe(world, func(w donburi.World, e SequenceEnded) {
		received = append(received, e)
	})

	notify(7)
	notify(9)

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	SequenceEndedEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Tag != 7 || received[1].Tag != 9 {
		t.Errorf("events: %+v", received)
	}
}

func TestAttach_PublishesOnCompletion(t *testing.T) {
	world := donburi.NewWorld()
	s := cadence.NewScheduler(cadence.Config{})
	Attach(s, world)

	var tags []uint32
	SequenceEndedEventType.Subscribe(world, func(w donburi.World, e SequenceEnded) {
		tags = append(tags, e.Tag)
	})

	node := cadence.NewNode("n")
	q := cadence.MustSequence(3, node,
		cadence.NewMoveTo(0, node, 10, 0, 100*time.Millisecond),
	)
	if _, err := s.RunSequence(q); err != nil {
		t.Fatal(err)
	}
	cancelled, err := s.Run(cadence.NewDelayTime(time.Second))
	if err != nil {
		t.Fatal(err)
	}

	s.Tick(50 * time.Millisecond)
	s.Cancel(cancelled)
	s.Tick(50 * time.Millisecond)
	events.ProcessAllEvents(world)

	if len(tags) != 1 || tags[0] != 3 {
		t.Errorf("expected one event with tag 3, got %v", tags)
	}
}

func TestDonburiNotifier_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	notify := NewDonburiNotifier(world)

	var count1, count2 int
	SequenceEndedEventType.Subscribe(world, func(w donburi.World, e SequenceEnded) {
		count1++
	})
	SequenceEndedEventType.Subscribe(world, func(w donburi.World, e SequenceEnded) {
		count2++
	})

	notify(1)
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
