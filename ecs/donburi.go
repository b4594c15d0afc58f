package ecs

import (
	"github.com/phanxgames/cadence"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SequenceEnded is published when a sequence runs past its last action.
// Cancelled sequences produce no event.
type SequenceEnded struct {
	Tag uint32
}

// SequenceEndedEventType is the Donburi event type for finished sequences.
var SequenceEndedEventType = events.NewEventType[SequenceEnded]()

// NewDonburiNotifier returns a completion callback for cadence.Config that
// publishes SequenceEnded events to world. Events are queued and delivered
// by events.ProcessAllEvents or SequenceEndedEventType.ProcessEvents.
func NewDonburiNotifier(world donburi.World) func(tag uint32) {
	return func(tag uint32) {
		SequenceEndedEventType.Publish(world, SequenceEnded{Tag: tag})
	}
}

// Attach installs a Donburi notifier on s, replacing its completion callback.
func Attach(s *cadence.Scheduler, world donburi.World) {
	s.SetOnSequenceEnd(NewDonburiNotifier(world))
}
