// Package ecs bridges cadence sequence completions into ECS worlds.
//
// The primary adapter is [NewDonburiNotifier], which publishes a
// [SequenceEnded] event to a [Donburi] world every time a sequence runs to
// completion. Subscribe to [SequenceEndedEventType] in your ECS systems to
// react to finished sequences.
//
// Usage:
//
//	sched := cadence.NewScheduler(cadence.Config{
//		OnSequenceEnd: ecs.NewDonburiNotifier(world),
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
