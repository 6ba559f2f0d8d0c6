// Package ecs bridges the randomlife tick stream into an ECS world.
//
// The primary adapter is [NewDonburiObserver], which publishes every
// [randomlife.StepEvent] into a [Donburi] world as a typed event.
// Subscribe to [StepEventType] in your ECS systems to receive them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	game, err := randomlife.NewGame(cfg,
//		randomlife.WithObserver(ecs.NewDonburiObserver(world)))
//
// Events are queued until the world processes them, typically once per
// frame with events.ProcessAllEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
