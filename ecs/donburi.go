// Package ecs provides ECS adapters for randomlife.
package ecs

import (
	"github.com/phanxgames/randomlife"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StepEventType is the Donburi event type for creature ticks.
// Subscribe to this in your ECS systems to receive every step, rollback and
// skipped turn.
var StepEventType = events.NewEventType[randomlife.StepEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates an Observer backed by a Donburi world.
// Step events are published to StepEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) randomlife.Observer {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) OnStep(event randomlife.StepEvent) {
	StepEventType.Publish(o.world, event)
}
