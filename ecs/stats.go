package ecs

import (
	"github.com/phanxgames/randomlife"

	"github.com/yohamta/donburi"
)

// Stats counts what the creature did, as seen through StepEventType.
type Stats struct {
	Steps     uint64
	Rollbacks uint64
	Skipped   uint64
	Last      randomlife.StepEvent
}

// StatsComponent is the Donburi component holding Stats.
var StatsComponent = donburi.NewComponentType[Stats]()

// NewStatsEntity creates an entity with a Stats component and subscribes it to
// StepEventType. The counters advance when the world processes its events.
func NewStatsEntity(world donburi.World) donburi.Entity {
	entity := world.Create(StatsComponent)
	StepEventType.Subscribe(world, func(w donburi.World, e randomlife.StepEvent) {
		if !w.Valid(entity) {
			return
		}
		s := StatsComponent.Get(w.Entry(entity))
		s.Steps++
		if e.RolledBack {
			s.Rollbacks++
		}
		if e.Degenerate {
			s.Skipped++
		}
		s.Last = e
	})
	return entity
}

// ReadStats returns a copy of the Stats held by entity.
func ReadStats(world donburi.World, entity donburi.Entity) Stats {
	return *StatsComponent.Get(world.Entry(entity))
}
