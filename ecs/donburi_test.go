package ecs

import (
	"testing"

	"github.com/phanxgames/randomlife"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiObserver(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiObserver(world) == nil {
		t.Fatal("NewDonburiObserver returned nil")
	}
}

func TestDonburiObserver_OnStep(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewDonburiObserver(world)

	var received []randomlife.StepEvent
	StepEventType.Subscribe(world, func(w donburi.World, e randomlife.StepEvent) {
		received = append(received, e)
	})

	obs.OnStep(randomlife.StepEvent{
		Tick:     1,
		Angle:    0.2,
		Position: randomlife.Vec2{X: 401, Y: 300},
		Heading:  randomlife.Vec2{X: 1, Y: 0},
	})
	obs.OnStep(randomlife.StepEvent{
		Tick:       2,
		Position:   randomlife.Vec2{X: 401, Y: 300},
		RolledBack: true,
	})

	if len(received) != 0 {
		t.Fatalf("expected 0 events before processing, got %d", len(received))
	}

	StepEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Tick != 1 || received[0].Angle != 0.2 {
		t.Errorf("event 0 = %+v", received[0])
	}
	if received[0].Position.X != 401 {
		t.Errorf("event 0 X = %v, want 401", received[0].Position.X)
	}
	if !received[1].RolledBack {
		t.Error("event 1 should be a rollback")
	}
}

func TestDonburiObserver_ProcessAllEvents(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewDonburiObserver(world)

	count := 0
	StepEventType.Subscribe(world, func(w donburi.World, e randomlife.StepEvent) {
		count++
	})

	for i := 1; i <= 5; i++ {
		obs.OnStep(randomlife.StepEvent{Tick: uint64(i)})
	}
	events.ProcessAllEvents(world)

	if count != 5 {
		t.Errorf("expected 5 events, got %d", count)
	}
}
