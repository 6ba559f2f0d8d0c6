package randomlife

// StepEvent describes one tick that ran.
type StepEvent struct {
	Tick       uint64  // 1-based tick counter
	Angle      float64 // sampled turn in radians
	Position   Vec2    // position after the tick, rollback applied
	Heading    Vec2
	RolledBack bool // the step was undone to keep the body on screen
	Degenerate bool // the turn was skipped, see ErrDegenerateHeading
}

// Observer receives every tick the game runs. Attach one with WithObserver.
// The ECS bridge in package ecs implements it.
type Observer interface {
	OnStep(event StepEvent)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(StepEvent)

// OnStep calls f(event).
func (f ObserverFunc) OnStep(event StepEvent) { f(event) }
