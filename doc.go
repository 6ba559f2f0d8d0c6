// Package randomlife is a small [Ebitengine] toy: a triangular creature
// wanders a fixed-size window, turning by a random angle and stepping forward
// on every tick, and never leaves the screen.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates the window and game
// loop for you:
//
//	if err := randomlife.Run(randomlife.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build a [Game] with [NewGame] and hand it to
// ebiten.RunGame yourself, or drive [MotionState] directly without a window.
//
// # Simulation
//
// [MotionState] holds the body (a [Shape] of three local-frame points), the
// position, the previous position and the unit heading. [MotionState.Tick]
// runs at most once per [Config.TickInterval] no matter how often it is
// called: it turns the body by an angle drawn from [-MaxTurn, MaxTurn),
// steps StepLength along the heading, and undoes the step when any vertex
// would leave the screen. [MotionState.ComputeRenderShape] returns the body in
// world space for drawing.
//
// # Configuration
//
// [DefaultConfig] reproduces the classic 800x600 "Random Life" window at 64
// ticks per second. [LoadConfig] overlays a YAML document on the defaults:
//
//	tick_rate: 120
//	max_turn: 0.5
//	body: {r: 0.2, g: 0.9, b: 0.4, a: 1}
//	bump_flash: 250ms
//
// # Observing ticks
//
// Every tick that runs is reported as a [StepEvent] to the [Observer] set with
// [WithObserver]. Package ecs forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package randomlife
