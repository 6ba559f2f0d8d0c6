package randomlife

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// ErrDegenerateHeading is returned by Rotate when the rotated first vertex has
// no length and cannot give a heading. The rotation is skipped.
var ErrDegenerateHeading = errors.New("degenerate heading: first vertex at origin")

// degenerateEpsilon is the vertex length below which a heading is undefined.
const degenerateEpsilon = 1e-9

// Shape is the creature's body in its local frame. The first vertex is the
// head and defines the heading.
type Shape [3]Vec2

// TriangleShape returns an equilateral triangle with the given side length,
// head vertex first.
func TriangleShape(side float64) Shape {
	h := math.Sqrt(0.75) / 2 * side
	return Shape{
		{X: -0.5 * side, Y: -h},
		{X: 0.5 * side, Y: -h},
		{X: 0, Y: h},
	}
}

// Translate returns the shape moved by offset.
func (s Shape) Translate(offset Vec2) Shape {
	for i := range s {
		s[i] = s[i].Add(offset)
	}
	return s
}

// MotionState is the creature: a triangle that turns by a random angle and
// steps forward once per tick, never leaving the screen.
//
// MotionState is not safe for concurrent use; it lives on the game loop.
type MotionState struct {
	cfg      Config
	bounds   Rect
	interval time.Duration
	rng      *rand.Rand

	shape        Shape
	position     Vec2
	lastPosition Vec2
	heading      Vec2
	lastUpdate   time.Time

	ticks     uint64
	rollbacks uint64
}

// NewMotionState places the creature at the center of the configured screen
// facing its first vertex. now starts the tick clock. A nil rng is replaced by
// one seeded from cfg.Seed, or randomly when the seed is 0.
func NewMotionState(cfg Config, rng *rand.Rand, now time.Time) (*MotionState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = newRand(cfg.Seed)
	}
	center := Vec2{X: cfg.Width / 2, Y: cfg.Height / 2}
	m := &MotionState{
		cfg:          cfg,
		bounds:       cfg.Bounds(),
		interval:     cfg.TickInterval(),
		rng:          rng,
		shape:        TriangleShape(cfg.BodySize),
		position:     center,
		lastPosition: center,
		lastUpdate:   now,
	}
	m.heading = unit(m.shape[0])
	return m, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Position returns the creature's current world position.
func (m *MotionState) Position() Vec2 { return m.position }

// LastPosition returns the position before the most recent step.
func (m *MotionState) LastPosition() Vec2 { return m.lastPosition }

// Heading returns the unit movement direction.
func (m *MotionState) Heading() Vec2 { return m.heading }

// Shape returns a copy of the local-frame body.
func (m *MotionState) Shape() Shape { return m.shape }

// LastUpdate returns the time of the last tick boundary.
func (m *MotionState) LastUpdate() time.Time { return m.lastUpdate }

// Ticks returns how many ticks have run.
func (m *MotionState) Ticks() uint64 { return m.ticks }

// Rollbacks returns how many steps were undone to keep the body on screen.
func (m *MotionState) Rollbacks() uint64 { return m.rollbacks }

// Rotate turns every vertex of the shape by angle radians about the local
// origin and takes the new first vertex, normalized, as the heading.
// If that vertex has zero length nothing changes and ErrDegenerateHeading is
// returned.
func (m *MotionState) Rotate(angle float64) error {
	head := m.shape[0].Rotate(angle)
	if head.Len() < degenerateEpsilon {
		return ErrDegenerateHeading
	}
	for i := range m.shape {
		m.shape[i] = m.shape[i].Rotate(angle)
	}
	m.heading = unit(m.shape[0])
	return nil
}

// StepForward saves the current position and moves one step along the
// heading. It does not check bounds.
func (m *MotionState) StepForward() {
	m.lastPosition = m.position
	m.position = m.position.Add(m.heading.Scale(m.cfg.StepLength))
}

// Tick runs one simulation step if at least one tick interval has passed since
// the last one: a random turn in [-MaxTurn, MaxTurn), a step forward, and a
// rollback if the body left the screen. It reports whether a step ran.
// A turn that fails with ErrDegenerateHeading is skipped and the step uses
// the previous heading.
func (m *MotionState) Tick(now time.Time) (StepEvent, bool) {
	if now.Sub(m.lastUpdate) < m.interval {
		return StepEvent{}, false
	}
	angle := (m.rng.Float64()*2 - 1) * m.cfg.MaxTurn
	ev := StepEvent{Angle: angle}
	prevShape, prevHeading := m.shape, m.heading
	if err := m.Rotate(angle); err != nil {
		ev.Degenerate = true
	}
	m.StepForward()
	if m.correct() {
		ev.RolledBack = true
		// Turning in place next to an edge can push a vertex out even at the
		// old position; then the turn is undone as well.
		if !m.InBounds(m.position) {
			m.shape, m.heading = prevShape, prevHeading
		}
	}
	m.lastUpdate = now
	m.ticks++

	ev.Tick = m.ticks
	ev.Position = m.position
	ev.Heading = m.heading
	return ev, true
}

// correct undoes the last step when it put any vertex off screen.
func (m *MotionState) correct() bool {
	if m.InBounds(m.position) {
		return false
	}
	m.position = m.lastPosition
	m.rollbacks++
	return true
}

// WorldShape returns the body translated to pos. It does not modify m.
func (m *MotionState) WorldShape(pos Vec2) Shape {
	return m.shape.Translate(pos)
}

// InBounds reports whether the whole body would be on screen at pos.
func (m *MotionState) InBounds(pos Vec2) bool {
	world := m.WorldShape(pos)
	return m.bounds.ContainsAll(world[:])
}

// ComputeRenderShape returns the body in world space for drawing. Tick already
// keeps the body on screen; if a caller stepped without ticking and the body
// is off screen, the position is rolled back to the last position first.
// Once rolled back, further calls return the same vertices.
func (m *MotionState) ComputeRenderShape() Shape {
	world := m.WorldShape(m.position)
	if m.position == m.lastPosition || m.bounds.ContainsAll(world[:]) {
		return world
	}
	m.position = m.lastPosition
	m.rollbacks++
	return m.WorldShape(m.position)
}

func unit(v Vec2) Vec2 {
	l := v.Len()
	if l < degenerateEpsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}
