package randomlife

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrOutOfBounds is returned from Update when the previous frame had to draw
// the body off screen. It means the rollback had no in-bounds position to go
// back to.
var ErrOutOfBounds = errors.New("body out of bounds")

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithClock replaces time.Now, which drives the tick gate and frame timings.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithRand sets the steering RNG. The default is seeded from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithObserver receives every tick that runs.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observer = o }
}

// WithTestRunner attaches a scripted runner, see LoadTestScript.
func WithTestRunner(r *TestRunner) Option {
	return func(g *Game) { g.runner = r }
}

// WithScreenshotDir sets the directory screenshots are written to.
func WithScreenshotDir(dir string) Option {
	return func(g *Game) { g.shots.dir = dir }
}

// WithUpdateFunc registers fn to run at the end of every Update, after the
// tick. A non-nil error stops the game.
func WithUpdateFunc(fn func() error) Option {
	return func(g *Game) { g.updateFunc = fn }
}

// Game implements ebiten.Game around one MotionState. Ebitengine calls Update
// and then Draw once per frame on the same goroutine.
type Game struct {
	cfg        Config
	state      *MotionState
	log        *zap.Logger
	now        func() time.Time
	rng        *rand.Rand
	observer   Observer
	runner     *TestRunner
	updateFunc func() error
	shots      screenshotQueue
	flash      *BumpFlash
	fps        *fpsWidget

	lastFrame  time.Time
	updateTime time.Duration
	stats      debugStats
	err        error
}

var _ ebiten.Game = (*Game)(nil)

// NewGame validates cfg and spawns the creature at the center of the screen.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		log:   zap.NewNop(),
		now:   time.Now,
		shots: screenshotQueue{dir: DefaultScreenshotDir},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.shots.log = g.log
	g.shots.now = g.now

	start := g.now()
	state, err := NewMotionState(cfg, g.rng, start)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.state = state
	g.lastFrame = start
	g.flash = NewBumpFlash(cfg.Body, cfg.FlashColor, cfg.BumpFlash)
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}

	g.log.Info("creature spawned",
		zap.Float64("x", state.Position().X),
		zap.Float64("y", state.Position().Y),
		zap.Duration("tick_interval", cfg.TickInterval()),
		zap.Float64("width", cfg.Width),
		zap.Float64("height", cfg.Height),
	)
	return g, nil
}

// State returns the simulated creature.
func (g *Game) State() *MotionState {
	return g.state
}

// Update runs at most one tick. It returns the error recorded by the previous
// Draw, or ebiten.Termination once a test script quits.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	start := g.now()
	dt := start.Sub(g.lastFrame).Seconds()
	g.lastFrame = start

	if g.runner != nil {
		g.runner.step(&g.shots)
		if g.runner.Quit() {
			g.log.Info("test script finished", zap.Uint64("ticks", g.state.Ticks()))
			return ebiten.Termination
		}
	}

	if ev, ok := g.state.Tick(start); ok {
		g.onStep(ev)
	}
	g.flash.Update(float32(dt))
	if g.fps != nil {
		g.fps.update(dt, g.state.Ticks())
	}
	if g.updateFunc != nil {
		if err := g.updateFunc(); err != nil {
			return fmt.Errorf("update func: %w", err)
		}
	}

	g.updateTime = g.now().Sub(start)
	return nil
}

func (g *Game) onStep(ev StepEvent) {
	if ev.Degenerate {
		g.log.Warn("heading undefined, turn skipped", zap.Uint64("tick", ev.Tick))
	}
	if ev.RolledBack {
		g.flash.Trigger()
		if ce := g.log.Check(zap.DebugLevel, "step rolled back"); ce != nil {
			ce.Write(zap.Uint64("tick", ev.Tick),
				zap.Float64("x", ev.Position.X),
				zap.Float64("y", ev.Position.Y))
		}
	}
	if g.observer != nil {
		g.observer.OnStep(ev)
	}
}

// Frame returns the body and head meshes for the current position. It applies
// the render-time rollback of ComputeRenderShape.
func (g *Game) Frame() (body, head Mesh) {
	shape := g.state.ComputeRenderShape()
	if !g.cfg.Bounds().ContainsAll(shape[:]) && g.err == nil {
		g.err = fmt.Errorf("%w: position (%.2f, %.2f)", ErrOutOfBounds, g.state.Position().X, g.state.Position().Y)
	}
	body = PolygonMesh(shape[:], g.flash.Color())
	head = CircleMesh(shape[0], g.cfg.HeadRadius, g.cfg.HeadTolerance, g.cfg.Head)
	return body, head
}

// Draw clears the screen and draws the body with its head marker.
func (g *Game) Draw(screen *ebiten.Image) {
	start := g.now()
	screen.Fill(g.cfg.Background.toRGBA())

	body, head := g.Frame()
	body.Draw(screen)
	head.Draw(screen)

	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.shots.flush(screen)

	if g.cfg.Debug {
		g.stats.record(g.log, g.state, g.updateTime, g.now().Sub(start))
	}
}

// Layout fixes the logical screen to the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}

// Run opens the window and runs the game until it is closed or a test script
// quits.
func Run(cfg Config, opts ...Option) error {
	g, err := NewGame(cfg, opts...)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
