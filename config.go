package randomlife

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Window defaults.
const (
	DefaultTitle  = "Random Life"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Motion defaults.
const (
	DefaultTickRate   = 64.0 // ticks per second
	DefaultStepLength = 1.0
	DefaultMaxTurn    = 0.3 // radians per tick, either direction
	DefaultBodySize   = 20.0
)

// Config holds every tunable of the simulation and its window. The zero value
// is not usable; start from DefaultConfig.
type Config struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	TickRate   float64 `yaml:"tick_rate"`
	StepLength float64 `yaml:"step_length"`
	MaxTurn    float64 `yaml:"max_turn"`
	BodySize   float64 `yaml:"body_size"`

	// HeadRadius is the radius of the marker drawn on the first vertex.
	// HeadTolerance is the maximum gap between the true arc and its
	// polygon approximation.
	HeadRadius    float64 `yaml:"head_radius"`
	HeadTolerance float64 `yaml:"head_tolerance"`

	Background Color `yaml:"background"`
	Body       Color `yaml:"body"`
	Head       Color `yaml:"head"`

	// Seed fixes the steering RNG. 0 picks a random seed.
	Seed uint64 `yaml:"seed"`

	// BumpFlash is how long the body flashes after a rolled-back step.
	// 0 disables the flash.
	BumpFlash  time.Duration `yaml:"bump_flash"`
	FlashColor Color         `yaml:"flash_color"`

	ShowFPS bool `yaml:"show_fps"`
	Debug   bool `yaml:"debug"`
}

// DefaultConfig returns the configuration of the classic 800x600 window.
func DefaultConfig() Config {
	return Config{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		TickRate:      DefaultTickRate,
		StepLength:    DefaultStepLength,
		MaxTurn:       DefaultMaxTurn,
		BodySize:      DefaultBodySize,
		HeadRadius:    3,
		HeadTolerance: 0.1,
		Background:    Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		Body:          Color{R: 1, G: 0.3, B: 0, A: 1},
		Head:          Color{R: 0.631, G: 0.211, B: 0.662, A: 1},
		FlashColor:    Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// TickInterval returns the minimum time between two ticks, truncated to whole
// milliseconds (64 ticks per second gives 15ms).
func (c Config) TickInterval() time.Duration {
	return time.Duration(int64(1000/c.TickRate)) * time.Millisecond
}

// Bounds returns the screen rectangle the creature must stay inside.
func (c Config) Bounds() Rect {
	return Rect{Width: c.Width, Height: c.Height}
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: screen size %vx%v must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !(c.TickRate > 0) || c.TickRate > 1000:
		return fmt.Errorf("%w: tick rate %v must be in (0, 1000]", ErrInvalidConfig, c.TickRate)
	case !(c.StepLength > 0):
		return fmt.Errorf("%w: step length %v must be positive", ErrInvalidConfig, c.StepLength)
	case !(c.MaxTurn > 0) || c.MaxTurn > math.Pi:
		return fmt.Errorf("%w: max turn %v must be in (0, pi]", ErrInvalidConfig, c.MaxTurn)
	case !(c.BodySize > 0):
		return fmt.Errorf("%w: body size %v must be positive", ErrInvalidConfig, c.BodySize)
	case c.BodySize > c.Width || c.BodySize > c.Height:
		return fmt.Errorf("%w: body size %v does not fit a %vx%v screen", ErrInvalidConfig, c.BodySize, c.Width, c.Height)
	case c.HeadRadius < 0 || c.HeadTolerance <= 0:
		return fmt.Errorf("%w: head radius %v and tolerance %v", ErrInvalidConfig, c.HeadRadius, c.HeadTolerance)
	case c.BumpFlash < 0:
		return fmt.Errorf("%w: bump flash %v is negative", ErrInvalidConfig, c.BumpFlash)
	}
	colors := []struct {
		name string
		c    Color
	}{
		{"background", c.Background},
		{"body", c.Body},
		{"head", c.Head},
		{"flash_color", c.FlashColor},
	}
	for _, nc := range colors {
		if !nc.c.valid() {
			return fmt.Errorf("%w: %s color %+v out of [0, 1]", ErrInvalidConfig, nc.name, nc.c)
		}
	}
	return nil
}

// LoadConfig decodes YAML from r on top of DefaultConfig, so a file only needs
// the keys it changes. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig on the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
