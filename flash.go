package randomlife

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BumpFlash tints the body when a step is rolled back and fades back to the
// body color. Each color channel runs its own tween; a new bump restarts all
// of them from the flash color.
type BumpFlash struct {
	from, to Color
	duration float32
	tweens   [4]*gween.Tween
	current  Color
	active   bool
}

// NewBumpFlash returns a flash that fades from flash to body over d. A zero
// duration gives a flash that never triggers.
func NewBumpFlash(body, flash Color, d time.Duration) *BumpFlash {
	return &BumpFlash{
		from:     flash,
		to:       body,
		duration: float32(d.Seconds()),
		current:  body,
	}
}

// Enabled reports whether Trigger has any effect.
func (f *BumpFlash) Enabled() bool {
	return f.duration > 0
}

// Trigger starts the flash, or restarts it if one is running.
func (f *BumpFlash) Trigger() {
	if !f.Enabled() {
		return
	}
	from := [4]float64{f.from.R, f.from.G, f.from.B, f.from.A}
	to := [4]float64{f.to.R, f.to.G, f.to.B, f.to.A}
	for i := range f.tweens {
		f.tweens[i] = gween.New(float32(from[i]), float32(to[i]), f.duration, ease.OutQuad)
	}
	f.current = f.from
	f.active = true
}

// Update advances the fade by dt seconds.
func (f *BumpFlash) Update(dt float32) {
	if !f.active {
		return
	}
	var vals [4]float64
	done := true
	for i, tw := range f.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			done = false
		}
	}
	f.current = Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}
	if done {
		f.current = f.to
		f.active = false
	}
}

// Active reports whether a fade is in progress.
func (f *BumpFlash) Active() bool { return f.active }

// Color returns the body color for this frame.
func (f *BumpFlash) Color() Color { return f.current }
