package randomlife

import (
	"time"

	"go.uber.org/zap"
)

// debugEvery is how many frames pass between two debug stat lines.
const debugEvery = 60

// debugStats accumulates per-frame timings between two log lines.
// Only populated when Config.Debug is true.
type debugStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
	lastTicks  uint64
	lastBacks  uint64
}

// record adds one frame and logs a summary every debugEvery frames.
func (d *debugStats) record(log *zap.Logger, m *MotionState, update, draw time.Duration) {
	d.frames++
	d.updateTime += update
	d.drawTime += draw
	if d.frames < debugEvery {
		return
	}
	log.Debug("frame stats",
		zap.Int("frames", d.frames),
		zap.Uint64("ticks", m.Ticks()-d.lastTicks),
		zap.Uint64("rollbacks", m.Rollbacks()-d.lastBacks),
		zap.Duration("avg_update", d.updateTime/time.Duration(d.frames)),
		zap.Duration("avg_draw", d.drawTime/time.Duration(d.frames)),
		zap.Float64("x", m.Position().X),
		zap.Float64("y", m.Position().Y),
	)
	*d = debugStats{lastTicks: m.Ticks(), lastBacks: m.Rollbacks()}
}
