package randomlife

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsWidget displays the current FPS, TPS and tick count in the top-left
// corner. It redraws its own image every ~0.5 seconds.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
}

func newFPSWidget() *fpsWidget {
	// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nTicks: 123456"
	return &fpsWidget{img: ebiten.NewImage(120, 48), elapsed: fpsRefresh}
}

func (w *fpsWidget) update(dt float64, ticks uint64) {
	w.elapsed += dt
	if w.elapsed < fpsRefresh {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTicks: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), ticks))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
