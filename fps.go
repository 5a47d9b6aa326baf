package mvc

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the measured frame and tick rates in the top-left
// corner. The text is refreshed every half second.
type fpsOverlay struct {
	elapsed float32
	text    string
}

const fpsRefreshInterval = 0.5

// advance accumulates dt and re-reads the rates once the interval elapses.
func (o *fpsOverlay) advance(dt float32) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < fpsRefreshInterval {
		return
	}
	o.elapsed = 0
	o.text = fpsText(ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}

func fpsText(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
