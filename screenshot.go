package mvc

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved under label. The
// file lands in Config.ScreenshotDir as <timestamp>_<label>.png.
func (ws *Workspace) Screenshot(label string) {
	ws.screenshotQueue = append(ws.screenshotQueue, label)
}

// flushScreenshots saves the frame once per queued label.
func (ws *Workspace) flushScreenshots(screen *ebiten.Image) {
	if len(ws.screenshotQueue) == 0 {
		return
	}
	labels := ws.screenshotQueue
	ws.screenshotQueue = nil

	paths, err := saveScreenshots(ws.cfg.ScreenshotDir, time.Now(), captureFrame(screen), labels)
	for _, p := range paths {
		logger.Infof("screenshot saved to %s", p)
	}
	if err != nil {
		logger.Errorf("screenshot: %v", err)
	}
}

// captureFrame copies screen into a straight-alpha image.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	return straightAlpha(pix, b.Dx(), b.Dy())
}

// straightAlpha converts premultiplied RGBA pixels, as ebiten stores them,
// to NRGBA, as PNG expects them.
func straightAlpha(pix []byte, w, h int) *image.NRGBA {
	r := image.Rect(0, 0, w, h)
	src := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: r}
	dst := image.NewNRGBA(r)
	draw.Draw(dst, r, src, image.Point{}, draw.Src)
	return dst
}

// saveScreenshots writes img to dir once per label and returns the written
// paths. Repeated labels get a numeric suffix. It stops at the first error.
func saveScreenshots(dir string, at time.Time, img image.Image, labels []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	stamp := at.Format("20060102_150405")
	seen := make(map[string]int, len(labels))
	var paths []string
	for _, label := range labels {
		name := screenshotLabel(label)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		path := filepath.Join(dir, stamp+"_"+name+".png")
		if err := writePNG(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// screenshotLabel maps label to a file-name-safe token.
func screenshotLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, label)
}
