//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"neoportal/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pixelStrip is the band under the screen where the NeoPixel is drawn.
const pixelStrip = 24

// RunWindow starts a desktop window that displays the framebuffer and forwards
// the mouse as the touch panel. It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	hh, err := NewWithConfig(cfg)
	if err != nil {
		return err
	}
	h := hh.(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("NeoPortal " + h.board.Name + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*2, (h.fb.height+pixelStrip)*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.touch.pollPointer(g.h.fb.width, g.h.fb.height)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	c := g.h.pixel.color()
	cy := float32(fb.height + pixelStrip/2)
	vector.DrawFilledRect(screen, 0, float32(fb.height), float32(fb.width), pixelStrip, color.RGBA{A: 0xFF}, false)
	vector.DrawFilledCircle(screen, float32(fb.width)/2, cy, pixelStrip/2-3, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}, true)
	vector.StrokeCircle(screen, float32(fb.width)/2, cy, pixelStrip/2-3, 1, color.RGBA{R: 0x76, G: 0x76, B: 0x76, A: 0xFF}, true)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height + pixelStrip
}
