//go:build !tinygo && cgo

package hal

import (
	"image/color"

	"dogm/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowScale = 5

var (
	colorBacklight = color.RGBA{R: 0xc8, G: 0xd8, B: 0x6a, A: 0xff}
	colorPixel     = color.RGBA{R: 0x20, G: 0x28, B: 0x18, A: 0xff}
	colorPanelOff  = color.RGBA{R: 0x60, G: 0x68, B: 0x40, A: 0xff}
)

// RunWindow opens a desktop window that shows the emulated panel. It blocks
// until the window closes.
func RunWindow(newApp func(HAL) (func() error, error)) error {
	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("DOGM128 (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(Columns*windowScale, Pages*8*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	panel *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	const w, h = Columns, Pages * 8
	if g.panel == nil {
		g.pix = make([]byte, w*h*4)
		g.panel = ebiten.NewImage(w, h)
	}

	s := g.h.panel.Snapshot()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := colorBacklight
			switch {
			case !s.On:
				c = colorPanelOff
			case s.Lit(row, col):
				c = colorPixel
			}
			j := (row*w + col) * 4
			g.pix[j+0] = c.R
			g.pix[j+1] = c.G
			g.pix[j+2] = c.B
			g.pix[j+3] = c.A
		}
	}

	g.panel.WritePixels(g.pix)
	screen.DrawImage(g.panel, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Columns, Pages * 8
}
