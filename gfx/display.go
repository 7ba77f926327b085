package gfx

import (
	"image/color"

	"dogm/fonts/font5x7"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	// On is the color SetPixel treats as Set.
	On = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// Off is the color SetPixel treats as Clear.
	Off = color.RGBA{A: 0xff}
)

var _ drivers.Displayer = (*Canvas)(nil)

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) { return Width, Height }

// SetPixel implements drivers.Displayer. Any non-black opaque color sets the
// pixel; black or transparent clears it. Off-screen pixels are ignored.
func (c *Canvas) SetPixel(x, y int16, clr color.RGBA) {
	mode := Clear
	if clr.A != 0 && (clr.R|clr.G|clr.B) != 0 {
		mode = Set
	}
	_ = c.DrawPixel(int(y), int(x), mode)
}

// FillRectangle sets or clears the w×h block at (x, y) the way SetPixel
// would, clipped to the screen.
func (c *Canvas) FillRectangle(x, y, w, h int16, clr color.RGBA) error {
	if w < 0 || h < 0 {
		return ErrOutOfRange
	}
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x)+int(w), Width), min(int(y)+int(h), Height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.SetPixel(int16(col), int16(row), clr)
		}
	}
	return nil
}

// Display implements drivers.Displayer. Pushing pixels to the panel is the
// controller's job, so this only reports success.
func (c *Canvas) Display() error { return nil }

// WriteText draws s with its baseline at row y, starting at column x, using
// the 5x7 font through tinyfont. Unlike PutChar it is pixel-positioned,
// clips at the screen edge and leaves the cursor alone.
func (c *Canvas) WriteText(x, y int16, s string, mode Mode) error {
	if !mode.valid() {
		return ErrInvalidMode
	}
	clr := On
	if mode == Clear {
		clr = Off
	}
	tinyfont.WriteLine(c, font5x7.Font, x, y, s, clr)
	return nil
}

// TextSize returns the pixel width and height WriteText uses for s.
func TextSize(s string) (w, h int) {
	_, outbox := tinyfont.LineWidth(font5x7.Font, s)
	return int(outbox), font5x7.Height
}
