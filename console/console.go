// Package console runs a VT100-style text terminal on a gfx.Canvas.
//
// Lines are written at a rolling position in the framebuffer and scrolled
// in hardware: StartLine reports which framebuffer row the controller must
// show at the top of the panel (see hal.Controller.SetStartLine).
package console

import (
	"dogm/fonts/font5x7"
	"dogm/gfx"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyterm"
)

// Geometry of the console: 21 columns by 8 rows of 5x7 text.
const (
	Columns = gfx.Width / font5x7.Advance
	Rows    = gfx.Height / gfx.PageHeight
)

// Console is a scrolling terminal. It is not safe for concurrent use.
type Console struct {
	s *surface
	t *tinyterm.Terminal
}

// New clears c and starts a terminal on it.
func New(c *gfx.Canvas) *Console {
	con := &Console{s: &surface{Canvas: c}}
	con.Reset()
	return con
}

// Reset clears the canvas and homes the terminal.
func (c *Console) Reset() {
	c.s.Clear()
	c.t = tinyterm.NewTerminal(c.s)
	c.t.Configure(&tinyterm.Config{
		Font:       font5x7.Font,
		FontHeight: gfx.PageHeight,
		FontOffset: font5x7.Height - 1,
	})
}

// Write feeds p to the terminal. '\n' starts a new line; ANSI escape
// sequences are interpreted as far as tinyterm supports them.
func (c *Console) Write(p []byte) (int, error) {
	return c.t.Write(p)
}

// StartLine is the framebuffer row to show at the top of the panel.
func (c *Console) StartLine() int {
	return c.s.scroll
}

// surface adds the scrolling hooks tinyterm expects to a Canvas.
type surface struct {
	*gfx.Canvas
	scroll int
}

func (s *surface) SetScroll(line int16) {
	l := int(line) % gfx.Height
	if l < 0 {
		l += gfx.Height
	}
	s.scroll = l
}

// SetRotation is a no-op: the panel is always landscape.
func (s *surface) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
