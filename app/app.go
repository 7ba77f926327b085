package app

import (
	"fmt"
	"time"

	"dogm/console"
	"dogm/fonts/font5x7"
	"dogm/gfx"
	"dogm/hal"
)

// DefaultContrast is the electronic volume the DOGM128 is usually run at.
const DefaultContrast = 0x16

// Config selects what the app shows and how the panel is set up.
type Config struct {
	Mode     hal.DisplayMode
	Contrast uint8
	// Script is a Lua file drawn at startup. Its frame function, if any,
	// runs once per tick.
	Script string
	// Demo draws the demo scene. It is implied when Script is empty and
	// Console is off.
	Demo bool
	// Console turns the panel into a scrolling log of the app and the
	// script's print output.
	Console bool
}

type app struct {
	h      hal.HAL
	log    hal.Logger
	ctrl   *hal.Controller
	canvas *gfx.Canvas

	con       *console.Console
	startLine int

	tick   uint64
	frame  func(tick uint64) error
	script interface{ Close() }
	halted bool
}

// New initializes the panel, draws the configured scene and returns the step
// function the host runners call once per tick.
func New(h hal.HAL, cfg Config) (func() error, error) {
	a, err := newApp(h, cfg)
	if err != nil {
		return nil, err
	}
	return a.step, nil
}

// Run starts the app with default config and blocks forever (TinyGo/native
// entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{Contrast: DefaultContrast})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	bootStep(h, "init")
	step, err := New(h, cfg)
	if err != nil {
		logf(h.Logger(), "dogm: %v", err)
		select {}
	}
	bootStep(h, "running")

	t := time.NewTicker(time.Second / 30)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			logf(h.Logger(), "dogm: %v", err)
			select {}
		}
	}
}

func newApp(h hal.HAL, cfg Config) (*app, error) {
	a := &app{
		h:      h,
		log:    h.Logger(),
		ctrl:   hal.NewController(h.Bus()),
		canvas: gfx.NewCanvas(),
	}
	if err := a.ctrl.Init(cfg.Mode, cfg.Contrast); err != nil {
		return nil, err
	}
	if cfg.Console {
		a.con = console.New(a.canvas)
		a.log = consoleLogger{base: a.log, con: a.con}
	}
	logf(a.log, "dogm: panel up (%s, contrast %d)", cfg.Mode, cfg.Contrast&0x3F)

	if cfg.Demo || (cfg.Script == "" && !cfg.Console) {
		if err := DrawDemo(a.canvas); err != nil {
			return nil, fmt.Errorf("demo: %w", err)
		}
	}
	if cfg.Script != "" {
		if err := a.loadScript(cfg.Script); err != nil {
			return nil, err
		}
	}

	a.canvas.Dirty()
	if err := a.flush(); err != nil {
		return nil, err
	}
	return a, nil
}

// flush pushes the canvas and, in console mode, the scroll position.
func (a *app) flush() error {
	if err := a.ctrl.Flush(a.canvas.Buffer().Bytes()); err != nil {
		return err
	}
	if a.con == nil || a.con.StartLine() == a.startLine {
		return nil
	}
	if err := a.ctrl.SetStartLine(a.con.StartLine()); err != nil {
		return err
	}
	a.startLine = a.con.StartLine()
	return nil
}

func (a *app) step() (err error) {
	if a.halted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			a.halt(r)
			err = nil
		}
	}()

	a.tick++
	if a.frame != nil {
		if err := a.frame(a.tick); err != nil {
			logf(a.log, "dogm: frame %d: %v", a.tick, err)
			a.stopScript()
		}
	}
	if !a.canvas.Dirty() {
		return nil
	}
	return a.flush()
}

// stopScript drops the frame hook and releases the script behind it.
func (a *app) stopScript() {
	a.frame = nil
	if a.script != nil {
		a.script.Close()
		a.script = nil
	}
}

// DrawDemo draws the demo scene: a text header, a framed area with a
// staggered "LATEX" logo and a second line of text inside the frame.
func DrawDemo(c *gfx.Canvas) error {
	if _, err := fmt.Fprintf(c, "Line %d: ", 1); err != nil {
		return err
	}
	if _, err := c.PutChar(font5x7.Surprise); err != nil {
		return err
	}
	if _, err := c.Write([]byte(" Hello World")); err != nil {
		return err
	}

	if err := c.DrawRectangle(0, 8, 127, 63, gfx.Thin, gfx.Set); err != nil {
		return err
	}

	logo := []struct {
		row, col int
		ch       byte
	}{
		{25, 20, 'L'},
		{23, 26, 'A'},
		{25, 32, 'T'},
		{29, 38, 'E'},
		{25, 44, 'X'},
	}
	for _, g := range logo {
		if err := c.PutCharAt(g.row, g.col, g.ch); err != nil {
			return err
		}
	}

	if err := c.SetCursorPage(6); err != nil {
		return err
	}
	if err := c.SetCursorColumn(20); err != nil {
		return err
	}
	_, err := c.Write([]byte("Hello Rectangle"))
	return err
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
