package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"dogm/fonts/font5x7"
	"dogm/gfx"
)

// cellsPerLine is how many 6-pixel character cells fit before PutChar wraps.
const cellsPerLine = (gfx.TextWidth-font5x7.Width)/font5x7.Advance + 1

// halt reports a panic on the logger and the panel, then stops stepping.
func (a *app) halt(v any) {
	a.halted = true
	a.stopScript()

	stack := debug.Stack()
	l := a.h.Logger()
	logf(l, "dogm panic: tick=%d panic=%v", a.tick, v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		logf(l, "%s", line)
	}

	lines := []string{
		"Panic:",
		fmt.Sprintf("tick: %d", a.tick),
		fmt.Sprintf("%v", v),
	}
	a.con = nil
	drawPanic(a.canvas, lines)
	a.canvas.Dirty()
	if err := a.ctrl.Flush(a.canvas.Buffer().Bytes()); err != nil {
		logf(l, "dogm: panic screen: %v", err)
	}
	if a.startLine != 0 {
		if err := a.ctrl.SetStartLine(0); err != nil {
			logf(l, "dogm: panic screen: %v", err)
		}
		a.startLine = 0
	}
}

// drawPanic clears the canvas and writes lines from the top, wrapping long
// lines and stopping when the panel is full.
func drawPanic(c *gfx.Canvas, lines []string) {
	c.Clear()
	_ = c.SetCursorPage(0)
	_ = c.SetCursorColumn(0)

	page := 0
	for _, line := range lines {
		line = printable(line)
		for len(line) > 0 {
			if page >= gfx.PageCount {
				return
			}
			chunk, rest := takeCells(line, cellsPerLine)
			_, _ = c.Write([]byte(chunk))
			if page < gfx.PageCount-1 {
				_, _ = c.PutChar('\n')
			}
			page++
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// printable replaces bytes the font cannot draw.
func printable(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if !font5x7.Supported(ch) {
			b[i] = '?'
		}
	}
	return string(b)
}

func takeCells(s string, n int) (prefix, rest string) {
	if n <= 0 || len(s) <= n {
		return s, ""
	}
	return s[:n], s[n:]
}
