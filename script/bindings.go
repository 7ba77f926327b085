package script

import (
	"fmt"
	"math"

	"dogm/fonts/font5x7"
	"dogm/gfx"

	lua "github.com/yuin/gopher-lua"
)

func (e *Engine) register() {
	funcs := map[string]lua.LGFunction{
		"pixel":      e.pixel,
		"point":      e.point,
		"line":       e.line,
		"hline":      e.hline,
		"vline":      e.vline,
		"rect":       e.rect,
		"arc":        e.arc,
		"deg":        deg,
		"putc":       e.putc,
		"print_text": e.printText,
		"putc_at":    e.putcAt,
		"text":       e.text,
		"set_page":   e.setPage,
		"set_column": e.setColumn,
		"cursor":     e.cursor,
		"clear":      e.clear,
	}
	for name, fn := range funcs {
		e.L.SetGlobal(name, e.L.NewFunction(fn))
	}

	e.L.SetGlobal("SET", lua.LString("s"))
	e.L.SetGlobal("CLEAR", lua.LString("c"))
	e.L.SetGlobal("THIN", lua.LNumber(gfx.Thin))
	e.L.SetGlobal("THICK", lua.LNumber(gfx.Thick))
	e.L.SetGlobal("ARROW_RIGHT", lua.LNumber(font5x7.ArrowRight))
	e.L.SetGlobal("ARROW_LEFT", lua.LNumber(font5x7.ArrowLeft))
	e.L.SetGlobal("SURPRISE", lua.LNumber(font5x7.Surprise))
}

// result pushes true, or nil and the error text.
func result(L *lua.LState, err error) int {
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// style reads the optional thickness and mode arguments starting at n.
func style(L *lua.LState, n int) (gfx.Thickness, gfx.Mode, error) {
	th := L.OptInt(n, int(gfx.Thin))
	if th < 0 || th > 255 {
		return 0, 0, gfx.ErrUnsupportedThickness
	}
	mode, err := gfx.ParseMode(L.OptString(n+1, "s"))
	return gfx.Thickness(th), mode, err
}

// char accepts a character code or a one-character string.
func char(L *lua.LState, n int) byte {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		return byte(int(v))
	case lua.LString:
		if len(v) > 0 {
			return v[0]
		}
	}
	L.ArgError(n, "character code or string expected")
	return 0
}

// pixel(row, col [, mode])
func (e *Engine) pixel(L *lua.LState) int {
	mode, err := gfx.ParseMode(L.OptString(3, "s"))
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawPixel(L.CheckInt(1), L.CheckInt(2), mode))
}

// point(row, col [, thickness [, mode]])
func (e *Engine) point(L *lua.LState) int {
	row, col := L.CheckInt(1), L.CheckInt(2)
	th, mode, err := style(L, 3)
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawPoint(row, col, th, mode))
}

// line(x1, y1, x2, y2 [, thickness [, mode]])
func (e *Engine) line(L *lua.LState) int {
	x1, y1, x2, y2 := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	th, mode, err := style(L, 5)
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawLine(x1, y1, x2, y2, th, mode))
}

// hline(x1, x2, y [, thickness [, mode]])
func (e *Engine) hline(L *lua.LState) int {
	x1, x2, y := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	th, mode, err := style(L, 4)
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawHLine(x1, x2, y, th, mode))
}

// vline(x, y1, y2 [, thickness [, mode]])
func (e *Engine) vline(L *lua.LState) int {
	x, y1, y2 := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	th, mode, err := style(L, 4)
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawVLine(x, y1, y2, th, mode))
}

// rect(x1, y1, x2, y2 [, thickness [, mode]])
func (e *Engine) rect(L *lua.LState) int {
	x1, y1, x2, y2 := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	th, mode, err := style(L, 5)
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawRectangle(x1, y1, x2, y2, th, mode))
}

// arc(cx, cy, r, start, end [, thickness [, mode]]); angles in 1/256 turns.
func (e *Engine) arc(L *lua.LState) int {
	cx, cy, r := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	start, end := gfx.Angle(L.CheckInt(4)), gfx.Angle(L.CheckInt(5))
	th, mode, err := style(L, 6)
	if err != nil {
		return result(L, err)
	}
	return result(L, e.canvas.DrawArc(cx, cy, r, start, end, th, mode))
}

// deg(d) converts degrees to a binary angle.
func deg(L *lua.LState) int {
	L.Push(lua.LNumber(gfx.Degrees(L.CheckInt(1))))
	return 1
}

// putc(ch) writes one character at the cursor.
func (e *Engine) putc(L *lua.LState) int {
	_, err := e.canvas.PutChar(char(L, 1))
	return result(L, err)
}

// print_text(s) writes s at the cursor, stopping at the first bad character.
func (e *Engine) printText(L *lua.LState) int {
	_, err := e.canvas.Write([]byte(L.CheckString(1)))
	return result(L, err)
}

// putc_at(row, col, ch)
func (e *Engine) putcAt(L *lua.LState) int {
	row, col := L.CheckInt(1), L.CheckInt(2)
	return result(L, e.canvas.PutCharAt(row, col, char(L, 3)))
}

// text(x, y, s [, mode]) draws s with its baseline at y.
func (e *Engine) text(L *lua.LState) int {
	x, y, s := L.CheckInt(1), L.CheckInt(2), L.CheckString(3)
	mode, err := gfx.ParseMode(L.OptString(4, "s"))
	if err != nil {
		return result(L, err)
	}
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return result(L, fmt.Errorf("text %w: (%d, %d)", gfx.ErrOutOfRange, x, y))
	}
	return result(L, e.canvas.WriteText(int16(x), int16(y), s, mode))
}

func (e *Engine) setPage(L *lua.LState) int {
	return result(L, e.canvas.SetCursorPage(L.CheckInt(1)))
}

func (e *Engine) setColumn(L *lua.LState) int {
	return result(L, e.canvas.SetCursorColumn(L.CheckInt(1)))
}

// cursor() returns page, column.
func (e *Engine) cursor(L *lua.LState) int {
	c := e.canvas.Cursor()
	L.Push(lua.LNumber(c.Page))
	L.Push(lua.LNumber(c.Column))
	return 2
}

func (e *Engine) clear(L *lua.LState) int {
	e.canvas.Clear()
	return 0
}
