package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dogm/gfx"

	lua "github.com/yuin/gopher-lua"
)

func newEngine(t *testing.T, opts ...Option) (*Engine, *gfx.Canvas) {
	t.Helper()
	c := gfx.NewCanvas()
	e := New(c, opts...)
	t.Cleanup(e.Close)
	return e, c
}

func TestRunDraws(t *testing.T) {
	e, c := newEngine(t)
	src := `
assert(rect(0, 0, 127, 63))
assert(line(10, 10, 20, 20, THICK, SET))
assert(pixel(5, 5))
assert(pixel(5, 5, CLEAR))
`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	b := c.Buffer()
	if !b.Pixel(0, 0) || !b.Pixel(63, 127) || !b.Pixel(15, 15) {
		t.Fatal("shapes not drawn")
	}
	if b.Pixel(5, 5) {
		t.Fatal("cleared pixel still lit")
	}
}

func TestDrawingErrorsAreValues(t *testing.T) {
	e, c := newEngine(t)
	src := `
ok, msg = pixel(64, 0)
ok2, msg2 = point(1, 1, 7)
ok3, msg3 = line(0, 0, 5, 5, THIN, "x")
ok4, msg4 = arc(64, 32, 2^42, 0, 0)
ok5, msg5 = text(65546, 20, "x")
`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, tc := range []struct {
		ok, msg string
		want    string
	}{
		{"ok", "msg", "row out of range"},
		{"ok2", "msg2", "unsupported thickness"},
		{"ok3", "msg3", "invalid mode"},
		{"ok4", "msg4", "radius out of range"},
		{"ok5", "msg5", "text out of range"},
	} {
		if v := e.L.GetGlobal(tc.ok); v != lua.LNil {
			t.Fatalf("%s = %v, want nil", tc.ok, v)
		}
		if msg := e.L.GetGlobal(tc.msg).String(); !strings.Contains(msg, tc.want) {
			t.Fatalf("%s = %q, want %q", tc.msg, msg, tc.want)
		}
	}
	for _, page := range c.Buffer() {
		for _, col := range page {
			if col != 0 {
				t.Fatal("rejected draw changed the canvas")
			}
		}
	}
}

func TestTextAndCursor(t *testing.T) {
	e, c := newEngine(t)
	src := `
assert(set_page(2))
assert(set_column(10))
assert(print_text("AB"))
assert(putc(SURPRISE))
page, col = cursor()
assert(putc_at(20, 30, "L"))
`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := c.Cursor(); got != (gfx.Cursor{Page: 2, Column: 28}) {
		t.Fatalf("cursor = %+v", got)
	}
	if p, col := lua.LVAsNumber(e.L.GetGlobal("page")), lua.LVAsNumber(e.L.GetGlobal("col")); p != 2 || col != 28 {
		t.Fatalf("lua cursor = %v, %v", p, col)
	}
	// 'L' has a full-height stem in its first column.
	for row := 20; row < 27; row++ {
		if !c.Buffer().Pixel(row, 30) {
			t.Fatalf("putc_at stem missing at row %d", row)
		}
	}
}

func TestDeg(t *testing.T) {
	e, _ := newEngine(t)
	if err := e.Run(context.Background(), `a = deg(90); b = deg(360)`); err != nil {
		t.Fatal(err)
	}
	if a := lua.LVAsNumber(e.L.GetGlobal("a")); a != 64 {
		t.Fatalf("deg(90) = %v", a)
	}
	if b := lua.LVAsNumber(e.L.GetGlobal("b")); b != 0 {
		t.Fatalf("deg(360) = %v", b)
	}
}

func TestSandbox(t *testing.T) {
	e, _ := newEngine(t)
	src := `assert(io == nil and os == nil and require == nil and dofile == nil and load == nil)
assert(math.floor(2.5) == 2 and string.upper("a") == "A")`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestPrintRedirect(t *testing.T) {
	var out bytes.Buffer
	e, _ := newEngine(t, WithOutput(&out))
	if err := e.Run(context.Background(), `print("hi", 1)`); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "hi\t1\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunSyntaxError(t *testing.T) {
	e, _ := newEngine(t)
	if err := e.Run(context.Background(), `rect(`); err == nil {
		t.Fatal("Run accepted broken source")
	}
}

func TestRunHonoursContext(t *testing.T) {
	e, _ := newEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx, `x = 1`); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want canceled", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := e.Run(ctx, `while true do end`); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}

	// The state stays usable afterwards.
	if err := e.Run(context.Background(), `assert(pixel(0, 0))`); err != nil {
		t.Fatalf("Run after timeout: %v", err)
	}
}

func TestFrame(t *testing.T) {
	e, c := newEngine(t)
	ok, err := e.Frame(context.Background(), 0)
	if ok || err != nil {
		t.Fatalf("Frame without function = %v, %v", ok, err)
	}

	if err := e.Run(context.Background(), `function frame(t) clear(); pixel(0, t) end`); err != nil {
		t.Fatal(err)
	}
	for tick := uint64(1); tick <= 3; tick++ {
		ok, err := e.Frame(context.Background(), tick)
		if !ok || err != nil {
			t.Fatalf("Frame(%d) = %v, %v", tick, ok, err)
		}
	}
	b := c.Buffer()
	if !b.Pixel(0, 3) || b.Pixel(0, 2) {
		t.Fatal("frame did not redraw")
	}
}

func TestRunFile(t *testing.T) {
	e, c := newEngine(t)
	path := filepath.Join(t.TempDir(), "scene.lua")
	if err := os.WriteFile(path, []byte(`assert(arc(64, 32, 20, 0, 0))`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := e.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if !c.Buffer().Pixel(32, 84) {
		t.Fatal("circle not drawn")
	}
	if err := e.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Fatal("RunFile accepted a missing file")
	}
}

func TestClosed(t *testing.T) {
	e, _ := newEngine(t)
	e.Close()
	if err := e.Run(context.Background(), `x = 1`); !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v", err)
	}
	if _, err := e.Frame(context.Background(), 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("Frame err = %v", err)
	}
}
