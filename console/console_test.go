package console

import (
	"testing"

	"dogm/gfx"
)

func litIn(c *gfx.Canvas, row0, row1, col0, col1 int) int {
	n := 0
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			if c.Buffer().Pixel(row, col) {
				n++
			}
		}
	}
	return n
}

func TestNewClearsCanvas(t *testing.T) {
	c := gfx.NewCanvas()
	if err := c.DrawRectangle(0, 0, 127, 63, gfx.Thin, gfx.Set); err != nil {
		t.Fatal(err)
	}
	con := New(c)
	if n := litIn(c, 0, gfx.Height, 0, gfx.Width); n != 0 {
		t.Fatalf("%d pixels left after New", n)
	}
	if con.StartLine() != 0 {
		t.Fatalf("start line = %d", con.StartLine())
	}
}

func TestWriteDrawsFirstCell(t *testing.T) {
	c := gfx.NewCanvas()
	con := New(c)
	n, err := con.Write([]byte("L"))
	if err != nil || n != 1 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	// 'L' is a full-height stem plus a foot on the glyph's bottom row.
	for row := 0; row < 7; row++ {
		if !c.Buffer().Pixel(row, 0) {
			t.Fatalf("stem missing at row %d", row)
		}
	}
	if litIn(c, 8, gfx.Height, 0, gfx.Width) != 0 {
		t.Fatal("first line spilled")
	}
}

func TestWriteScrolls(t *testing.T) {
	c := gfx.NewCanvas()
	con := New(c)
	for i := 0; i < Rows+1; i++ {
		if _, err := con.Write([]byte("line\n")); err != nil {
			t.Fatal(err)
		}
	}
	if con.StartLine() == 0 || con.StartLine()%gfx.PageHeight != 0 {
		t.Fatalf("start line = %d, want a non-zero page boundary", con.StartLine())
	}
}

func TestSurfaceScrollWraps(t *testing.T) {
	s := &surface{Canvas: gfx.NewCanvas()}
	for _, tc := range []struct {
		line int16
		want int
	}{
		{0, 0}, {8, 8}, {64, 0}, {72, 8}, {-8, 56},
	} {
		s.SetScroll(tc.line)
		if s.scroll != tc.want {
			t.Fatalf("SetScroll(%d) = %d, want %d", tc.line, s.scroll, tc.want)
		}
	}
}
