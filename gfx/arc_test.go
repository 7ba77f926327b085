package gfx

import (
	"errors"
	"math"
	"testing"
)

func TestSinQuadrants(t *testing.T) {
	tests := []struct {
		a    Angle
		want int
	}{
		{0, 0}, {32, 45}, {64, 64}, {96, 45}, {128, 0}, {160, -45}, {192, -64}, {224, -45},
	}
	for _, tt := range tests {
		if got := Sin(tt.a); got != tt.want {
			t.Fatalf("Sin(%d) = %d, want %d", tt.a, got, tt.want)
		}
	}
	if Cos(0) != 64 || Cos(128) != -64 || Cos(64) != 0 {
		t.Fatalf("Cos(0,64,128) = %d,%d,%d", Cos(0), Cos(64), Cos(128))
	}
}

func TestSinTracksMath(t *testing.T) {
	for a := 0; a < 256; a++ {
		want := 64 * math.Sin(float64(a)*2*math.Pi/256)
		if got := float64(Sin(Angle(a))); math.Abs(got-want) > 1 {
			t.Fatalf("Sin(%d) = %v, want ~%.2f", a, got, want)
		}
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		d    int
		want Angle
	}{
		{0, 0}, {45, 32}, {90, 64}, {180, 128}, {270, 192}, {360, 0}, {-90, 192},
	}
	for _, tt := range tests {
		if got := Degrees(tt.d); got != tt.want {
			t.Fatalf("Degrees(%d) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestArcSweep(t *testing.T) {
	if got := arcSweep(10, 10); got != 256 {
		t.Fatalf("equal angles sweep = %d, want 256", got)
	}
	if got := arcSweep(0, 64); got != 64 {
		t.Fatalf("arcSweep(0,64) = %d", got)
	}
	if got := arcSweep(200, 8); got != 64 {
		t.Fatalf("wrapping arcSweep(200,8) = %d, want 64", got)
	}
	if got := arcSteps(0, 256); got != 1 {
		t.Fatalf("arcSteps(0,256) = %d, want 1", got)
	}
	if got := arcSteps(20, 256); got != 62 {
		t.Fatalf("arcSteps(20,256) = %d, want 62", got)
	}
}

func TestFullCircleSamplesNearRadius(t *testing.T) {
	for _, r := range []int{1, 5, 12, 20, 31} {
		for _, a := range []Angle{0, 17, 64, 200} {
			pts := arcPoints(64, 32, r, a, a)
			if pts[0] != pts[len(pts)-1] {
				t.Fatalf("r=%d a=%d: loop not closed: %v != %v", r, a, pts[0], pts[len(pts)-1])
			}
			for _, p := range pts {
				// Measure from the centre of the pixel cell.
				d := math.Hypot(float64(p.x-64)+0.5, float64(p.y-32)+0.5)
				if math.Abs(d-float64(r)) > 1 {
					t.Fatalf("r=%d a=%d: sample %v at distance %.2f", r, a, p, d)
				}
			}
		}
	}
}

func TestDrawArcFullCircle(t *testing.T) {
	c := NewCanvas()
	if err := c.DrawArc(64, 32, 20, 0, 0, Thin, Set); err != nil {
		t.Fatalf("DrawArc: %v", err)
	}
	for _, p := range [][2]int{{32, 84}, {52, 64}, {32, 44}, {12, 64}} {
		if !c.buf.Pixel(p[0], p[1]) {
			t.Fatalf("cardinal pixel (%d,%d) missing", p[0], p[1])
		}
	}
	if c.buf.Pixel(32, 64) {
		t.Fatal("centre pixel set")
	}
}

func TestDrawArcQuarter(t *testing.T) {
	c := NewCanvas()
	if err := c.DrawArc(64, 32, 20, 0, 64, Thin, Set); err != nil {
		t.Fatal(err)
	}
	for p := range lit(c) {
		row, col := p[0], p[1]
		if row < 32 || col < 64 {
			t.Fatalf("quarter arc pixel (%d,%d) outside first quadrant", row, col)
		}
	}
	if !c.buf.Pixel(32, 84) || !c.buf.Pixel(52, 64) {
		t.Fatal("quarter arc endpoints missing")
	}
}

func TestDrawArcPartlyOffScreen(t *testing.T) {
	c := NewCanvas()
	if err := c.DrawArc(0, 0, 10, 0, 0, Thin, Set); err != nil {
		t.Fatalf("DrawArc: %v", err)
	}
	if !c.buf.Pixel(0, 10) || !c.buf.Pixel(9, 1) {
		t.Fatal("on-screen part of the circle missing")
	}
}

func TestDrawArcRejectsStyle(t *testing.T) {
	c := NewCanvas()
	if err := c.DrawArc(64, 32, 10, 0, 0, 2, Set); !errors.Is(err, ErrUnsupportedThickness) {
		t.Fatalf("err = %v, want ErrUnsupportedThickness", err)
	}
	if err := c.DrawArc(64, 32, 10, 0, 0, Thin, Mode(1)); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("err = %v, want ErrInvalidMode", err)
	}
	if len(lit(c)) != 0 {
		t.Fatal("rejected arcs drew pixels")
	}
}

func TestDrawArcRejectsHugeRadius(t *testing.T) {
	c := NewCanvas()
	for _, r := range []int{-1, MaxRadius + 1, 1 << 42} {
		if err := c.DrawArc(64, 32, r, 0, 0, Thin, Set); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("radius %d: err = %v, want ErrOutOfRange", r, err)
		}
	}
	if len(lit(c)) != 0 {
		t.Fatal("rejected arcs drew pixels")
	}
	if err := c.DrawArc(64, 32, MaxRadius, 0, 0, Thin, Set); err != nil {
		t.Fatalf("radius %d: %v", MaxRadius, err)
	}
}
