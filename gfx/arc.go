package gfx

import "fmt"

// Angle is a fraction of a full turn in 1/256 steps: 64 is 90°, 128 is 180°.
// Arithmetic wraps naturally.
type Angle uint8

// Degrees converts d degrees to an Angle (d*32/45, modulo a full turn).
func Degrees(d int) Angle {
	a := d * 32 / 45 % 256
	if a < 0 {
		a += 256
	}
	return Angle(a)
}

// quarterSine is 64*sin for 0..64 angle units.
var quarterSine = [65]int8{
	0, 2, 3, 5, 6, 8, 9, 11, 12, 14, 16, 17, 19, 20, 22, 23, 24, 26, 27,
	29, 30, 32, 33, 34, 36, 37, 38, 39, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50,
	51, 52, 53, 54, 55, 56, 56, 57, 58, 59, 59, 60, 60, 61, 61, 62, 62, 62, 63,
	63, 63, 64, 64, 64, 64, 64, 64,
}

// Sin returns 64*sin(a), in [-64, 64].
func Sin(a Angle) int {
	i := int(a & 63)
	switch a >> 6 {
	case 0:
		return int(quarterSine[i])
	case 1:
		return int(quarterSine[64-i])
	case 2:
		return -int(quarterSine[i])
	default:
		return -int(quarterSine[64-i])
	}
}

// MaxRadius is the largest radius DrawArc accepts.
const MaxRadius = 255

// Cos returns 64*cos(a).
func Cos(a Angle) int { return Sin(a + 64) }

// DrawArc draws the arc of the circle centred at (cx, cy) from start to end,
// counter-clockwise in angle units. start == end draws a full circle. The
// arc is approximated by line segments roughly one pixel long; segments that
// leave the screen are skipped. radius must be in 0..MaxRadius.
func (c *Canvas) DrawArc(cx, cy, radius int, start, end Angle, thickness Thickness, mode Mode) error {
	if err := checkStyle(thickness, mode); err != nil {
		return err
	}
	if radius < 0 || radius > MaxRadius {
		return fmt.Errorf("radius %w: %d", ErrOutOfRange, radius)
	}
	pts := arcPoints(cx, cy, radius, start, end)
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		_ = c.DrawLine(p.x, p.y, q.x, q.y, thickness, mode)
	}
	return nil
}

type point struct{ x, y int }

// arcSweep returns the angle covered going from start to end; 256 when they
// are equal.
func arcSweep(start, end Angle) int {
	var dw int
	if end > start {
		dw = int(end - start)
	} else {
		dw = 256 - int(start) + int(end)
	}
	if dw == 0 {
		dw = 256
	}
	return dw
}

// arcSteps keeps the chord between samples at about one pixel:
// 201/2^14 ≈ 2π/256.
func arcSteps(radius, dw int) int {
	steps := (radius * dw * 201) >> 14
	if steps < 1 {
		steps = 1
	}
	return steps
}

// arcPoints returns the sampled points, first one at start.
func arcPoints(cx, cy, radius int, start, end Angle) []point {
	dw := arcSweep(start, end)
	steps := arcSteps(radius, dw)

	at := func(w Angle) point {
		return point{
			x: cx + (radius*Cos(w))>>6,
			y: cy + (radius*Sin(w))>>6,
		}
	}

	pts := make([]point, 0, steps+1)
	pts = append(pts, at(start))
	for i := 1; i <= steps; i++ {
		w := Angle(int(start) + dw*i/steps)
		pts = append(pts, at(w))
	}
	return pts
}
