package gfx

// DrawPixel sets or clears the pixel at (row, col).
func (c *Canvas) DrawPixel(row, col int, mode Mode) error {
	if err := checkPoint(row, col); err != nil {
		return err
	}
	switch mode {
	case Set:
		c.buf.set(row, col)
	case Clear:
		c.buf.clear(row, col)
	default:
		return ErrInvalidMode
	}
	c.dirty = true
	return nil
}

// DrawPoint draws a single pixel (Thin) or a plus of five pixels (Thick).
// Neighbours that fall off the screen are dropped.
func (c *Canvas) DrawPoint(row, col int, thickness Thickness, mode Mode) error {
	if err := checkStyle(thickness, mode); err != nil {
		return err
	}
	if err := checkPoint(row, col); err != nil {
		return err
	}
	c.point(row, col, thickness, mode)
	return nil
}

// point assumes the style and centre were validated.
func (c *Canvas) point(row, col int, thickness Thickness, mode Mode) {
	_ = c.DrawPixel(row, col, mode)
	if thickness != Thick {
		return
	}
	_ = c.DrawPixel(row+1, col, mode)
	_ = c.DrawPixel(row, col+1, mode)
	if row > 0 {
		_ = c.DrawPixel(row-1, col, mode)
	}
	if col > 0 {
		_ = c.DrawPixel(row, col-1, mode)
	}
}

// DrawHLine draws row y from column x1 to x2 inclusive.
func (c *Canvas) DrawHLine(x1, x2, y int, thickness Thickness, mode Mode) error {
	if err := checkLine(x1, y, x2, y, thickness, mode); err != nil {
		return err
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.point(y, x, thickness, mode)
	}
	return nil
}

// DrawVLine draws column x from row y1 to y2 inclusive.
func (c *Canvas) DrawVLine(x, y1, y2 int, thickness Thickness, mode Mode) error {
	if err := checkLine(x, y1, x, y2, thickness, mode); err != nil {
		return err
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.point(y, x, thickness, mode)
	}
	return nil
}

// DrawLine draws from (x1, y1) to (x2, y2) with Bresenham's algorithm. x is
// the column and y the row. Both endpoints are drawn.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, thickness Thickness, mode Mode) error {
	if err := checkLine(x1, y1, x2, y2, thickness, mode); err != nil {
		return err
	}

	dx, dy := abs(x2-x1), abs(y2-y1)

	// Step along the longer axis so steep lines have no gaps.
	steep := dy > dx
	if steep {
		dx, dy = dy, dx
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	ystep := -1
	if y2 > y1 {
		ystep = 1
	}

	err := dx / 2
	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			c.point(x, y, thickness, mode)
		} else {
			c.point(y, x, thickness, mode)
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
	return nil
}

// DrawRectangle draws the outline of the rectangle with corners (x1, y1) and
// (x2, y2). Every side is attempted; the first failure is returned.
func (c *Canvas) DrawRectangle(x1, y1, x2, y2 int, thickness Thickness, mode Mode) error {
	errs := [...]error{
		c.DrawHLine(x1, x2, y1, thickness, mode),
		c.DrawVLine(x2, y1, y2, thickness, mode),
		c.DrawVLine(x1, y1, y2, thickness, mode),
		c.DrawHLine(x1, x2, y2, thickness, mode),
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func checkLine(x1, y1, x2, y2 int, thickness Thickness, mode Mode) error {
	if err := checkPoint(y1, x1); err != nil {
		return err
	}
	if err := checkPoint(y2, x2); err != nil {
		return err
	}
	return checkStyle(thickness, mode)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
