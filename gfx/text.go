package gfx

import (
	"fmt"

	"dogm/fonts/font5x7"
)

// TextWidth is the usable width for text. 126 = 21 cells of 6 columns, so a
// glyph is never split across the right edge.
const TextWidth = 126

// Cursor returns the sequential text position.
func (c *Canvas) Cursor() Cursor { return c.cursor }

// SetCursorPage moves sequential text output to page p.
func (c *Canvas) SetCursorPage(p int) error {
	if p < 0 || p >= PageCount {
		return fmt.Errorf("%w: %d", ErrPageOutOfRange, p)
	}
	c.cursor.Page = p
	return nil
}

// SetCursorColumn moves sequential text output to column col. There must be
// room for a whole glyph.
func (c *Canvas) SetCursorColumn(col int) error {
	if col < 0 || col+font5x7.Width >= TextWidth {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	c.cursor.Column = col
	return nil
}

// PutChar writes ch at the cursor and advances it, wrapping to the next page
// at the right edge and back to page 0 after the last page. '\n' blanks the
// rest of the current page and moves to the start of the next one.
func (c *Canvas) PutChar(ch byte) (byte, error) {
	if ch == '\n' {
		c.wrapPage()
		page := c.buf[c.cursor.Page][:]
		for col := c.cursor.Column; col < Width; col++ {
			page[col] = 0
		}
		c.cursor.Page++
		c.cursor.Column = 0
		c.dirty = true
		return ch, nil
	}

	g, err := font5x7.Glyph(ch)
	if err != nil {
		return ch, fmt.Errorf("%w: %#x", err, ch)
	}

	if c.cursor.Column+font5x7.Width >= TextWidth {
		c.cursor.Column = 0
		c.cursor.Page++
	}
	c.wrapPage()

	page := c.buf[c.cursor.Page][:]
	for _, b := range g {
		page[c.cursor.Column] |= b
		c.cursor.Column++
	}
	c.cursor.Column++ // spacer
	c.dirty = true
	return ch, nil
}

func (c *Canvas) wrapPage() {
	if c.cursor.Page >= PageCount {
		c.cursor.Page = 0
	}
}

// Write implements io.Writer over PutChar, so fmt.Fprintf can print to the
// canvas. It stops at the first unsupported byte.
func (c *Canvas) Write(p []byte) (int, error) {
	for i, ch := range p {
		if _, err := c.PutChar(ch); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// PutCharAt draws ch with its top-left pixel at (row, col). The glyph may
// straddle two pages. The sequential cursor is not affected.
func (c *Canvas) PutCharAt(row, col int, ch byte) error {
	if row < 0 || row+font5x7.Height >= Height {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 || col+font5x7.Width >= TextWidth {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	g, err := font5x7.Glyph(ch)
	if err != nil {
		return fmt.Errorf("%w: %#x", err, ch)
	}

	saved := c.cursor
	defer func() { c.cursor = saved }()

	c.cursor.Page = row / PageHeight
	c.cursor.Column = col
	shift := uint(row % PageHeight)

	for _, b := range g {
		c.buf[c.cursor.Page][c.cursor.Column] |= b << shift
		if next := c.cursor.Page + 1; next < PageCount {
			c.buf[next][c.cursor.Column] |= b >> (PageHeight - shift)
		}
		c.cursor.Column++
	}
	c.cursor.Column++ // spacer, discarded with the rest of the cursor
	c.dirty = true
	return nil
}
