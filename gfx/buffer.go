// Package gfx renders points, lines, rectangles, arcs and 5x7 text into a
// page-organized monochrome framebuffer for a 128x64 LCD.
//
// The buffer is split into eight pages of 128 column bytes. Bit b of the byte
// at [page][col] is the pixel at row page*8+b. A Canvas owns one buffer plus
// the cursor used by sequential text output and is not safe for concurrent
// use.
package gfx

import (
	"image"
	"image/color"
)

const (
	Width      = 128
	Height     = 64
	PageHeight = 8
	PageCount  = Height / PageHeight
)

// Buffer is the page-major pixel store.
type Buffer [PageCount][Width]byte

func pageBit(row int) (page int, mask byte) {
	return row / PageHeight, 1 << uint(row%PageHeight)
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

func (b *Buffer) set(row, col int) {
	page, mask := pageBit(row)
	b[page][col] |= mask
}

func (b *Buffer) clear(row, col int) {
	page, mask := pageBit(row)
	b[page][col] &^= mask
}

// Pixel reports whether (row, col) is on. Out-of-range pixels read as off.
func (b *Buffer) Pixel(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	page, mask := pageBit(row)
	return b[page][col]&mask != 0
}

// Page returns the 128 column bytes of page p.
func (b *Buffer) Page(p int) []byte {
	if p < 0 || p >= PageCount {
		return nil
	}
	return b[p][:]
}

// Bytes returns a flat page-major copy: page 0 columns 0..127, then page 1,
// and so on. This is the order the controller expects.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, PageCount*Width)
	for p := range b {
		out = append(out, b[p][:]...)
	}
	return out
}

// Reset turns every pixel off.
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Image converts the buffer to a grayscale image: lit pixels are black on a
// white background, the way the panel shows them in normal mode.
func (b *Buffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			c := color.Gray{Y: 0xff}
			if b.Pixel(row, col) {
				c.Y = 0
			}
			img.SetGray(col, row, c)
		}
	}
	return img
}
