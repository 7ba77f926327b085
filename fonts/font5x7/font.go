package font5x7

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// Width is the number of pixel columns in a glyph.
	Width = 5
	// Height is the number of pixel rows in a glyph. Bit 7 of every column
	// byte is unused.
	Height = 7
	// Advance is the horizontal cell size including the blank spacer column.
	Advance = Width + 1

	// First is the lowest code in the table.
	First byte = ' '
	// ArrowRight takes the slot of '~'.
	ArrowRight byte = 0x7E
	// ArrowLeft takes the slot of DEL.
	ArrowLeft byte = 0x7F
	// Surprise is the decorative glyph at the end of the table.
	Surprise byte = 0x80
	// Last is the highest code in the table.
	Last = Surprise
)

var ErrUnsupportedCharacter = errors.New("unsupported character")

// Glyph returns the five column bytes for c.
func Glyph(c byte) ([Width]byte, error) {
	var g [Width]byte
	if c < First || c > Last {
		return g, ErrUnsupportedCharacter
	}
	base := Width * int(c-First)
	copy(g[:], glyphData[base:base+Width])
	return g, nil
}

// Supported reports whether c has a glyph.
func Supported(c byte) bool { return c >= First && c <= Last }

// Font adapts the table to tinyfont so it can be drawn onto any
// drivers.Displayer with tinyfont.WriteLine. y is the baseline (glyph row 6).
//
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font5x7{}

type font5x7 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	col, err := Glyph(runeToCode(g.r))
	if err != nil {
		return
	}
	for i, b := range col {
		for row := 0; row < Height; row++ {
			if b&(1<<row) == 0 {
				continue
			}
			display.SetPixel(x+int16(i), y-int16(Height-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Advance,
		XOffset:  0,
		YOffset:  -(Height - 1),
	}
}

func (f *font5x7) GetYAdvance() uint8 { return Height + 1 }

func (f *font5x7) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func runeToCode(r rune) byte {
	if r >= rune(First) && r <= '}' {
		return byte(r)
	}
	switch r {
	case '→':
		return ArrowRight
	case '←':
		return ArrowLeft
	case '☺':
		return Surprise
	}
	return '?'
}
