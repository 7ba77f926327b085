package gfx

import (
	"errors"
	"fmt"

	"dogm/fonts/font5x7"
)

var (
	ErrOutOfRange       = errors.New("out of range")
	ErrRowOutOfRange    = fmt.Errorf("row %w", ErrOutOfRange)
	ErrColumnOutOfRange = fmt.Errorf("column %w", ErrOutOfRange)
	ErrPageOutOfRange   = fmt.Errorf("page %w", ErrOutOfRange)

	ErrInvalidMode          = errors.New("invalid mode")
	ErrUnsupportedThickness = errors.New("unsupported thickness")
	ErrUnsupportedCharacter = font5x7.ErrUnsupportedCharacter
)

// Mode selects whether drawing turns pixels on or off.
type Mode uint8

const (
	Set   Mode = 's'
	Clear Mode = 'c'
)

func (m Mode) valid() bool { return m == Set || m == Clear }

func (m Mode) String() string {
	switch m {
	case Set:
		return "set"
	case Clear:
		return "clear"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts "s"/"set" and "c"/"clear".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "s", "set":
		return Set, nil
	case "c", "clear":
		return Clear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Thickness selects a single pixel or a pixel plus its four neighbours.
type Thickness uint8

const (
	Thin  Thickness = 0
	Thick Thickness = 1
)

// Cursor is the next write position of sequential text output.
type Cursor struct {
	Page   int
	Column int
}

// Canvas owns a framebuffer and the text cursor. The zero value is an empty
// canvas with the cursor at page 0, column 0.
type Canvas struct {
	buf    Buffer
	cursor Cursor
	dirty  bool
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Buffer exposes the framebuffer for reading and export.
func (c *Canvas) Buffer() *Buffer { return &c.buf }

// Clear turns every pixel off. The text cursor is left where it is.
func (c *Canvas) Clear() {
	c.buf.Reset()
	c.dirty = true
}

// Dirty reports whether the buffer changed since the last call and resets
// the flag.
func (c *Canvas) Dirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

func checkStyle(thickness Thickness, mode Mode) error {
	if !mode.valid() {
		return ErrInvalidMode
	}
	if thickness > Thick {
		return ErrUnsupportedThickness
	}
	return nil
}

func checkPoint(row, col int) error {
	if row < 0 || row >= Height {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 || col >= Width {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	return nil
}
