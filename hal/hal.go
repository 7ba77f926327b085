package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Panel geometry of the DOGM128: 8 pages of 128 column bytes.
const (
	Pages   = 8
	Columns = 128
)

// Bus is the serial link to the display controller. The A0 line selects
// whether bytes are commands (Command) or display RAM data (Data). Chip
// select is asserted for the duration of each call.
type Bus interface {
	Command(b ...byte) error
	Data(b []byte) error
}

// DisplayMode selects normal or inverted pixels.
type DisplayMode uint8

const (
	DisplayNormal   DisplayMode = 0
	DisplayInverted DisplayMode = 1
)

func (m DisplayMode) String() string {
	if m&1 == DisplayInverted {
		return "inverted"
	}
	return "normal"
}

// PowerState switches the panel on or off (sleep).
type PowerState uint8

const (
	PowerOff PowerState = 0
	PowerOn  PowerState = 1
)

// HAL provides the only contact point between the renderer and the outside
// world.
type HAL interface {
	Logger() Logger
	Bus() Bus
}
