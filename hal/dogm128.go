package hal

import "fmt"

// ST7565R commands used by the DOGM128.
const (
	cmdStartLine      = 0x40 // | line (0..63)
	cmdADCReverse     = 0xA1
	cmdCommonNormal   = 0xC0
	cmdDisplayNormal  = 0xA6 // | DisplayMode
	cmdBias1_9        = 0xA2
	cmdPowerControl   = 0x28 // | booster, regulator, follower bits
	cmdBoosterRatio   = 0xF8 // followed by ratio
	cmdRegulator      = 0x20 // | resistor ratio
	cmdContrast       = 0x81 // followed by 0..63
	cmdStaticIndOff   = 0xAC // followed by mode
	cmdDisplayOff     = 0xAE // | PowerState
	cmdPageAddress    = 0xB0 // | page
	cmdColumnUpper    = 0x10 // | high nibble
	cmdColumnLower    = 0x00 // | low nibble
	contrastMask      = 0x3F
	startLineMask     = 0x3F
	displayModeMask   = 0x01
	defaultBoosterX4  = 0x00
	defaultRegulator  = 0x07
	defaultPowerFlags = 0x07
)

// Controller drives an EA DOGM128 (ST7565R) over a Bus.
type Controller struct {
	bus Bus
}

// NewController returns a controller on bus. Call Init before Flush.
func NewController(bus Bus) *Controller {
	return &Controller{bus: bus}
}

// Init runs the power-up sequence for 3.3V operation with the given display
// mode and contrast (masked to 0..63), switches the panel on and clears its
// RAM.
func (c *Controller) Init(mode DisplayMode, contrast uint8) error {
	err := c.bus.Command(
		cmdStartLine,
		cmdADCReverse,
		cmdCommonNormal,
		cmdDisplayNormal|byte(mode)&displayModeMask,
		cmdBias1_9,
		cmdPowerControl|defaultPowerFlags,
		cmdBoosterRatio, defaultBoosterX4,
		cmdRegulator|defaultRegulator,
		cmdContrast, contrast&contrastMask,
		cmdStaticIndOff, 0x00,
		cmdDisplayOff|byte(PowerOn),
	)
	if err != nil {
		return fmt.Errorf("dogm128: init: %w", err)
	}
	return c.Clear()
}

// Clear writes zeros to the whole display RAM.
func (c *Controller) Clear() error {
	var zero [Pages * Columns]byte
	if err := c.write(zero[:]); err != nil {
		return fmt.Errorf("dogm128: clear: %w", err)
	}
	return nil
}

// Flush streams a page-major frame (Pages*Columns bytes) to the panel.
func (c *Controller) Flush(frame []byte) error {
	if len(frame) != Pages*Columns {
		return fmt.Errorf("dogm128: flush: frame is %d bytes, want %d", len(frame), Pages*Columns)
	}
	if err := c.write(frame); err != nil {
		return fmt.Errorf("dogm128: flush: %w", err)
	}
	return nil
}

// write sends each page as: page select, 128 data bytes, column reset.
// It finishes by selecting page 0 again.
func (c *Controller) write(frame []byte) error {
	for p := 0; p < Pages; p++ {
		if err := c.bus.Command(cmdPageAddress | byte(p)); err != nil {
			return err
		}
		if err := c.bus.Data(frame[p*Columns : (p+1)*Columns]); err != nil {
			return err
		}
		if err := c.bus.Command(cmdColumnUpper, cmdColumnLower); err != nil {
			return err
		}
	}
	return c.bus.Command(cmdPageAddress)
}

// SetStartLine selects the RAM row shown at the top of the panel (0..63),
// which scrolls the picture without rewriting display RAM.
func (c *Controller) SetStartLine(line int) error {
	if line < 0 || line >= Pages*8 {
		return fmt.Errorf("dogm128: start line %d out of range", line)
	}
	if err := c.bus.Command(cmdStartLine | byte(line)); err != nil {
		return fmt.Errorf("dogm128: start line: %w", err)
	}
	return nil
}

// SetContrast sets the electronic volume (0..63).
func (c *Controller) SetContrast(contrast uint8) error {
	if err := c.bus.Command(cmdContrast, contrast&contrastMask); err != nil {
		return fmt.Errorf("dogm128: contrast: %w", err)
	}
	return nil
}

// SetDisplayMode switches between normal and inverted pixels without
// touching display RAM.
func (c *Controller) SetDisplayMode(mode DisplayMode) error {
	if err := c.bus.Command(cmdDisplayNormal | byte(mode)&displayModeMask); err != nil {
		return fmt.Errorf("dogm128: display mode: %w", err)
	}
	return nil
}

// SetPower turns the panel on or puts it to sleep.
func (c *Controller) SetPower(state PowerState) error {
	if err := c.bus.Command(cmdDisplayOff | byte(state)&1); err != nil {
		return fmt.Errorf("dogm128: power: %w", err)
	}
	return nil
}
