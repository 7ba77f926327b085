//go:build !tinygo

package hal

import "sync"

// hostPanel emulates the ST7565R side of the bus: it decodes the command
// stream and keeps a shadow of display RAM for the window and terminal
// front ends.
type hostPanel struct {
	mu sync.Mutex

	ram       [Pages][Columns]byte
	page      int
	column    int
	startLine int
	contrast  uint8
	inverted  bool
	on        bool

	// pending is the first byte of a two-byte command.
	pending byte
}

// PanelState is a copy of the emulated controller state.
type PanelState struct {
	RAM [Pages][Columns]byte
	// StartLine is the RAM row shown at the top of the panel.
	StartLine int
	Contrast  uint8
	Inverted  bool
	On        bool
}

func newHostPanel() *hostPanel {
	return &hostPanel{}
}

func (p *hostPanel) Command(b ...byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range b {
		p.command(c)
	}
	return nil
}

func (p *hostPanel) command(c byte) {
	if p.pending != 0 {
		switch p.pending {
		case cmdContrast:
			p.contrast = c & contrastMask
		}
		p.pending = 0
		return
	}

	switch {
	case c == cmdContrast, c == cmdBoosterRatio, c == cmdStaticIndOff, c == cmdStaticIndOff|1:
		p.pending = c
	case c&0xC0 == cmdStartLine:
		p.startLine = int(c & startLineMask)
	case c&0xF0 == cmdPageAddress:
		if pg := int(c & 0x0F); pg < Pages {
			p.page = pg
		}
	case c&0xF0 == cmdColumnUpper:
		p.column = int(c&0x0F)<<4 | p.column&0x0F
	case c&0xF0 == cmdColumnLower:
		p.column = p.column&0xF0 | int(c&0x0F)
	case c&0xFE == cmdDisplayNormal:
		p.inverted = c&1 == 1
	case c&0xFE == cmdDisplayOff:
		p.on = c&1 == 1
	}
}

func (p *hostPanel) Data(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, v := range b {
		// The controller ignores writes past the last visible column.
		if p.column < Columns {
			p.ram[p.page][p.column] = v
		}
		p.column++
	}
	return nil
}

// Snapshot returns the current panel state.
func (p *hostPanel) Snapshot() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PanelState{
		RAM:       p.ram,
		StartLine: p.startLine,
		Contrast:  p.contrast,
		Inverted:  p.inverted,
		On:        p.on,
	}
}

// Lit reports whether the panel shows pixel (row, col) dark, taking the
// start line, inversion and power into account.
func (s *PanelState) Lit(row, col int) bool {
	if !s.On || row < 0 || row >= Pages*8 || col < 0 || col >= Columns {
		return false
	}
	r := (row + s.StartLine) % (Pages * 8)
	on := s.RAM[r/8][col]&(1<<uint(r%8)) != 0
	return on != s.Inverted
}
