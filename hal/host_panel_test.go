//go:build !tinygo

package hal

import (
	"bytes"
	"strings"
	"testing"
)

func TestHostPanelFollowsController(t *testing.T) {
	p := newHostPanel()
	c := NewController(p)
	if err := c.Init(DisplayNormal, 0x16); err != nil {
		t.Fatalf("Init: %v", err)
	}

	s := p.Snapshot()
	if !s.On || s.Inverted || s.Contrast != 0x16 {
		t.Fatalf("state after init = on:%v inverted:%v contrast:%#x", s.On, s.Inverted, s.Contrast)
	}

	frame := make([]byte, Pages*Columns)
	frame[0] = 0x01           // row 0, col 0
	frame[3*Columns+5] = 0x80 // row 31, col 5
	frame[len(frame)-1] = 0xff
	if err := c.Flush(frame); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	s = p.Snapshot()
	if !s.Lit(0, 0) || !s.Lit(31, 5) || !s.Lit(63, 127) || !s.Lit(56, 127) {
		t.Fatal("flushed pixels not lit")
	}
	if s.Lit(1, 0) || s.Lit(30, 5) {
		t.Fatal("unexpected lit pixel")
	}
}

func TestHostPanelInvertAndPower(t *testing.T) {
	p := newHostPanel()
	c := NewController(p)
	if err := c.Init(DisplayInverted, 0); err != nil {
		t.Fatal(err)
	}
	s := p.Snapshot()
	if !s.Lit(10, 10) {
		t.Fatal("inverted blank panel should show dark pixels")
	}

	if err := c.SetPower(PowerOff); err != nil {
		t.Fatal(err)
	}
	s = p.Snapshot()
	if s.On || s.Lit(10, 10) {
		t.Fatal("powered-off panel shows pixels")
	}
}

func TestHostPanelColumnAddress(t *testing.T) {
	p := newHostPanel()
	if err := p.Command(0xB3, 0x12, 0x05); err != nil {
		t.Fatal(err)
	}
	if err := p.Data([]byte{0xAA, 0x55}); err != nil {
		t.Fatal(err)
	}
	s := p.Snapshot()
	if s.RAM[3][0x25] != 0xAA || s.RAM[3][0x26] != 0x55 {
		t.Fatalf("ram = %#x %#x", s.RAM[3][0x25], s.RAM[3][0x26])
	}
}

func TestWriteTerminal(t *testing.T) {
	var s PanelState
	s.On = true
	s.RAM[0][0] = 0x03 // rows 0 and 1
	s.RAM[0][1] = 0x01 // row 0
	s.RAM[0][2] = 0x02 // row 1

	var buf bytes.Buffer
	if err := WriteTerminal(&buf, -1, s); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != Pages*4 {
		t.Fatalf("lines = %d, want %d", len(lines), Pages*4)
	}
	first := []rune(lines[0])
	if len(first) != Columns {
		t.Fatalf("line width = %d", len(first))
	}
	if first[0] != blockFull || first[1] != blockUpper || first[2] != blockLower || first[3] != ' ' {
		t.Fatalf("first cells = %q", string(first[:4]))
	}
}

func TestHostPanelStartLine(t *testing.T) {
	p := newHostPanel()
	c := NewController(p)
	if err := c.Init(DisplayNormal, 0); err != nil {
		t.Fatal(err)
	}
	frame := make([]byte, Pages*Columns)
	frame[0] = 0x01 // RAM row 0, col 0
	if err := c.Flush(frame); err != nil {
		t.Fatal(err)
	}
	if err := c.SetStartLine(8); err != nil {
		t.Fatal(err)
	}

	s := p.Snapshot()
	if s.StartLine != 8 {
		t.Fatalf("start line = %d", s.StartLine)
	}
	if s.Lit(0, 0) || !s.Lit(56, 0) {
		t.Fatal("RAM row 0 should show at panel row 56")
	}
}
