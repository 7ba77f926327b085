//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	panel  *hostPanel
}

// New returns a host HAL implementation. The bus is wired to an emulated
// controller instead of real hardware.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		panel:  newHostPanel(),
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Bus() Bus       { return h.panel }

// Snapshot returns the emulated panel state of a host HAL. ok is false for
// any other HAL.
func Snapshot(h HAL) (s PanelState, ok bool) {
	hh, ok := h.(*hostHAL)
	if !ok {
		return PanelState{}, false
	}
	return hh.panel.Snapshot(), true
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
