//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	bus    Bus
}

// New returns an RP2040/RP2350 HAL with the DOGM128 on SPI0.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: SCK GP18, SDO GP19, CS GP17, A0 GP20, RST GP21.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var bus Bus = nullBus{}
	if b, err := initSPIBus(); err != nil {
		logger.WriteLineString("dogm128: " + err.Error())
	} else {
		bus = b
	}
	return &tinyGoHAL{logger: logger, bus: bus}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) Bus() Bus       { return h.bus }

type spiBus struct {
	spi machine.SPI
	cs  machine.Pin
	a0  machine.Pin
	rst machine.Pin
}

func initSPIBus() (*spiBus, error) {
	if machine.SPI0 == nil {
		return nil, errors.New("SPI0 unavailable")
	}
	// The ST7565R samples on the rising edge with the clock idling high.
	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 10_000_000,
		Mode:      3,
	})

	b := &spiBus{
		spi: *machine.SPI0,
		cs:  machine.GP17,
		a0:  machine.GP20,
		rst: machine.GP21,
	}
	for _, p := range []machine.Pin{b.cs, b.a0, b.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}
	b.reset()
	return b, nil
}

func (b *spiBus) reset() {
	b.rst.Low()
	time.Sleep(1 * time.Millisecond)
	b.rst.High()
	time.Sleep(1 * time.Millisecond)
}

func (b *spiBus) Command(cmd ...byte) error {
	b.cs.Low()
	defer b.cs.High()
	b.a0.Low()
	return b.spi.Tx(cmd, nil)
}

func (b *spiBus) Data(data []byte) error {
	b.cs.Low()
	defer b.cs.High()
	b.a0.High()
	return b.spi.Tx(data, nil)
}

type nullBus struct{}

func (nullBus) Command(...byte) error { return ErrNotImplemented }
func (nullBus) Data([]byte) error     { return ErrNotImplemented }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
