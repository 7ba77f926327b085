//go:build tinygo && bootdebug

package app

import (
	"machine"

	"dogm/hal"
)

// bootStep reports boot progress on the logger and, once it enumerates, on
// USB CDC, so early hangs can be located without a UART adapter.
func bootStep(h hal.HAL, step string) {
	line := "bootdiag: " + step
	if h != nil {
		logf(h.Logger(), "%s", line)
	}
	if usb := machine.USBCDC; usb != nil {
		_, _ = usb.Write([]byte(line + "\r\n"))
	}
}
