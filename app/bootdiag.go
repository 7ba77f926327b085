//go:build !(tinygo && bootdebug)

package app

import "dogm/hal"

func bootStep(hal.HAL, string) {}
