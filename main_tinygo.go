//go:build tinygo && baremetal

package main

import (
	"dogm/app"
	"dogm/hal"
)

func main() {
	app.Run(hal.New())
}
