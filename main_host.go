//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"dogm/app"
	"dogm/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var inverted bool
	var contrast uint
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Preview, "preview", true, "Print the final frame to the terminal in headless mode.")
	flag.StringVar(&appCfg.Script, "script", "", "Lua scene to run instead of the demo.")
	flag.BoolVar(&appCfg.Demo, "demo", false, "Draw the demo under the script.")
	flag.BoolVar(&appCfg.Console, "console", false, "Show the log as a scrolling console on the panel.")
	flag.BoolVar(&inverted, "inverted", false, "Invert the panel.")
	flag.UintVar(&contrast, "contrast", app.DefaultContrast, "Contrast (0..63).")
	flag.Parse()

	if contrast > 63 {
		fmt.Fprintf(os.Stderr, "contrast %d out of range 0..63\n", contrast)
		os.Exit(2)
	}
	appCfg.Contrast = uint8(contrast)
	if inverted {
		appCfg.Mode = hal.DisplayInverted
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
