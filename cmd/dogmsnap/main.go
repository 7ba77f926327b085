//go:build !tinygo

// Command dogmsnap renders a Lua scene (or the demo) off-device and writes
// the frame as an image, a raw controller dump or a terminal preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"dogm/hal"
	"dogm/internal/buildinfo"
)

func main() {
	var (
		script   = flag.String("script", "", "Lua scene to render (default: the demo).")
		outPath  = flag.String("o", "", "Output file; the extension picks the format unless -format is set.")
		format   = flag.String("format", "", "bmp|png|raw.")
		scale    = flag.Int("scale", 1, "Integer upscale for bmp/png.")
		frames   = flag.Uint64("frames", 0, "Run the scene's frame function N times before capturing.")
		inverted = flag.Bool("inverted", false, "Preview with inverted pixels (-term only).")
		termView = flag.Bool("term", false, "Print the frame to the terminal.")
		dir      = flag.String("dir", "", "Render every .lua file in this directory.")
		outDir   = flag.String("outdir", ".", "Destination for -dir renders.")
		version  = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String("dogmsnap"))
		return
	}
	if *outPath == "" && !*termView && *dir == "" {
		fatalf("usage: dogmsnap [-script scene.lua] [-frames N] -o out.bmp|out.png|out.bin [-scale 4]\n       dogmsnap [-script scene.lua] -term [-inverted]\n       dogmsnap -dir scenes/ [-outdir out/] [-format png]")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := renderOptions{Script: *script, Frames: *frames}

	if *dir != "" {
		f := strings.ToLower(*format)
		if f == "" {
			f = "bmp"
		}
		if err := renderDir(ctx, *dir, *outDir, f, *scale, *frames); err != nil {
			fatalf("dir: %v", err)
		}
		return
	}

	c, err := render(ctx, opts)
	if err != nil {
		fatalf("render: %v", err)
	}

	if *termView {
		mode := hal.DisplayNormal
		if *inverted {
			mode = hal.DisplayInverted
		}
		s, err := panelState(c, mode)
		if err != nil {
			fatalf("panel: %v", err)
		}
		if err := hal.WriteTerminal(os.Stdout, int(os.Stdout.Fd()), s); err != nil {
			fatalf("term: %v", err)
		}
	}

	if *outPath != "" {
		f, err := formatFor(*outPath, *format)
		if err != nil {
			fatalf("%v", err)
		}
		if err := writeFile(*outPath, f, c, *scale); err != nil {
			fatalf("write: %v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
