//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dogm/app"
	"dogm/gfx"
	"dogm/hal"
	"dogm/script"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const maxScale = 16

type renderOptions struct {
	Script string
	Frames uint64
}

// render draws the demo, or runs the script and then its frame function
// opts.Frames times.
func render(ctx context.Context, opts renderOptions) (*gfx.Canvas, error) {
	c := gfx.NewCanvas()
	if opts.Script == "" {
		if err := app.DrawDemo(c); err != nil {
			return nil, err
		}
		return c, nil
	}

	e := script.New(c, script.WithOutput(os.Stderr))
	defer e.Close()
	if err := e.RunFile(ctx, opts.Script); err != nil {
		return nil, err
	}
	for tick := uint64(1); tick <= opts.Frames; tick++ {
		ok, err := e.Frame(ctx, tick)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", tick, err)
		}
		if !ok {
			break
		}
	}
	return c, nil
}

func formatFor(path, explicit string) (string, error) {
	f := strings.ToLower(explicit)
	if f == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png":
			f = "png"
		case ".bin", ".raw":
			f = "raw"
		default:
			f = "bmp"
		}
	}
	switch f {
	case "bmp", "png", "raw":
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", explicit)
}

func extFor(format string) string {
	if format == "raw" {
		return ".bin"
	}
	return "." + format
}

// encode writes c in format. raw is the page-major frame exactly as the
// controller receives it.
func encode(w io.Writer, format string, c *gfx.Canvas, scale int) error {
	if format == "raw" {
		_, err := w.Write(c.Buffer().Bytes())
		return err
	}

	img, err := scaled(c.Buffer().Image(), scale)
	if err != nil {
		return err
	}
	switch format {
	case "bmp":
		return bmp.Encode(w, img)
	case "png":
		return png.Encode(w, img)
	}
	return fmt.Errorf("unknown format %q", format)
}

func scaled(src *image.Gray, scale int) (image.Image, error) {
	if scale < 1 || scale > maxScale {
		return nil, fmt.Errorf("scale %d out of range 1..%d", scale, maxScale)
	}
	if scale == 1 {
		return src, nil
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

func writeFile(path, format string, c *gfx.Canvas, scale int) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()
	if err := encode(f, format, c, scale); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}

// renderDir renders every .lua file in srcDir into dstDir, in name order.
func renderDir(ctx context.Context, srcDir, dstDir, format string, scale int, frames uint64) error {
	if _, err := formatFor("", format); err != nil {
		return err
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("read %q: %w", srcDir, err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", dstDir, err)
	}

	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		c, err := render(ctx, renderOptions{Script: src, Frames: frames})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		dst := filepath.Join(dstDir, strings.TrimSuffix(entry.Name(), ".lua")+extFor(format))
		if err := writeFile(dst, format, c, scale); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// panelState pushes c through the controller into the emulated panel, so
// the preview shows what the hardware would.
func panelState(c *gfx.Canvas, mode hal.DisplayMode) (hal.PanelState, error) {
	h := hal.New()
	ctrl := hal.NewController(h.Bus())
	if err := ctrl.Init(mode, app.DefaultContrast); err != nil {
		return hal.PanelState{}, err
	}
	if err := ctrl.Flush(c.Buffer().Bytes()); err != nil {
		return hal.PanelState{}, err
	}
	s, ok := hal.Snapshot(h)
	if !ok {
		return hal.PanelState{}, errors.New("no emulated panel")
	}
	return s, nil
}
