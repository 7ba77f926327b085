//go:build !tinygo

package app

import (
	"context"
	"strings"
	"time"

	"dogm/hal"
	"dogm/script"
)

// Budgets for one script call. A script still running at the deadline is
// stopped and, for frames, the animation ends.
const (
	loadTimeout  = 5 * time.Second
	frameTimeout = 250 * time.Millisecond
)

// loadScript runs the Lua file once and keeps its frame function for step.
func (a *app) loadScript(path string) error {
	e := script.New(a.canvas, script.WithOutput(logWriter{l: a.log}))
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	if err := e.RunFile(ctx, path); err != nil {
		e.Close()
		return err
	}
	logf(a.log, "dogm: loaded %s", path)

	a.script = e
	a.frame = func(tick uint64) error {
		ctx, cancel := context.WithTimeout(context.Background(), frameTimeout)
		defer cancel()
		ok, err := e.Frame(ctx, tick)
		if !ok && err == nil {
			a.stopScript()
		}
		return err
	}
	return nil
}

// logWriter forwards Lua print output to the HAL logger line by line.
type logWriter struct {
	l hal.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		logf(w.l, "lua: %s", line)
	}
	return len(p), nil
}
