// Package script runs Lua drawing scripts against a gfx.Canvas.
//
// A script sees only the base, table, string and math libraries plus the
// drawing globals registered by this package. Drawing functions never raise
// a Lua error for bad geometry: they return true on success, or nil and a
// message, so a script can feel out the panel edges without aborting.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"dogm/gfx"

	lua "github.com/yuin/gopher-lua"
)

// FrameFunc is the optional global a script defines to animate. It is
// called once per tick with the tick number.
const FrameFunc = "frame"

var ErrClosed = errors.New("script: engine closed")

// Engine wraps a Lua state bound to one canvas.
//
// gopher-lua states are not goroutine-safe; the mutex serializes calls from
// Go, and the Lua code itself runs single-threaded.
type Engine struct {
	L *lua.LState

	mu     sync.Mutex
	canvas *gfx.Canvas
	out    io.Writer
	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithOutput redirects Lua print. Output is discarded by default.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// New creates a sandboxed Lua state drawing on c.
func New(c *gfx.Canvas, opts ...Option) *Engine {
	e := &Engine{
		canvas: c,
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(e.luaPrint))

	e.L = L
	e.register()
	return e
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Close releases the Lua state. Further calls return ErrClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// Run executes a chunk of Lua source.
func (e *Engine) Run(ctx context.Context, src string) error {
	return e.do(ctx, func() error { return e.L.DoString(src) })
}

// RunFile executes a Lua file.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	return e.do(ctx, func() error { return e.L.DoFile(path) })
}

// Frame calls the script's frame function, if it defined one. ok is false
// when there is nothing to call.
func (e *Engine) Frame(ctx context.Context, tick uint64) (ok bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, ErrClosed
	}
	fn, isFn := e.L.GetGlobal(FrameFunc).(*lua.LFunction)
	if !isFn {
		return false, nil
	}
	err = e.protect(ctx, func() error {
		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(tick))
	})
	return true, err
}

func (e *Engine) do(ctx context.Context, fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return e.protect(ctx, fn)
}

func (e *Engine) protect(ctx context.Context, fn func() error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	if err := fn(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (e *Engine) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(e.out, strings.Join(parts, "\t"))
	return 0
}
