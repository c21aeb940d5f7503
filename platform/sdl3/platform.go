// Package sdl3 connects the adapter to SDL3 through the purego bindings of
// go-sdl3. The SDL shared library is loaded from the embedded binaries.
package sdl3

import (
	"errors"
	"fmt"

	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/Alia5/imsdl"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
)

var (
	_ imsdl.Platform = (*Backend)(nil)
	_ imsdl.Window   = (*Backend)(nil)
)

var systemCursors = [cursor.SystemCount]sdl.SystemCursor{
	cursor.SystemArrow:    sdl.SYSTEM_CURSOR_DEFAULT,
	cursor.SystemIBeam:    sdl.SYSTEM_CURSOR_TEXT,
	cursor.SystemSizeAll:  sdl.SYSTEM_CURSOR_MOVE,
	cursor.SystemSizeNS:   sdl.SYSTEM_CURSOR_NS_RESIZE,
	cursor.SystemSizeWE:   sdl.SYSTEM_CURSOR_EW_RESIZE,
	cursor.SystemSizeNESW: sdl.SYSTEM_CURSOR_NESW_RESIZE,
	cursor.SystemSizeNWSE: sdl.SYSTEM_CURSOR_NWSE_RESIZE,
	cursor.SystemHand:     sdl.SYSTEM_CURSOR_POINTER,
	cursor.SystemNo:       sdl.SYSTEM_CURSOR_NOT_ALLOWED,
}

type library interface{ Unload() }

// Backend owns an SDL3 window and implements the platform and window sides
// of the adapter. It must be used from the thread that created it.
type Backend struct {
	lib    library
	window *sdl.Window
}

// Open loads SDL3, initializes video on the calling thread and creates a
// resizable high pixel density window. The calling goroutine must stay
// locked to its OS thread.
func Open(title string) (*Backend, error) {
	lib := binsdl.Load()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		lib.Unload()
		return nil, fmt.Errorf("sdl3: init: %w", err)
	}
	w, err := sdl.CreateWindow(title, 1280, 720, sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIGH_PIXEL_DENSITY)
	if err != nil {
		sdl.Quit()
		lib.Unload()
		return nil, fmt.Errorf("sdl3: create window: %w", err)
	}
	if err := w.StartTextInput(); err != nil {
		w.Destroy()
		sdl.Quit()
		lib.Unload()
		return nil, fmt.Errorf("sdl3: start text input: %w", err)
	}
	return &Backend{lib: lib, window: w}, nil
}

// Close destroys the window, shuts SDL down and unloads the library.
func (b *Backend) Close() error {
	err := b.window.StopTextInput()
	b.window.Destroy()
	sdl.Quit()
	b.lib.Unload()
	return err
}

// PollEvents drains the SDL event queue, calling fn for every event the
// adapter understands.
func (b *Backend) PollEvents(fn func(input.Event)) {
	var e sdl.Event
	for sdl.PollEvent(&e) {
		if ev, ok := ConvertEvent(&e); ok {
			fn(ev)
		}
	}
}

func (b *Backend) Metrics() input.WindowMetrics {
	var m input.WindowMetrics
	if w, h, err := b.window.Size(); err == nil {
		m.Width, m.Height = int32(w), int32(h)
	}
	if w, h, err := b.window.SizeInPixels(); err == nil {
		m.DrawableWidth, m.DrawableHeight = int32(w), int32(h)
	}
	return m
}

func (b *Backend) PointerState() input.PointerState {
	flags, x, y := sdl.GetMouseState()
	return input.PointerState{
		X:       float32(x),
		Y:       float32(y),
		Buttons: buttonsFromFlags(uint32(flags)),
	}
}

type cursorHandle struct {
	c *sdl.Cursor
}

func (h cursorHandle) Release() { h.c.Destroy() }

func (b *Backend) CreateSystemCursor(id cursor.System) (cursor.Handle, error) {
	if id >= cursor.SystemCount {
		return nil, fmt.Errorf("%w: system cursor %d", cursor.ErrUnsupportedCursorKind, id)
	}
	c, err := sdl.CreateSystemCursor(systemCursors[id])
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("sdl3: no cursor returned")
	}
	return cursorHandle{c: c}, nil
}

func (b *Backend) SetCursor(h cursor.Handle) error {
	ch, ok := h.(cursorHandle)
	if !ok {
		return fmt.Errorf("sdl3: foreign cursor handle %T", h)
	}
	return sdl.SetCursor(ch.c)
}

func (b *Backend) ShowCursor(show bool) error {
	if show {
		return sdl.ShowCursor()
	}
	return sdl.HideCursor()
}

func (b *Backend) CaptureMouse(capture bool) error {
	return sdl.CaptureMouse(capture)
}

func (b *Backend) HasClipboardText() bool { return sdl.HasClipboardText() }

func (b *Backend) ClipboardText() (string, error) { return sdl.GetClipboardText() }

func (b *Backend) SetClipboardText(text string) error { return sdl.SetClipboardText(text) }
