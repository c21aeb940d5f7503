// Package sdl2 connects the adapter to SDL2 through go-sdl2.
package sdl2

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Alia5/imsdl"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
)

var (
	_ imsdl.Platform = (*Backend)(nil)
	_ imsdl.Window   = (*Backend)(nil)
)

var systemCursors = [cursor.SystemCount]sdl.SystemCursor{
	cursor.SystemArrow:    sdl.SYSTEM_CURSOR_ARROW,
	cursor.SystemIBeam:    sdl.SYSTEM_CURSOR_IBEAM,
	cursor.SystemSizeAll:  sdl.SYSTEM_CURSOR_SIZEALL,
	cursor.SystemSizeNS:   sdl.SYSTEM_CURSOR_SIZENS,
	cursor.SystemSizeWE:   sdl.SYSTEM_CURSOR_SIZEWE,
	cursor.SystemSizeNESW: sdl.SYSTEM_CURSOR_SIZENESW,
	cursor.SystemSizeNWSE: sdl.SYSTEM_CURSOR_SIZENWSE,
	cursor.SystemHand:     sdl.SYSTEM_CURSOR_HAND,
	cursor.SystemNo:       sdl.SYSTEM_CURSOR_NO,
}

// Backend owns an SDL2 window and implements the platform and window sides
// of the adapter. It must be used from the thread that created it.
type Backend struct {
	window *sdl.Window
}

// Open initializes SDL video on the calling thread, which must stay locked to
// its OS thread, and creates a resizable high-DPI window.
func Open(title string, width, height int32) (*Backend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl2: init: %w", err)
	}
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl2: create window: %w", err)
	}
	sdl.StartTextInput()
	return &Backend{window: w}, nil
}

// Close destroys the window and shuts SDL down.
func (b *Backend) Close() error {
	sdl.StopTextInput()
	err := b.window.Destroy()
	sdl.Quit()
	return err
}

// PollEvents drains the SDL event queue, calling fn for every event the
// adapter understands.
func (b *Backend) PollEvents(fn func(input.Event)) {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if ev, ok := ConvertEvent(e); ok {
			fn(ev)
		}
	}
}

func (b *Backend) Metrics() input.WindowMetrics {
	w, h := b.window.GetSize()
	dw, dh := b.window.GLGetDrawableSize()
	return input.WindowMetrics{
		Width:          int32(w),
		Height:         int32(h),
		DrawableWidth:  int32(dw),
		DrawableHeight: int32(dh),
	}
}

func (b *Backend) PointerState() input.PointerState {
	x, y, state := sdl.GetMouseState()
	return input.PointerState{
		X:       float32(x),
		Y:       float32(y),
		Buttons: buttonsFromState(uint32(state)),
	}
}

type cursorHandle struct {
	c *sdl.Cursor
}

func (h cursorHandle) Release() { sdl.FreeCursor(h.c) }

func (b *Backend) CreateSystemCursor(id cursor.System) (cursor.Handle, error) {
	if id >= cursor.SystemCount {
		return nil, fmt.Errorf("%w: system cursor %d", cursor.ErrUnsupportedCursorKind, id)
	}
	c := sdl.CreateSystemCursor(systemCursors[id])
	if c == nil {
		return nil, lastError()
	}
	return cursorHandle{c: c}, nil
}

func (b *Backend) SetCursor(h cursor.Handle) error {
	ch, ok := h.(cursorHandle)
	if !ok {
		return fmt.Errorf("sdl2: foreign cursor handle %T", h)
	}
	sdl.SetCursor(ch.c)
	return nil
}

func (b *Backend) ShowCursor(show bool) error {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	_, err := sdl.ShowCursor(toggle)
	return err
}

func (b *Backend) CaptureMouse(capture bool) error {
	return sdl.CaptureMouse(capture)
}

func (b *Backend) HasClipboardText() bool { return sdl.HasClipboardText() }

func (b *Backend) ClipboardText() (string, error) { return sdl.GetClipboardText() }

func (b *Backend) SetClipboardText(text string) error { return sdl.SetClipboardText(text) }

func lastError() error {
	if err := sdl.GetError(); err != nil {
		return err
	}
	return errors.New("sdl2: unknown error")
}
