package testing

import (
	"errors"
	"time"

	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
)

// Clipboard is an in-memory clipboard backend.
type Clipboard struct {
	Contents string
	ReadErr  error
	WriteErr error

	Reads, Writes int
}

func (c *Clipboard) HasClipboardText() bool { return c.Contents != "" }

func (c *Clipboard) ClipboardText() (string, error) {
	c.Reads++
	if c.ReadErr != nil {
		return "", c.ReadErr
	}
	return c.Contents, nil
}

func (c *Clipboard) SetClipboardText(text string) error {
	c.Writes++
	if c.WriteErr != nil {
		return c.WriteErr
	}
	c.Contents = text
	return nil
}

// CursorHandle is a cursor resource created by Platform.
type CursorHandle struct {
	System   cursor.System
	Released bool
}

func (h *CursorHandle) Release() { h.Released = true }

// Platform records every cursor, capture and clipboard call made against it.
type Platform struct {
	Clipboard

	Created  []*CursorHandle
	Set      []*CursorHandle
	Shown    []bool
	Captured []bool

	CreateErr  error
	SetErr     error
	CaptureErr error
}

// ErrNoCursors is a ready-made failure for Platform.CreateErr.
var ErrNoCursors = errors.New("out of cursor resources")

func (p *Platform) CreateSystemCursor(id cursor.System) (cursor.Handle, error) {
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	h := &CursorHandle{System: id}
	p.Created = append(p.Created, h)
	return h, nil
}

func (p *Platform) SetCursor(h cursor.Handle) error {
	if p.SetErr != nil {
		return p.SetErr
	}
	p.Set = append(p.Set, h.(*CursorHandle))
	return nil
}

func (p *Platform) ShowCursor(show bool) error {
	p.Shown = append(p.Shown, show)
	return nil
}

func (p *Platform) CaptureMouse(capture bool) error {
	p.Captured = append(p.Captured, capture)
	return p.CaptureErr
}

// Current returns the last installed cursor, or nil.
func (p *Platform) Current() *CursorHandle {
	if len(p.Set) == 0 {
		return nil
	}
	return p.Set[len(p.Set)-1]
}

// Window is a fixed-size window whose pointer state tests set directly.
type Window struct {
	Size    input.WindowMetrics
	Pointer input.PointerState
}

func (w *Window) Metrics() input.WindowMetrics      { return w.Size }
func (w *Window) PointerState() input.PointerState { return w.Pointer }

// Clock is a manually advanced time source.
type Clock struct {
	T time.Time
}

// NewClock returns a clock starting at a fixed instant.
func NewClock() *Clock {
	return &Clock{T: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time { return c.T }

func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }
