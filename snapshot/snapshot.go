// Package snapshot records the input the adapter hands to the GUI library.
//
// Recorder implements imsdl.IO and imsdl.Context without any GUI behind it:
// NewFrame seals the input written since the previous frame into a Frame.
// The inspector command prints these frames; tests use them to observe
// exactly what a GUI would have received.
package snapshot

import (
	"log/slog"

	"github.com/Alia5/imsdl"
	"github.com/Alia5/imsdl/clipboard"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
	"github.com/Alia5/imsdl/keymap"
)

// Frame is the complete input snapshot of one frame.
type Frame struct {
	Number uint64

	DisplaySize      [2]float32
	FramebufferScale [2]float32
	DeltaTime        float32

	MousePos    [2]float32
	MouseDown   input.Buttons
	MouseWheel  float32
	MouseWheelH float32

	Ctrl, Alt, Shift, Super bool
	KeysDown                []input.Scancode
	InputChars              []rune
}

// LogValue renders the frame as a compact slog group.
func (f Frame) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Uint64("frame", f.Number),
		slog.Any("display", f.DisplaySize),
		slog.Any("scale", f.FramebufferScale),
		slog.Float64("dt", float64(f.DeltaTime)),
		slog.Any("mouse", f.MousePos),
		slog.Any("buttons", f.MouseDown),
	}
	if f.MouseWheel != 0 || f.MouseWheelH != 0 {
		attrs = append(attrs, slog.Any("wheel", [2]float32{f.MouseWheelH, f.MouseWheel}))
	}
	mod := input.Mod(0)
	if f.Ctrl {
		mod |= input.ModLeftCtrl
	}
	if f.Shift {
		mod |= input.ModLeftShift
	}
	if f.Alt {
		mod |= input.ModLeftAlt
	}
	if f.Super {
		mod |= input.ModLeftGUI
	}
	if mod != 0 {
		attrs = append(attrs, slog.String("mod", mod.String()))
	}
	if len(f.KeysDown) > 0 {
		names := make([]string, len(f.KeysDown))
		for i, sc := range f.KeysDown {
			names[i] = sc.String()
		}
		attrs = append(attrs, slog.Any("keys", names))
	}
	if len(f.InputChars) > 0 {
		attrs = append(attrs, slog.String("text", string(f.InputChars)))
	}
	return slog.GroupValue(attrs...)
}

// Recorder is an in-memory GUI IO. The exported fields play the role of the
// GUI's outputs and may be set by the caller at any time.
type Recorder struct {
	WantKeyboard bool
	WantMouse    bool
	Cursor       int
	DrawCursor   bool

	keyMap    keymap.KeyMap
	clipboard clipboard.Clipboard

	pending  Frame
	keysDown [input.ScancodeCount]bool
	frames   uint64
	last     Frame
}

var (
	_ imsdl.IO             = (*Recorder)(nil)
	_ imsdl.Context[Frame] = (*Recorder)(nil)
)

// NewRecorder returns a Recorder requesting the arrow cursor.
func NewRecorder() *Recorder {
	return &Recorder{Cursor: cursor.CodeArrow}
}

func (r *Recorder) IO() imsdl.IO { return r }

// NewFrame seals the pending input into a Frame and starts a new one.
// Wheel deltas and input characters are per-frame; everything else carries
// over until overwritten.
func (r *Recorder) NewFrame() Frame {
	r.frames++
	f := r.pending
	f.Number = r.frames
	f.KeysDown = nil
	for sc, down := range r.keysDown {
		if down {
			f.KeysDown = append(f.KeysDown, input.Scancode(sc))
		}
	}
	r.last = f

	r.pending.MouseWheel = 0
	r.pending.MouseWheelH = 0
	r.pending.InputChars = nil
	return f
}

// Last returns the most recent frame produced by NewFrame.
func (r *Recorder) Last() Frame { return r.last }

// Pending returns the input written since the last NewFrame.
func (r *Recorder) Pending() Frame { return r.pending }

// KeyMap returns the key map registered by the adapter.
func (r *Recorder) KeyMap() keymap.KeyMap { return r.keyMap }

// Clipboard returns the clipboard registered by the adapter, or nil.
func (r *Recorder) Clipboard() clipboard.Clipboard { return r.clipboard }

// KeyDown reports whether sc is currently pressed.
func (r *Recorder) KeyDown(sc input.Scancode) bool {
	return sc.Valid() && r.keysDown[sc]
}

func (r *Recorder) SetKeyMap(km keymap.KeyMap)         { r.keyMap = km }
func (r *Recorder) SetClipboard(c clipboard.Clipboard) { r.clipboard = c }

func (r *Recorder) SetDisplaySize(width, height float32) {
	r.pending.DisplaySize = [2]float32{width, height}
}

func (r *Recorder) SetDisplayFramebufferScale(x, y float32) {
	r.pending.FramebufferScale = [2]float32{x, y}
}

func (r *Recorder) SetDeltaTime(seconds float32) { r.pending.DeltaTime = seconds }

func (r *Recorder) SetMousePos(x, y float32) { r.pending.MousePos = [2]float32{x, y} }

func (r *Recorder) SetMouseDown(buttons input.Buttons) { r.pending.MouseDown = buttons }

func (r *Recorder) SetMouseWheel(horizontal, vertical float32) {
	r.pending.MouseWheelH = horizontal
	r.pending.MouseWheel = vertical
}

func (r *Recorder) SetKeyModifiers(ctrl, alt, shift, super bool) {
	r.pending.Ctrl, r.pending.Alt, r.pending.Shift, r.pending.Super = ctrl, alt, shift, super
}

func (r *Recorder) SetKey(sc input.Scancode, down bool) {
	if sc.Valid() {
		r.keysDown[sc] = down
	}
}

func (r *Recorder) AddInputCharacter(c rune) {
	r.pending.InputChars = append(r.pending.InputChars, c)
}

func (r *Recorder) WantCaptureKeyboard() bool { return r.WantKeyboard }
func (r *Recorder) WantCaptureMouse() bool    { return r.WantMouse }
func (r *Recorder) MouseCursor() int          { return r.Cursor }
func (r *Recorder) MouseDrawCursor() bool     { return r.DrawCursor }
