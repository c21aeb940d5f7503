package imsdl

import (
	"github.com/Alia5/imsdl/clipboard"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
	"github.com/Alia5/imsdl/keymap"
)

// IO is the GUI library's per-frame input contract. The adapter writes the
// input snapshot through the setters and reads the GUI's decisions back
// through the getters.
type IO interface {
	SetKeyMap(km keymap.KeyMap)
	SetClipboard(c clipboard.Clipboard)

	SetDisplaySize(width, height float32)
	SetDisplayFramebufferScale(x, y float32)
	SetDeltaTime(seconds float32)

	SetMousePos(x, y float32)
	SetMouseDown(buttons input.Buttons)
	SetMouseWheel(horizontal, vertical float32)

	SetKeyModifiers(ctrl, alt, shift, super bool)
	SetKey(sc input.Scancode, down bool)
	AddInputCharacter(r rune)

	WantCaptureKeyboard() bool
	WantCaptureMouse() bool
	// MouseCursor returns the GUI cursor code requested for this frame; see
	// the cursor package for the known codes.
	MouseCursor() int
	// MouseDrawCursor reports whether the GUI renders the cursor itself.
	MouseDrawCursor() bool
}

// Context is a GUI library instance. NewFrame runs the GUI's frame setup on
// the snapshot written to IO and returns the library's frame handle.
type Context[F any] interface {
	IO() IO
	NewFrame() F
}

// Platform groups the windowing-system primitives the adapter calls.
type Platform interface {
	cursor.Platform
	clipboard.Backend

	// CaptureMouse makes the window receive mouse events even when the
	// pointer leaves it.
	CaptureMouse(capture bool) error
}

// Window answers the per-frame polling queries.
type Window interface {
	Metrics() input.WindowMetrics
	PointerState() input.PointerState
}
