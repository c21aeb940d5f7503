package imsdl

import (
	"github.com/Alia5/imsdl/input"
)

// HandleEvent applies one platform event to the adapter state and io.
// Feeding the same event twice applies it twice.
func (a *Adapter) HandleEvent(io IO, ev input.Event) {
	switch ev.Kind {
	case input.KindMouseWheel:
		io.SetMouseWheel(ev.WheelX, ev.WheelY)
	case input.KindMouseButtonDown:
		if i, ok := ev.Button.Index(); ok {
			a.pendingPress[i] = true
		}
	case input.KindTextInput:
		for _, r := range ev.Text {
			io.AddInputCharacter(r)
		}
	case input.KindKeyDown, input.KindKeyUp:
		io.SetKeyModifiers(ev.Mod.Ctrl(), ev.Mod.Alt(), ev.Mod.Shift(), ev.Mod.Super())
		if ev.Scancode.Valid() {
			io.SetKey(ev.Scancode, ev.Kind == input.KindKeyDown)
		}
	}
}

// IgnoreEvent reports whether ev should be withheld from the application
// because the GUI captured its input class during the previous frame. The
// event must still be passed to HandleEvent.
func (a *Adapter) IgnoreEvent(ev input.Event) bool {
	switch {
	case ev.Kind.IsKeyboard():
		return a.ignoreKeyboard
	case ev.Kind.IsPointer():
		return a.ignoreMouse
	default:
		return false
	}
}

// WantsKeyboard reports whether the GUI captured the keyboard last frame.
func (a *Adapter) WantsKeyboard() bool { return a.ignoreKeyboard }

// WantsMouse reports whether the GUI captured the mouse last frame.
func (a *Adapter) WantsMouse() bool { return a.ignoreMouse }
