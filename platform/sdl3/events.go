package sdl3

import (
	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/Alia5/imsdl/input"
)

// ConvertEvent translates an SDL3 event. ok is false for event types the
// adapter has no use for. SDL3 has no gesture events, so the gesture kinds
// are never produced here.
func ConvertEvent(e *sdl.Event) (ev input.Event, ok bool) {
	switch e.Type {
	case sdl.EVENT_QUIT:
		return input.Event{Kind: input.KindQuit}, true
	case sdl.EVENT_WINDOW_RESIZED, sdl.EVENT_WINDOW_PIXEL_SIZE_CHANGED,
		sdl.EVENT_WINDOW_FOCUS_GAINED, sdl.EVENT_WINDOW_FOCUS_LOST:
		return input.Event{Kind: input.KindWindow}, true
	case sdl.EVENT_KEY_DOWN, sdl.EVENT_KEY_UP:
		k := e.KeyboardEvent()
		ev = input.Event{
			Kind:     input.KindKeyUp,
			Scancode: convertScancode(uint32(k.Scancode)),
			Mod:      convertMod(uint16(k.Mod)),
			Repeat:   k.Repeat,
		}
		if k.Down {
			ev.Kind = input.KindKeyDown
		}
		return ev, true
	case sdl.EVENT_TEXT_INPUT:
		return input.Event{Kind: input.KindTextInput, Text: e.TextInputEvent().Text}, true
	case sdl.EVENT_TEXT_EDITING:
		return input.Event{Kind: input.KindTextEditing}, true
	case sdl.EVENT_MOUSE_MOTION:
		m := e.MouseMotionEvent()
		return input.Event{Kind: input.KindMouseMotion, X: float32(m.X), Y: float32(m.Y)}, true
	case sdl.EVENT_MOUSE_BUTTON_DOWN, sdl.EVENT_MOUSE_BUTTON_UP:
		b := e.MouseButtonEvent()
		ev = input.Event{
			Kind:   input.KindMouseButtonUp,
			Button: convertButton(uint8(b.Button)),
			X:      float32(b.X),
			Y:      float32(b.Y),
		}
		if b.Down {
			ev.Kind = input.KindMouseButtonDown
		}
		return ev, true
	case sdl.EVENT_MOUSE_WHEEL:
		w := e.MouseWheelEvent()
		x, y := float32(w.X), float32(w.Y)
		if w.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return input.Event{Kind: input.KindMouseWheel, WheelX: x, WheelY: y}, true
	case sdl.EVENT_FINGER_DOWN, sdl.EVENT_FINGER_UP, sdl.EVENT_FINGER_MOTION:
		f := e.TouchFingerEvent()
		ev = input.Event{Kind: input.KindFingerMotion, X: float32(f.X), Y: float32(f.Y)}
		switch e.Type {
		case sdl.EVENT_FINGER_DOWN:
			ev.Kind = input.KindFingerDown
		case sdl.EVENT_FINGER_UP:
			ev.Kind = input.KindFingerUp
		}
		return ev, true
	}
	return input.Event{}, false
}

func convertScancode(sc uint32) input.Scancode {
	if sc >= input.ScancodeCount {
		return input.ScancodeUnknown
	}
	return input.Scancode(sc)
}

func convertButton(b uint8) input.MouseButton {
	switch b {
	case uint8(sdl.BUTTON_LEFT):
		return input.ButtonLeft
	case uint8(sdl.BUTTON_RIGHT):
		return input.ButtonRight
	case uint8(sdl.BUTTON_MIDDLE):
		return input.ButtonMiddle
	case uint8(sdl.BUTTON_X1):
		return input.ButtonX1
	case uint8(sdl.BUTTON_X2):
		return input.ButtonX2
	}
	return input.ButtonUnknown
}

// buttonsFromFlags decodes SDL_MouseButtonFlags. SDL numbers buttons left,
// middle, right; input.Buttons is left, right, middle.
func buttonsFromFlags(flags uint32) input.Buttons {
	pressed := func(b uint32) bool { return flags&(1<<(b-1)) != 0 }
	return input.Buttons{
		pressed(uint32(sdl.BUTTON_LEFT)),
		pressed(uint32(sdl.BUTTON_RIGHT)),
		pressed(uint32(sdl.BUTTON_MIDDLE)),
		pressed(uint32(sdl.BUTTON_X1)),
		pressed(uint32(sdl.BUTTON_X2)),
	}
}

var modBits = [...]struct {
	sdl uint16
	mod input.Mod
}{
	{uint16(sdl.KMOD_LCTRL), input.ModLeftCtrl},
	{uint16(sdl.KMOD_LSHIFT), input.ModLeftShift},
	{uint16(sdl.KMOD_LALT), input.ModLeftAlt},
	{uint16(sdl.KMOD_LGUI), input.ModLeftGUI},
	{uint16(sdl.KMOD_RCTRL), input.ModRightCtrl},
	{uint16(sdl.KMOD_RSHIFT), input.ModRightShift},
	{uint16(sdl.KMOD_RALT), input.ModRightAlt},
	{uint16(sdl.KMOD_RGUI), input.ModRightGUI},
}

func convertMod(m uint16) input.Mod {
	var out input.Mod
	for _, b := range modBits {
		if m&b.sdl != 0 {
			out |= b.mod
		}
	}
	return out
}
