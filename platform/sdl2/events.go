package sdl2

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Alia5/imsdl/input"
)

// ConvertEvent translates an SDL2 event. ok is false for event types the
// adapter has no use for, such as window or joystick events.
func ConvertEvent(e sdl.Event) (ev input.Event, ok bool) {
	switch e := e.(type) {
	case *sdl.QuitEvent:
		return input.Event{Kind: input.KindQuit}, true
	case *sdl.WindowEvent:
		return input.Event{Kind: input.KindWindow}, true
	case *sdl.KeyboardEvent:
		ev = input.Event{
			Kind:     input.KindKeyUp,
			Scancode: convertScancode(uint32(e.Keysym.Scancode)),
			Mod:      convertMod(uint16(e.Keysym.Mod)),
			Repeat:   e.Repeat != 0,
		}
		if e.Type == sdl.KEYDOWN {
			ev.Kind = input.KindKeyDown
		}
		return ev, true
	case *sdl.TextInputEvent:
		return input.Event{Kind: input.KindTextInput, Text: e.GetText()}, true
	case *sdl.TextEditingEvent:
		return input.Event{Kind: input.KindTextEditing}, true
	case *sdl.MouseMotionEvent:
		return input.Event{Kind: input.KindMouseMotion, X: float32(e.X), Y: float32(e.Y)}, true
	case *sdl.MouseButtonEvent:
		ev = input.Event{
			Kind:   input.KindMouseButtonUp,
			Button: convertButton(e.Button),
			X:      float32(e.X),
			Y:      float32(e.Y),
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Kind = input.KindMouseButtonDown
		}
		return ev, true
	case *sdl.MouseWheelEvent:
		x, y := float32(e.X), float32(e.Y)
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			x, y = -x, -y
		}
		return input.Event{Kind: input.KindMouseWheel, WheelX: x, WheelY: y}, true
	case *sdl.TouchFingerEvent:
		switch e.Type {
		case sdl.FINGERDOWN:
			ev.Kind = input.KindFingerDown
		case sdl.FINGERUP:
			ev.Kind = input.KindFingerUp
		default:
			ev.Kind = input.KindFingerMotion
		}
		ev.X, ev.Y = e.X, e.Y
		return ev, true
	case *sdl.MultiGestureEvent:
		return input.Event{Kind: input.KindMultiGesture, X: e.X, Y: e.Y}, true
	case *sdl.DollarGestureEvent:
		ev = input.Event{Kind: input.KindDollarGesture, X: e.X, Y: e.Y}
		if e.Type == sdl.DOLLARRECORD {
			ev.Kind = input.KindDollarRecord
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
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_X1:
		return input.ButtonX1
	case sdl.BUTTON_X2:
		return input.ButtonX2
	}
	return input.ButtonUnknown
}

// buttonsFromState decodes the SDL_GetMouseState bitmask. SDL numbers
// buttons left, middle, right; input.Buttons is left, right, middle.
func buttonsFromState(state uint32) input.Buttons {
	pressed := func(b uint32) bool { return state&(1<<(b-1)) != 0 }
	return input.Buttons{
		pressed(sdl.BUTTON_LEFT),
		pressed(sdl.BUTTON_RIGHT),
		pressed(sdl.BUTTON_MIDDLE),
		pressed(sdl.BUTTON_X1),
		pressed(sdl.BUTTON_X2),
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
