// Package input defines the platform-neutral input vocabulary shared by the
// adapter and the platform backends.
//
// Backends convert their native events into Event values; the adapter never
// sees a platform type. Scancodes are USB HID usage IDs, which is also what
// SDL uses for SDL_Scancode, so backends pass them through unchanged.
package input

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of an Event.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindQuit
	KindWindow
	KindMouseMotion
	KindMouseButtonDown
	KindMouseButtonUp
	KindMouseWheel
	KindKeyDown
	KindKeyUp
	KindTextEditing
	KindTextInput
	KindFingerDown
	KindFingerUp
	KindFingerMotion
	KindMultiGesture
	KindDollarGesture
	KindDollarRecord
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindQuit:            "quit",
	KindWindow:          "window",
	KindMouseMotion:     "mouse-motion",
	KindMouseButtonDown: "mouse-button-down",
	KindMouseButtonUp:   "mouse-button-up",
	KindMouseWheel:      "mouse-wheel",
	KindKeyDown:         "key-down",
	KindKeyUp:           "key-up",
	KindTextEditing:     "text-editing",
	KindTextInput:       "text-input",
	KindFingerDown:      "finger-down",
	KindFingerUp:        "finger-up",
	KindFingerMotion:    "finger-motion",
	KindMultiGesture:    "multi-gesture",
	KindDollarGesture:   "dollar-gesture",
	KindDollarRecord:    "dollar-record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyboard reports whether events of this kind belong to the keyboard
// class for capture routing.
func (k Kind) IsKeyboard() bool {
	switch k {
	case KindKeyDown, KindKeyUp, KindTextEditing, KindTextInput:
		return true
	}
	return false
}

// IsPointer reports whether events of this kind belong to the pointer class
// for capture routing. Touch and gesture kinds count as pointer input.
func (k Kind) IsPointer() bool {
	switch k {
	case KindMouseMotion, KindMouseButtonDown, KindMouseButtonUp, KindMouseWheel,
		KindFingerDown, KindFingerUp, KindFingerMotion,
		KindMultiGesture, KindDollarGesture, KindDollarRecord:
		return true
	}
	return false
}

// Event is a single platform input event. Only the fields relevant to Kind
// are populated.
type Event struct {
	Kind Kind

	// Mouse button events
	Button MouseButton
	// Pointer position for motion and button events, in window coordinates.
	X, Y float32

	// Wheel deltas. Positive Y scrolls away from the user.
	WheelX, WheelY float32

	// Key events. Scancode is ScancodeUnknown when the platform did not
	// report one.
	Scancode Scancode
	Mod      Mod
	Repeat   bool

	// Text input and editing events
	Text string
}

func (e Event) String() string {
	switch e.Kind {
	case KindMouseButtonDown, KindMouseButtonUp:
		return fmt.Sprintf("%s button=%s pos=(%g,%g)", e.Kind, e.Button, e.X, e.Y)
	case KindMouseMotion:
		return fmt.Sprintf("%s pos=(%g,%g)", e.Kind, e.X, e.Y)
	case KindMouseWheel:
		return fmt.Sprintf("%s delta=(%g,%g)", e.Kind, e.WheelX, e.WheelY)
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s scancode=%s mod=%s repeat=%t", e.Kind, e.Scancode, e.Mod, e.Repeat)
	case KindTextInput, KindTextEditing:
		return fmt.Sprintf("%s text=%q", e.Kind, e.Text)
	default:
		return e.Kind.String()
	}
}
