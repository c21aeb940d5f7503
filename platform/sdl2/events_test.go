package sdl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Alia5/imsdl/input"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		in   sdl.Event
		want input.Event
	}{
		{
			name: "key down",
			in: &sdl.KeyboardEvent{
				Type:   sdl.KEYDOWN,
				Keysym: sdl.Keysym{Scancode: sdl.Scancode(sdl.SCANCODE_A), Mod: uint16(sdl.KMOD_LCTRL | sdl.KMOD_RSHIFT)},
			},
			want: input.Event{Kind: input.KindKeyDown, Scancode: input.ScancodeA, Mod: input.ModLeftCtrl | input.ModRightShift},
		},
		{
			name: "key up repeat",
			in:   &sdl.KeyboardEvent{Type: sdl.KEYUP, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.Scancode(sdl.SCANCODE_RETURN)}},
			want: input.Event{Kind: input.KindKeyUp, Scancode: input.ScancodeReturn, Repeat: true},
		},
		{
			name: "right button down",
			in:   &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 3, Y: 4},
			want: input.Event{Kind: input.KindMouseButtonDown, Button: input.ButtonRight, X: 3, Y: 4},
		},
		{
			name: "middle button up",
			in:   &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_MIDDLE},
			want: input.Event{Kind: input.KindMouseButtonUp, Button: input.ButtonMiddle},
		},
		{
			name: "wheel",
			in:   &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: -1, Y: 2},
			want: input.Event{Kind: input.KindMouseWheel, WheelX: -1, WheelY: 2},
		},
		{
			name: "flipped wheel",
			in:   &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)},
			want: input.Event{Kind: input.KindMouseWheel, WheelY: -1},
		},
		{
			name: "motion",
			in:   &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20},
			want: input.Event{Kind: input.KindMouseMotion, X: 10, Y: 20},
		},
		{
			name: "finger up",
			in:   &sdl.TouchFingerEvent{Type: sdl.FINGERUP, X: 0.5, Y: 0.25},
			want: input.Event{Kind: input.KindFingerUp, X: 0.5, Y: 0.25},
		},
		{
			name: "dollar record",
			in:   &sdl.DollarGestureEvent{Type: sdl.DOLLARRECORD},
			want: input.Event{Kind: input.KindDollarRecord},
		},
		{
			name: "quit",
			in:   &sdl.QuitEvent{Type: sdl.QUIT},
			want: input.Event{Kind: input.KindQuit},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertEvent(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertEventIgnoresOtherTypes(t *testing.T) {
	_, ok := ConvertEvent(&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONDOWN})
	assert.False(t, ok)
}

func TestConvertButtonUnknown(t *testing.T) {
	assert.Equal(t, input.ButtonUnknown, convertButton(0))
	assert.Equal(t, input.ButtonUnknown, convertButton(9))
}

func TestButtonsFromState(t *testing.T) {
	// left | right in SDL numbering
	state := uint32(1<<(sdl.BUTTON_LEFT-1) | 1<<(sdl.BUTTON_RIGHT-1))
	assert.Equal(t, input.Buttons{true, true, false, false, false}, buttonsFromState(state))
	assert.Equal(t, input.Buttons{}, buttonsFromState(0))
}

func TestSystemCursorTableComplete(t *testing.T) {
	for i, c := range systemCursors {
		if i != 0 {
			assert.NotEqual(t, systemCursors[0], c, "system cursor %d", i)
		}
	}
}
