package imsdl

import "time"

// Config tunes the adapter. Zero values are not meaningful defaults; start
// from DefaultConfig or let kong fill the defaults.
type Config struct {
	CaptureOnDrag     bool              `help:"Capture the mouse globally while a button is held so drags keep reporting outside the window" default:"true" env:"IMSDL_CAPTURE_ON_DRAG"`
	FallbackDeltaTime time.Duration     `help:"Frame delta reported when the clock did not advance since the previous frame" default:"16666us" env:"IMSDL_FALLBACK_DELTA_TIME"`
	KeyBindings       map[string]string `help:"Key map overrides as GuiKey=Scancode pairs, e.g. Enter=KP_Enter" env:"IMSDL_KEY_BINDINGS"`
}

// DefaultConfig returns the configuration kong produces with no flags set.
func DefaultConfig() Config {
	return Config{
		CaptureOnDrag:     true,
		FallbackDeltaTime: time.Second / 60,
	}
}
