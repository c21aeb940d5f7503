package input

// MouseButton identifies a pointer button. The zero value is ButtonUnknown so
// that events from unrecognized buttons are ignored rather than misrouted.
type MouseButton uint8

const (
	ButtonUnknown MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	ButtonX1 // Back
	ButtonX2 // Forward
)

// ButtonCount is the number of buttons tracked per frame.
const ButtonCount = 5

// Index returns the slot of b in a [ButtonCount] array: 0=Left, 1=Right,
// 2=Middle, 3=X1, 4=X2. ok is false for ButtonUnknown or out-of-range values.
func (b MouseButton) Index() (idx int, ok bool) {
	if b == ButtonUnknown || b > ButtonX2 {
		return 0, false
	}
	return int(b) - 1, true
}

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "unknown"
	}
}

// Buttons holds the down state of the five tracked buttons, indexed as by
// MouseButton.Index.
type Buttons [ButtonCount]bool

// ButtonsFromMask decodes a bitfield where bit 0=Left, 1=Right, 2=Middle,
// 3=X1, 4=X2. Upper bits are ignored.
func ButtonsFromMask(mask uint8) Buttons {
	var b Buttons
	for i := range b {
		b[i] = mask&(1<<uint(i)) != 0
	}
	return b
}

// Mask encodes b into the bitfield understood by ButtonsFromMask.
func (b Buttons) Mask() uint8 {
	var m uint8
	for i, down := range b {
		if down {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Any reports whether at least one button is down.
func (b Buttons) Any() bool {
	for _, down := range b {
		if down {
			return true
		}
	}
	return false
}

// PointerState is the result of polling the platform for the current pointer
// position and button state.
type PointerState struct {
	X, Y    float32
	Buttons Buttons
}

// WindowMetrics describes the window the GUI is rendered into. Size is in
// logical (window) units, DrawableSize in physical pixels.
type WindowMetrics struct {
	Width, Height                 int32
	DrawableWidth, DrawableHeight int32
}

// FramebufferScale returns drawable size divided by logical size per axis.
// ok is false when either logical dimension is zero, e.g. while the window
// is minimized.
func (m WindowMetrics) FramebufferScale() (sx, sy float32, ok bool) {
	if m.Width <= 0 || m.Height <= 0 {
		return 0, 0, false
	}
	return float32(m.DrawableWidth) / float32(m.Width), float32(m.DrawableHeight) / float32(m.Height), true
}
