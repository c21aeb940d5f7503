package imsdl

import (
	"github.com/Alia5/imsdl/input"
)

// PrepareFrame writes this frame's input snapshot into io: display metrics,
// merged button state, pointer position and frame delta time.
//
// Buttons are the OR of the polled state and the presses latched by
// HandleEvent since the last frame, so a click released before the poll is
// still seen as down for one frame.
func (a *Adapter) PrepareFrame(io IO, metrics input.WindowMetrics, pointer input.PointerState) {
	io.SetDisplaySize(float32(metrics.Width), float32(metrics.Height))
	if sx, sy, ok := metrics.FramebufferScale(); ok {
		io.SetDisplayFramebufferScale(sx, sy)
	}

	var down input.Buttons
	for i := range down {
		down[i] = a.pendingPress[i] || pointer.Buttons[i]
	}
	io.SetMouseDown(down)
	a.pendingPress = input.Buttons{}

	if a.config.CaptureOnDrag {
		a.requestCapture(down.Any())
	}

	io.SetMousePos(pointer.X, pointer.Y)

	now := a.now()
	delta := now.Sub(a.lastFrame)
	a.lastFrame = now
	if delta <= 0 {
		delta = a.config.FallbackDeltaTime
	}
	io.SetDeltaTime(float32(delta.Seconds()))
}

// UpdateCapture records the GUI's capture decision for the frame that just
// ran. IgnoreEvent uses it for the next batch of events.
func (a *Adapter) UpdateCapture(io IO) {
	a.ignoreKeyboard = io.WantCaptureKeyboard()
	a.ignoreMouse = io.WantCaptureMouse()
}

// Frame polls win, prepares the snapshot, runs the GUI's NewFrame and
// records its capture decision. It returns the GUI's frame handle.
func Frame[F any](a *Adapter, gui Context[F], win Window) F {
	io := gui.IO()
	a.PrepareFrame(io, win.Metrics(), win.PointerState())
	f := gui.NewFrame()
	a.UpdateCapture(io)
	return f
}

// PrepareRender applies the cursor the GUI requested while building the
// frame. Call it after the UI is built and before rendering. The returned
// error reports that the platform could not create or install a cursor.
func (a *Adapter) PrepareRender(io IO) error {
	return a.cursor.Sync(io.MouseDrawCursor(), io.MouseCursor())
}

func (a *Adapter) requestCapture(capture bool) {
	if capture == a.mouseCaptured {
		return
	}
	a.mouseCaptured = capture
	if err := a.platform.CaptureMouse(capture); err != nil {
		a.logger.Debug("mouse capture request failed", "capture", capture, "error", err)
	}
}
