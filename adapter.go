// Package imsdl feeds platform input into an immediate-mode GUI library and
// tells the host which input the GUI consumed.
//
// Each frame the host:
//
//  1. polls platform events, converts them to input.Event, asks IgnoreEvent
//     whether the application should see them, and passes every event to
//     HandleEvent;
//  2. calls Frame (or PrepareFrame, the GUI's NewFrame and UpdateCapture);
//  3. builds its UI, then calls PrepareRender before submitting draw lists.
//
// All methods must be called from the thread that owns the window and GUI
// context.
package imsdl

import (
	"log/slog"
	"time"

	"github.com/Alia5/imsdl/clipboard"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
	"github.com/Alia5/imsdl/keymap"
)

// Adapter holds the input state that outlives a single frame.
type Adapter struct {
	config   Config
	logger   *slog.Logger
	platform Platform
	now      func() time.Time

	keyMap    keymap.KeyMap
	clipboard *clipboard.Bridge
	cursor    *cursor.Synchronizer

	// pendingPress latches button-down events until the next frame merge.
	pendingPress input.Buttons

	ignoreKeyboard bool
	ignoreMouse    bool

	mouseCaptured bool
	lastFrame     time.Time
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithClock replaces time.Now as the frame timing source.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// New creates an Adapter and registers its key map and clipboard with io.
func New(io IO, p Platform, config Config, logger *slog.Logger, opts ...Option) (*Adapter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	km, err := keymap.New(config.KeyBindings)
	if err != nil {
		return nil, err
	}
	if config.FallbackDeltaTime <= 0 {
		config.FallbackDeltaTime = DefaultConfig().FallbackDeltaTime
	}

	a := &Adapter{
		config:    config,
		logger:    logger,
		platform:  p,
		now:       time.Now,
		keyMap:    km,
		clipboard: clipboard.New(p, logger),
		cursor:    cursor.NewSynchronizer(p, logger),
	}
	for _, o := range opts {
		o(a)
	}
	a.lastFrame = a.now()

	io.SetKeyMap(a.keyMap)
	io.SetClipboard(a.clipboard)
	logger.Debug("input adapter ready", "keys", km.Len(), "captureOnDrag", config.CaptureOnDrag)
	return a, nil
}

// KeyMap returns the key map registered with the GUI.
func (a *Adapter) KeyMap() keymap.KeyMap { return a.keyMap }

// Clipboard returns the clipboard bridge registered with the GUI.
func (a *Adapter) Clipboard() clipboard.Clipboard { return a.clipboard }

// CursorShape returns the cursor kind currently applied to the platform.
func (a *Adapter) CursorShape() cursor.Kind { return a.cursor.Shape() }

// Close releases the platform cursor and any mouse capture.
func (a *Adapter) Close() {
	a.cursor.Close()
	if a.mouseCaptured {
		a.requestCapture(false)
	}
}
