// Package clipboard bridges the GUI library's clipboard hooks to the platform
// clipboard.
//
// Clipboard access is best-effort: GUI text widgets treat "no text" as a
// no-op paste, so the bridge never reports platform failures to the GUI.
package clipboard

import (
	"log/slog"
)

// Backend is the platform clipboard.
type Backend interface {
	// HasClipboardText reports whether the clipboard currently holds text.
	HasClipboardText() bool
	// ClipboardText returns the clipboard text.
	ClipboardText() (string, error)
	// SetClipboardText replaces the clipboard contents with text.
	SetClipboardText(text string) error
}

// Clipboard is the capability handed to the GUI library.
type Clipboard interface {
	// Text returns the clipboard text, or false when there is none.
	Text() (string, bool)
	// SetText copies text to the clipboard.
	SetText(text string)
}

// Bridge implements Clipboard on top of a Backend.
type Bridge struct {
	backend Backend
	logger  *slog.Logger
}

var _ Clipboard = (*Bridge)(nil)

// New creates a Bridge. A nil logger discards failure logs.
func New(backend Backend, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{backend: backend, logger: logger}
}

// Text returns the clipboard text. It returns false when the clipboard is
// empty, holds no text, or the platform call fails.
func (b *Bridge) Text() (string, bool) {
	if b.backend == nil || !b.backend.HasClipboardText() {
		return "", false
	}
	text, err := b.backend.ClipboardText()
	if err != nil {
		b.logger.Debug("clipboard read failed", "error", err)
		return "", false
	}
	if text == "" {
		return "", false
	}
	return text, true
}

// SetText copies text to the clipboard. Failures are logged and dropped.
func (b *Bridge) SetText(text string) {
	if b.backend == nil {
		return
	}
	if err := b.backend.SetClipboardText(text); err != nil {
		b.logger.Debug("clipboard write failed", "error", err, "len", len(text))
	}
}
