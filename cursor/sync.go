package cursor

import (
	"errors"
	"fmt"
	"log/slog"
)

// Handle is a platform cursor resource. Release frees it; a released handle
// must not be used again.
type Handle interface {
	Release()
}

// Platform is the cursor subsystem of the windowing system.
type Platform interface {
	CreateSystemCursor(id System) (Handle, error)
	SetCursor(h Handle) error
	ShowCursor(show bool) error
}

type visibility uint8

const (
	visibilityUnknown visibility = iota
	visibilityShown
	visibilityHidden
)

// Synchronizer owns the platform cursor and updates it from the GUI's
// per-frame request. The platform cursor is replaced only when the requested
// kind differs from the one currently installed.
type Synchronizer struct {
	platform Platform
	logger   *slog.Logger

	shape   Kind
	handle  Handle
	visible visibility

	warned map[int]struct{}
}

// NewSynchronizer creates a Synchronizer. A nil logger discards logs.
func NewSynchronizer(p Platform, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Synchronizer{
		platform: p,
		logger:   logger,
		warned:   map[int]struct{}{},
	}
}

// Shape returns the kind currently applied to the platform, KindNone when the
// cursor is hidden or was never set.
func (s *Synchronizer) Shape() Kind { return s.shape }

// Sync applies the GUI's cursor request for this frame. drawOwn reports that
// the GUI renders its own cursor, code is the GUI cursor code.
//
// Unknown codes fall back to the arrow cursor. An error is returned only when
// the platform fails to create or install a cursor; the previously installed
// cursor stays in place in that case.
func (s *Synchronizer) Sync(drawOwn bool, code int) error {
	kind, err := KindFromCode(code)
	if err != nil {
		if _, seen := s.warned[code]; !seen {
			s.warned[code] = struct{}{}
			s.logger.Warn("falling back to arrow cursor", "error", err)
		}
		kind = KindArrow
	}

	if drawOwn || kind == KindNone {
		s.hide()
		return nil
	}

	s.show()
	if kind == s.shape {
		return nil
	}
	return s.install(kind)
}

func (s *Synchronizer) install(kind Kind) error {
	sys, err := SystemFor(kind)
	if err != nil {
		return err
	}
	h, err := s.platform.CreateSystemCursor(sys)
	if err != nil {
		return fmt.Errorf("cursor: create system cursor %s: %w", sys, err)
	}
	if h == nil {
		return fmt.Errorf("cursor: create system cursor %s: %w", sys, errors.New("platform returned no cursor"))
	}
	if err := s.platform.SetCursor(h); err != nil {
		h.Release()
		return fmt.Errorf("cursor: set system cursor %s: %w", sys, err)
	}

	prev := s.handle
	s.handle = h
	s.shape = kind
	if prev != nil {
		prev.Release()
	}
	s.logger.Debug("cursor changed", "kind", kind, "system", sys)
	return nil
}

func (s *Synchronizer) hide() {
	if s.visible != visibilityHidden {
		if err := s.platform.ShowCursor(false); err != nil {
			s.logger.Debug("hide cursor failed", "error", err)
		}
		s.visible = visibilityHidden
	}
	s.release()
}

func (s *Synchronizer) show() {
	if s.visible == visibilityShown {
		return
	}
	if err := s.platform.ShowCursor(true); err != nil {
		s.logger.Debug("show cursor failed", "error", err)
	}
	s.visible = visibilityShown
}

func (s *Synchronizer) release() {
	if s.handle != nil {
		s.handle.Release()
		s.handle = nil
	}
	s.shape = KindNone
}

// Close releases the owned platform cursor.
func (s *Synchronizer) Close() {
	s.release()
}
