package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Alia5/imsdl"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
	"github.com/Alia5/imsdl/internal/log"
	"github.com/Alia5/imsdl/platform/sdl2"
	"github.com/Alia5/imsdl/platform/sdl3"
	"github.com/Alia5/imsdl/snapshot"
)

// Inspect runs the adapter against a window with no GUI behind it. The
// pretend GUI's capture and cursor requests come from flags, so routing and
// cursor handling can be observed from the logs and the event trace.
type Inspect struct {
	Backend         string        `help:"Platform backend" enum:"sdl2,sdl3" default:"sdl3" env:"IMSDL_BACKEND"`
	CaptureKeyboard bool          `help:"Pretend the GUI wants keyboard input" env:"IMSDL_CAPTURE_KEYBOARD"`
	CaptureMouse    bool          `help:"Pretend the GUI wants mouse input" env:"IMSDL_CAPTURE_MOUSE"`
	Cursor          string        `help:"Cursor the pretend GUI requests" enum:"none,arrow,text,resize-all,resize-ns,resize-ew,resize-nesw,resize-nwse,hand,not-allowed" default:"arrow" env:"IMSDL_CURSOR"`
	DrawCursor      bool          `help:"Pretend the GUI draws its own cursor" env:"IMSDL_DRAW_CURSOR"`
	Clipboard       string        `help:"Text to place on the clipboard at startup"`
	Frames          uint64        `help:"Stop after this many frames, 0 runs until the window is closed" default:"0"`
	FrameInterval   time.Duration `help:"Time between frames" default:"16ms" env:"IMSDL_FRAME_INTERVAL"`
	Adapter         imsdl.Config  `embed:"" prefix:"adapter."`
}

type backend interface {
	imsdl.Platform
	imsdl.Window
	PollEvents(fn func(input.Event))
	Close() error
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(logger *slog.Logger, trace log.EventTrace) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	b, err := openBackend(c.Backend)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Debug("backend close failed", "error", err)
		}
	}()
	logger.Info("Inspecting input", "backend", c.Backend)
	return c.run(ctx, b, logger, trace)
}

func openBackend(name string) (backend, error) {
	switch name {
	case "sdl2":
		b, err := sdl2.Open("imsdl inspect", 1280, 720)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "sdl3":
		b, err := sdl3.Open("imsdl inspect")
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func (c *Inspect) run(ctx context.Context, b backend, logger *slog.Logger, trace log.EventTrace) error {
	kind, err := cursor.ParseKind(c.Cursor)
	if err != nil {
		return err
	}

	gui := snapshot.NewRecorder()
	gui.Cursor = kind.Code()
	gui.DrawCursor = c.DrawCursor

	a, err := imsdl.New(gui, b, c.Adapter, logger)
	if err != nil {
		return fmt.Errorf("invalid adapter config: %w", err)
	}
	defer a.Close()

	if c.Clipboard != "" {
		gui.Clipboard().SetText(c.Clipboard)
	}
	if text, ok := gui.Clipboard().Text(); ok {
		logger.Info("Clipboard", "text", text)
	}

	interval := c.FrameInterval
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := uint64(0); c.Frames == 0 || n < c.Frames; n++ {
		quit := false
		b.PollEvents(func(ev input.Event) {
			if ev.Kind == input.KindQuit {
				quit = true
			}
			trace.Log(a.IgnoreEvent(ev), ev)
			a.HandleEvent(gui, ev)
		})
		if quit {
			logger.Info("Window closed")
			return nil
		}

		gui.WantKeyboard = c.CaptureKeyboard
		gui.WantMouse = c.CaptureMouse
		f := imsdl.Frame[snapshot.Frame](a, gui, b)
		logger.Log(ctx, log.LevelTrace, "Frame", "input", f)

		if err := a.PrepareRender(gui); err != nil {
			logger.Warn("Cursor update failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	logger.Info("Frame limit reached", "frames", c.Frames)
	return nil
}
