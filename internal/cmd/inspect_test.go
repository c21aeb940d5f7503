package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/imsdl"
	"github.com/Alia5/imsdl/cursor"
	"github.com/Alia5/imsdl/input"
	"github.com/Alia5/imsdl/internal/log"
	imsdlTesting "github.com/Alia5/imsdl/internal/testing"
)

// scriptedBackend returns one batch of events per poll.
type scriptedBackend struct {
	imsdlTesting.Platform
	imsdlTesting.Window

	batches [][]input.Event
	polls   int
	closed  bool
}

func (b *scriptedBackend) PollEvents(fn func(input.Event)) {
	if b.polls < len(b.batches) {
		for _, ev := range b.batches[b.polls] {
			fn(ev)
		}
	}
	b.polls++
}

func (b *scriptedBackend) Close() error {
	b.closed = true
	return nil
}

type recordedTrace struct {
	ignored []bool
	events  []input.Event
}

func (r *recordedTrace) Log(ignored bool, ev input.Event) {
	r.ignored = append(r.ignored, ignored)
	r.events = append(r.events, ev)
}

func newInspect() *Inspect {
	return &Inspect{
		Cursor:        "arrow",
		FrameInterval: time.Millisecond,
		Adapter:       imsdl.DefaultConfig(),
	}
}

func TestInspectStopsOnFrameLimit(t *testing.T) {
	b := &scriptedBackend{}
	c := newInspect()
	c.Frames = 3

	require.NoError(t, c.run(context.Background(), b, slog.New(slog.DiscardHandler), &recordedTrace{}))
	assert.Equal(t, 3, b.polls)
}

func TestInspectStopsOnQuit(t *testing.T) {
	b := &scriptedBackend{batches: [][]input.Event{
		nil,
		{{Kind: input.KindQuit}},
	}}
	tr := &recordedTrace{}

	require.NoError(t, newInspect().run(context.Background(), b, slog.New(slog.DiscardHandler), tr))
	assert.Equal(t, 2, b.polls)
	require.Len(t, tr.events, 1)
	assert.Equal(t, input.KindQuit, tr.events[0].Kind)
}

func TestInspectRoutesWithOneFrameLag(t *testing.T) {
	key := input.Event{Kind: input.KindKeyDown, Scancode: input.ScancodeA}
	b := &scriptedBackend{batches: [][]input.Event{
		{key},
		{key, {Kind: input.KindMouseMotion}},
	}}
	tr := &recordedTrace{}
	c := newInspect()
	c.Frames = 2
	c.CaptureKeyboard = true

	require.NoError(t, c.run(context.Background(), b, slog.New(slog.DiscardHandler), tr))
	assert.Equal(t, []bool{false, true, false}, tr.ignored)
}

func TestInspectCursorAndClipboard(t *testing.T) {
	b := &scriptedBackend{}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	c := newInspect()
	c.Frames = 2
	c.Cursor = "hand"
	c.Clipboard = "copied"

	require.NoError(t, c.run(context.Background(), b, logger, &recordedTrace{}))

	require.Len(t, b.Created, 1)
	assert.Equal(t, cursor.SystemHand, b.Created[0].System)
	assert.True(t, b.Created[0].Released, "cursor released on exit")
	assert.Equal(t, "copied", b.Contents)
	assert.Contains(t, logs.String(), "text=copied")
}

func TestInspectLogsFramesAtTrace(t *testing.T) {
	b := &scriptedBackend{batches: [][]input.Event{{{Kind: input.KindTextInput, Text: "q"}}}}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: log.LevelTrace}))
	c := newInspect()
	c.Frames = 1

	require.NoError(t, c.run(context.Background(), b, logger, log.NewEventTrace(nil)))
	assert.True(t, strings.Contains(logs.String(), "input.text=q"), logs.String())
}

func TestInspectRejectsBadConfig(t *testing.T) {
	c := newInspect()
	c.Adapter.KeyBindings = map[string]string{"Nope": "A"}
	err := c.run(context.Background(), &scriptedBackend{}, slog.New(slog.DiscardHandler), &recordedTrace{})
	assert.ErrorContains(t, err, "invalid adapter config")

	c = newInspect()
	c.Cursor = "spinner"
	err = c.run(context.Background(), &scriptedBackend{}, slog.New(slog.DiscardHandler), &recordedTrace{})
	assert.ErrorIs(t, err, cursor.ErrUnsupportedCursorKind)
}

func TestInspectStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := &scriptedBackend{}
	c := newInspect()
	c.FrameInterval = time.Hour

	require.NoError(t, c.run(ctx, b, slog.New(slog.DiscardHandler), &recordedTrace{}))
	assert.Equal(t, 1, b.polls)
}

func TestOpenBackendUnknown(t *testing.T) {
	_, err := openBackend("sdl1")
	assert.ErrorContains(t, err, `unknown backend "sdl1"`)
}
