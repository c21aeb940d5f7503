package cursor_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/imsdl/cursor"
	imsdlTesting "github.com/Alia5/imsdl/internal/testing"
)

func TestKindFromCode(t *testing.T) {
	tests := []struct {
		code   int
		kind   cursor.Kind
		system cursor.System
	}{
		{cursor.CodeArrow, cursor.KindArrow, cursor.SystemArrow},
		{cursor.CodeTextInput, cursor.KindTextInput, cursor.SystemIBeam},
		{cursor.CodeResizeAll, cursor.KindResizeAll, cursor.SystemSizeAll},
		{cursor.CodeResizeNS, cursor.KindResizeNS, cursor.SystemSizeNS},
		{cursor.CodeResizeEW, cursor.KindResizeEW, cursor.SystemSizeWE},
		{cursor.CodeResizeNESW, cursor.KindResizeNESW, cursor.SystemSizeNESW},
		{cursor.CodeResizeNWSE, cursor.KindResizeNWSE, cursor.SystemSizeNWSE},
		{cursor.CodeHand, cursor.KindHand, cursor.SystemHand},
		{cursor.CodeNotAllowed, cursor.KindNotAllowed, cursor.SystemNo},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			kind, err := cursor.KindFromCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.code, kind.Code())

			sys, err := cursor.SystemFor(kind)
			require.NoError(t, err)
			assert.Equal(t, tt.system, sys)
		})
	}
}

func TestKindFromCodeUnsupported(t *testing.T) {
	for _, code := range []int{-2, 9, 255} {
		_, err := cursor.KindFromCode(code)
		assert.ErrorIs(t, err, cursor.ErrUnsupportedCursorKind)
	}

	kind, err := cursor.KindFromCode(cursor.CodeNone)
	require.NoError(t, err)
	assert.Equal(t, cursor.KindNone, kind)

	_, err = cursor.SystemFor(cursor.KindNone)
	assert.ErrorIs(t, err, cursor.ErrUnsupportedCursorKind)
}

func TestParseKind(t *testing.T) {
	k, err := cursor.ParseKind("Resize-NWSE")
	require.NoError(t, err)
	assert.Equal(t, cursor.KindResizeNWSE, k)

	_, err = cursor.ParseKind("crosshair")
	assert.ErrorIs(t, err, cursor.ErrUnsupportedCursorKind)
}

func TestSyncSameShapeSetsOnce(t *testing.T) {
	p := &imsdlTesting.Platform{}
	s := cursor.NewSynchronizer(p, nil)

	require.NoError(t, s.Sync(false, cursor.CodeTextInput))
	require.NoError(t, s.Sync(false, cursor.CodeTextInput))

	assert.Len(t, p.Created, 1)
	assert.Len(t, p.Set, 1)
	assert.Equal(t, []bool{true}, p.Shown)
	assert.Equal(t, cursor.KindTextInput, s.Shape())
}

func TestSyncReplacesAndReleases(t *testing.T) {
	p := &imsdlTesting.Platform{}
	s := cursor.NewSynchronizer(p, nil)

	require.NoError(t, s.Sync(false, cursor.CodeArrow))
	require.NoError(t, s.Sync(false, cursor.CodeHand))

	require.Len(t, p.Created, 2)
	assert.True(t, p.Created[0].Released, "previous cursor must be released")
	assert.False(t, p.Created[1].Released)
	assert.Equal(t, cursor.SystemHand, p.Current().System)
	assert.Equal(t, cursor.KindHand, s.Shape())

	s.Close()
	assert.True(t, p.Created[1].Released)
	assert.Equal(t, cursor.KindNone, s.Shape())
}

func TestSyncHide(t *testing.T) {
	tests := []struct {
		name    string
		drawOwn bool
		code    int
	}{
		{name: "none requested", code: cursor.CodeNone},
		{name: "gui draws own cursor", drawOwn: true, code: cursor.CodeArrow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &imsdlTesting.Platform{}
			s := cursor.NewSynchronizer(p, nil)

			require.NoError(t, s.Sync(false, cursor.CodeArrow))
			require.NoError(t, s.Sync(tt.drawOwn, tt.code))
			require.NoError(t, s.Sync(tt.drawOwn, tt.code))

			assert.Equal(t, []bool{true, false}, p.Shown)
			assert.True(t, p.Created[0].Released)
			assert.Equal(t, cursor.KindNone, s.Shape())

			// Showing again re-creates the cursor because the shape was cleared.
			require.NoError(t, s.Sync(false, cursor.CodeArrow))
			assert.Equal(t, []bool{true, false, true}, p.Shown)
			assert.Len(t, p.Created, 2)
		})
	}
}

func TestSyncUnsupportedFallsBackToArrow(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := &imsdlTesting.Platform{}
	s := cursor.NewSynchronizer(p, logger)

	require.NoError(t, s.Sync(false, 42))
	require.NoError(t, s.Sync(false, 42))

	require.Len(t, p.Created, 1)
	assert.Equal(t, cursor.SystemArrow, p.Created[0].System)
	assert.Equal(t, cursor.KindArrow, s.Shape())
	assert.Equal(t, 1, strings.Count(buf.String(), "falling back to arrow cursor"))
}

func TestSyncCreateFailure(t *testing.T) {
	p := &imsdlTesting.Platform{}
	s := cursor.NewSynchronizer(p, nil)
	require.NoError(t, s.Sync(false, cursor.CodeArrow))

	p.CreateErr = imsdlTesting.ErrNoCursors
	err := s.Sync(false, cursor.CodeHand)
	require.ErrorIs(t, err, imsdlTesting.ErrNoCursors)
	assert.Contains(t, err.Error(), "create system cursor hand")

	assert.Equal(t, cursor.KindArrow, s.Shape(), "previous cursor stays installed")
	assert.False(t, p.Created[0].Released)
}

func TestSyncSetFailureReleasesNewCursor(t *testing.T) {
	p := &imsdlTesting.Platform{SetErr: errors.New("no window")}
	s := cursor.NewSynchronizer(p, nil)

	err := s.Sync(false, cursor.CodeArrow)
	require.Error(t, err)
	require.Len(t, p.Created, 1)
	assert.True(t, p.Created[0].Released)
	assert.Equal(t, cursor.KindNone, s.Shape())
}
