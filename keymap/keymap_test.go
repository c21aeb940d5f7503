package keymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/imsdl/input"
	"github.com/Alia5/imsdl/keymap"
)

func TestDefault(t *testing.T) {
	km := keymap.Default()
	assert.Equal(t, int(keymap.KeyCount), km.Len())

	tests := []struct {
		key  keymap.Key
		want input.Scancode
	}{
		{keymap.KeyTab, input.ScancodeTab},
		{keymap.KeyLeftArrow, input.ScancodeLeft},
		{keymap.KeyRightArrow, input.ScancodeRight},
		{keymap.KeyUpArrow, input.ScancodeUp},
		{keymap.KeyDownArrow, input.ScancodeDown},
		{keymap.KeyEnter, input.ScancodeReturn},
		{keymap.KeyKeypadEnter, input.ScancodeKpEnter},
		{keymap.KeyEscape, input.ScancodeEscape},
		{keymap.KeyA, input.ScancodeA},
		{keymap.KeyZ, input.ScancodeZ},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			sc, ok := km.Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, sc)
		})
	}

	_, ok := km.Lookup(keymap.KeyCount)
	assert.False(t, ok)
}

func TestEachVisitsAllKeysInOrder(t *testing.T) {
	var keys []keymap.Key
	keymap.Default().Each(func(k keymap.Key, sc input.Scancode) {
		assert.True(t, sc.Valid(), "key %s has no scancode", k)
		keys = append(keys, k)
	})
	require.Len(t, keys, int(keymap.KeyCount))
	for i, k := range keys {
		assert.Equal(t, keymap.Key(i), k)
	}
}

func TestNewOverrides(t *testing.T) {
	km, err := keymap.New(map[string]string{
		"enter": "KP_Enter",
		"Tab":   "0x39",
	})
	require.NoError(t, err)

	sc, _ := km.Lookup(keymap.KeyEnter)
	assert.Equal(t, input.ScancodeKpEnter, sc)
	sc, _ = km.Lookup(keymap.KeyTab)
	assert.Equal(t, input.ScancodeCapsLock, sc)
	sc, _ = km.Lookup(keymap.KeyEscape)
	assert.Equal(t, input.ScancodeEscape, sc)

	// The default table is a value and is not affected by overrides.
	sc, _ = keymap.Default().Lookup(keymap.KeyEnter)
	assert.Equal(t, input.ScancodeReturn, sc)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		errMsg   string
	}{
		{
			name:     "unknown key",
			bindings: map[string]string{"Hyper": "A"},
			errMsg:   `unknown key "Hyper"`,
		},
		{
			name:     "unknown scancode",
			bindings: map[string]string{"Enter": "Bogus"},
			errMsg:   `binding for Enter: unknown scancode "Bogus"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := keymap.New(tt.bindings)
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}
