package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInit(t *testing.T) {
	tests := []struct {
		format string
		decode func(t *testing.T, data []byte) map[string]any
	}{
		{
			format: "json",
			decode: func(t *testing.T, data []byte) map[string]any {
				var m map[string]any
				require.NoError(t, json.Unmarshal(data, &m))
				return m
			},
		},
		{
			format: "yaml",
			decode: func(t *testing.T, data []byte) map[string]any {
				var m map[string]any
				require.NoError(t, yaml.Unmarshal(data, &m))
				return m
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "imsdl."+tt.format)
			c := &ConfigInit{Command: "inspect", Format: tt.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			m := tt.decode(t, data)

			assert.Equal(t, "sdl3", m["backend"])
			assert.Equal(t, "16ms", m["frameInterval"])
			adapter, ok := m["adapter"].(map[string]any)
			require.True(t, ok, "adapter section")
			assert.Equal(t, true, adapter["captureOnDrag"])
			assert.Equal(t, "16666us", adapter["fallbackDeltaTime"])
			bindings, ok := adapter["keyBindings"].(map[string]any)
			require.True(t, ok, "keyBindings section")
			assert.Equal(t, "Return", bindings["Enter"])
			assert.Equal(t, "Tab", bindings["Tab"])
		})
	}
}

func TestConfigInitTOML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "imsdl.toml")
	require.NoError(t, (&ConfigInit{Command: "inspect", Format: "toml", Output: dest}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "captureOnDrag = true")
	assert.Contains(t, string(data), "[adapter]")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "imsdl.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	err := (&ConfigInit{Command: "inspect", Format: "json", Output: dest}).Run()
	assert.ErrorContains(t, err, "use --force")

	require.NoError(t, (&ConfigInit{Command: "inspect", Format: "json", Output: dest, Force: true}).Run())
}

func TestConfigInitUnsupportedFormat(t *testing.T) {
	err := (&ConfigInit{Command: "inspect", Format: "ini"}).Run()
	assert.ErrorContains(t, err, "unsupported format")
}
