package configpaths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("AppData", home)

	tests := []struct {
		name     string
		userPath string
		wantJSON string
		wantYAML string
		wantTOML string
	}{
		{name: "yaml", userPath: "my.yml", wantYAML: "my.yml"},
		{name: "toml", userPath: "my.toml", wantTOML: "my.toml"},
		{name: "unknown extension", userPath: "my.conf", wantJSON: "my.conf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, y, to := ConfigCandidatePaths(tt.userPath)
			first := func(p []string) string {
				require.NotEmpty(t, p)
				return p[0]
			}
			if tt.wantJSON != "" {
				assert.Equal(t, tt.wantJSON, first(j))
			}
			if tt.wantYAML != "" {
				assert.Equal(t, tt.wantYAML, first(y))
			}
			if tt.wantTOML != "" {
				assert.Equal(t, tt.wantTOML, first(to))
			}
		})
	}

	j, _, _ := ConfigCandidatePaths("")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Contains(t, j, filepath.Join(dir, "imsdl.json"))
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "imsdl.yaml")
	require.NoError(t, EnsureDir(p))
	assert.DirExists(t, filepath.Dir(p))
}
