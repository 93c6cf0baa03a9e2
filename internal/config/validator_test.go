package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:       "empty source dir",
			mutate:     func(c *Config) { c.SourceDir = "" },
			wantFields: []string{"sourceDir"},
		},
		{
			name:       "absolute source dir",
			mutate:     func(c *Config) { c.SourceDir = "/src" },
			wantFields: []string{"sourceDir"},
		},
		{
			name:       "escaping source dir",
			mutate:     func(c *Config) { c.SourceDir = "../other/src" },
			wantFields: []string{"sourceDir"},
		},
		{
			name:       "no container dirs",
			mutate:     func(c *Config) { c.ContainerDirs = nil },
			wantFields: []string{"containerDirs"},
		},
		{
			name:       "nested container dir",
			mutate:     func(c *Config) { c.ContainerDirs = []string{"features", "a/b"} },
			wantFields: []string{"containerDirs[1]"},
		},
		{
			name:       "no tsconfig files",
			mutate:     func(c *Config) { c.TsconfigFiles = []string{} },
			wantFields: []string{"tsconfigFiles"},
		},
		{
			name: "multiple problems",
			mutate: func(c *Config) {
				c.SourceDir = ""
				c.TsconfigFiles = []string{" "}
			},
			wantFields: []string{"sourceDir", "tsconfigFiles[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~", homeDir},
		{"~/templates", filepath.Join(homeDir, "templates")},
		{"~username/file", "~username/file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolvePath(t *testing.T) {
	got, err := ResolvePath("/project", ".templates")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/project", ".templates"), got)

	got, err = ResolvePath("/project", "/opt/templates/")
	require.NoError(t, err)
	assert.Equal(t, "/opt/templates", got)

	got, err = ResolvePath("/project", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
