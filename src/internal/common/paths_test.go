package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkspaceRoot(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("empty_uses_current", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		got, err := ResolveWorkspaceRoot("")
		require.NoError(t, err)
		assert.Equal(t, wd, got)
	})

	t.Run("absolute", func(t *testing.T) {
		got, err := ResolveWorkspaceRoot(tempDir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(tempDir), got)
	})

	t.Run("relative_dot", func(t *testing.T) {
		got, err := ResolveWorkspaceRoot(".")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("nonexistent", func(t *testing.T) {
		_, err := ResolveWorkspaceRoot(filepath.Join(tempDir, "missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("file_instead_of_dir", func(t *testing.T) {
		f := filepath.Join(tempDir, "f.txt")
		require.NoError(t, os.WriteFile(f, []byte("x"), 0644))
		_, err := ResolveWorkspaceRoot(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/a/b.yaml", filepath.Join(home, "a", "b.yaml")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
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
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/main.go")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "main.go"), got)

	got, err = ResolvePath("main.go")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
