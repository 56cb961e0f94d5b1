// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"path/filepath"
	"testing"

	"github.com/conneroisu/expressor/internal/artifact"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateProjectFs returns an in-memory file system holding the directory
// layout of a freshly created project at root.
func CreateProjectFs(t *testing.T, root string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for _, k := range artifact.Kinds() {
		require.NoError(t, fsys.MkdirAll(filepath.Join(root, k.Dir()), 0o755))
	}

	return fsys
}

// ReadFile returns the contents of path or fails the test.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)

	return string(data)
}

// WriteFile creates path and its parent directories with content.
func WriteFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}
