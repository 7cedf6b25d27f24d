package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestListCSVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0750))

	files, err := ListCSVFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.CSV"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.csv"), files[1])
}

func TestListCSVFilesMissingDirectory(t *testing.T) {
	_, err := ListCSVFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
