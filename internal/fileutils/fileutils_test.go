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

	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
	assert.False(t, DirectoryExists(path), "files are not directories")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, EnsureDirectoryExists(nested))
	assert.True(t, DirectoryExists(nested))

	// Calling again on an existing directory is a no-op.
	assert.NoError(t, EnsureDirectoryExists(nested))
}

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out", "report.txt")
	require.NoError(t, WriteFile(path, []byte("report body"), 0600))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(content))
}

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out", "enriched.txt")
	f, err := CreateFile(path)
	require.NoError(t, err)

	_, err = f.WriteString("header\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.True(t, FileExists(path))
}
