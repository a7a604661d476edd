package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "favicon.svg"), []byte("<svg/>"), 0644))

	fsys, err := NewOS(tmpDir)
	require.NoError(t, err)

	content, err := afero.ReadFile(fsys, "favicon.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))

	_, err = NewOS(filepath.Join(tmpDir, "favicon.svg"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = NewOS(filepath.Join(tmpDir, "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestCopyFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, afero.WriteFile(fsys, "node_modules/jquery/dist/jquery.min.js", []byte("jq"), 0644))

		n, err := CopyFile(fsys, "node_modules/jquery/dist/jquery.min.js", "assets/js/jquery.min.js")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		content, err := afero.ReadFile(fsys, "assets/js/jquery.min.js")
		require.NoError(t, err)
		assert.Equal(t, "jq", string(content))
	})

	t.Run("overwrites existing destination", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, afero.WriteFile(fsys, "src.css", []byte("new"), 0644))
		require.NoError(t, afero.WriteFile(fsys, "assets/css/src.css", []byte("old and longer"), 0644))

		_, err := CopyFile(fsys, "src.css", "assets/css/src.css")
		require.NoError(t, err)

		content, err := afero.ReadFile(fsys, "assets/css/src.css")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("keeps binary content intact", func(t *testing.T) {
		fsys := NewMemory()
		payload := []byte{0x00, 0xff, 0x10, '\n', '\r', 0x00}
		require.NoError(t, afero.WriteFile(fsys, "blob.map", payload, 0644))

		_, err := CopyFile(fsys, "blob.map", "assets/blob.map")
		require.NoError(t, err)

		content, err := afero.ReadFile(fsys, "assets/blob.map")
		require.NoError(t, err)
		assert.Equal(t, payload, content)
	})

	t.Run("copying onto itself is a no-op", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, afero.WriteFile(fsys, "assets/a.css", []byte("a"), 0644))

		_, err := CopyFile(fsys, "assets/a.css", "./assets/a.css")
		require.NoError(t, err)

		content, err := afero.ReadFile(fsys, "assets/a.css")
		require.NoError(t, err)
		assert.Equal(t, "a", string(content))
	})

	t.Run("missing source is an IO error", func(t *testing.T) {
		fsys := NewMemory()

		_, err := CopyFile(fsys, "nope.js", "assets/nope.js")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		assert.Equal(t, "nope.js", errors.GetErrorDetails(err)["source"])
	})

	t.Run("directory source is rejected", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, fsys.MkdirAll("node_modules", 0755))

		_, err := CopyFile(fsys, "node_modules", "assets/node_modules")
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	})

	t.Run("destination parent blocked by a file", func(t *testing.T) {
		fsys, err := NewOS(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fsys, "a.js", []byte("a"), 0644))
		require.NoError(t, afero.WriteFile(fsys, "assets", []byte("not a dir"), 0644))

		_, err = CopyFile(fsys, "a.js", "assets/js/a.js")
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	})
}

func TestCopyFile_OSPermissions(t *testing.T) {
	tmpDir := t.TempDir()
	fsys, err := NewOS(tmpDir)
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fsys, "run.sh", []byte("#!/bin/sh\n"), 0755))

	_, err = CopyFile(fsys, "run.sh", "assets/run.sh")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(tmpDir, "assets", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}
