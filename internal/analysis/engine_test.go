package analysis

import (
	"os"
	"path/filepath"
	"testing"

	serr "gxplorer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	d, err := New().Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", d.Name)
	assert.Equal(t, int64(11), d.Size)
	assert.Contains(t, d.ContentType, "text/plain")
	assert.False(t, d.IsDir)
	assert.Nil(t, d.Metadata)
}

func TestInspectDirectory(t *testing.T) {
	dir := t.TempDir()

	d, err := New().Inspect(dir)
	require.NoError(t, err)

	assert.True(t, d.IsDir)
	assert.Equal(t, "directory", d.ContentType)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := New().Inspect(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.True(t, serr.IsNotFound(err))
}

func TestInspectPNGDetectsImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	// Magic bytes are enough for detection, no decodable body needed.
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	require.NoError(t, os.WriteFile(path, png, 0o644))

	d, err := New().Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, "image/png", d.ContentType)
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	s, err := New().ScanDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 1, s.Dirs)
	assert.Equal(t, int64(9), s.TotalSize)

	text := s.ByType["text"]
	assert.Equal(t, 2, text.Count)
	assert.Equal(t, int64(9), text.Size)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := New().ScanDirectory(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.True(t, serr.IsNotFound(err))
}

func TestTypeGroup(t *testing.T) {
	assert.Equal(t, "text", typeGroup("text/plain; charset=utf-8"))
	assert.Equal(t, "image", typeGroup("image/png"))
	assert.Equal(t, "directory", typeGroup("directory"))
}
