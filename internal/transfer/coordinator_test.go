package transfer_test

import (
	"os"
	"path/filepath"
	"testing"

	"gxplorer/internal/errors"
	"gxplorer/internal/transfer"
	"gxplorer/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func yes(string) bool { return true }
func no(string) bool  { return false }

func TestCopyIsNonDestructive(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "hello")

	c := transfer.New(nil)
	results := c.Copy([]string{filepath.Join(src, "a.txt")}, dest)

	require.Len(t, results, 1)
	assert.True(t, results[0].Done)
	assert.NoError(t, results[0].Error)

	// Source remains and the copy carries identical bytes
	assert.True(t, exists(filepath.Join(src, "a.txt")))
	assert.Equal(t, "hello", readFile(t, filepath.Join(dest, "a.txt")))
}

func TestCopyMixedFileAndDirectory(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "b", "nested", "deep.txt"), "deep")
	writeFile(t, filepath.Join(src, "b", "top.txt"), "top")

	c := transfer.New(nil)
	results := c.Copy([]string{
		filepath.Join(src, "a.txt"),
		filepath.Join(src, "b"),
	}, dest)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Done, "item %s", r.Source)
	}

	// The whole subtree is duplicated and both sources remain
	assert.Equal(t, "a", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Equal(t, "deep", readFile(t, filepath.Join(dest, "b", "nested", "deep.txt")))
	assert.Equal(t, "top", readFile(t, filepath.Join(dest, "b", "top.txt")))
	assert.True(t, exists(filepath.Join(src, "a.txt")))
	assert.True(t, exists(filepath.Join(src, "b", "nested", "deep.txt")))
}

func TestCopyBatchIsolatesFailures(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "good.txt"), "ok")

	c := transfer.New(nil)
	results := c.Copy([]string{
		filepath.Join(src, "missing.txt"),
		filepath.Join(src, "good.txt"),
	}, dest)

	require.Len(t, results, 2)

	// The failing item reports its error and the rest still runs
	assert.Error(t, results[0].Error)
	assert.True(t, errors.IsNotFound(results[0].Error))
	assert.True(t, results[1].Done)
	assert.Equal(t, "ok", readFile(t, filepath.Join(dest, "good.txt")))
}

func TestCopyOntoItselfLeavesSourceIntact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "precious data")

	// Both panes on the same directory: destination resolves to the source
	c := transfer.New(nil)
	results := c.Copy([]string{filepath.Join(dir, "a.txt")}, dir)

	require.Len(t, results, 1)
	assert.False(t, results[0].Done)
	assert.True(t, errors.IsAlreadyExists(results[0].Error))
	assert.Equal(t, "precious data", readFile(t, filepath.Join(dir, "a.txt")))
}

func TestCopyDirectoryOntoItselfLeavesContentsIntact(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "docs")
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")
	writeFile(t, filepath.Join(src, "nested", "b.txt"), "beta")

	c := transfer.New(nil)
	results := c.Copy([]string{src}, parent)

	require.Len(t, results, 1)
	assert.False(t, results[0].Done)
	assert.Error(t, results[0].Error)
	assert.Equal(t, "alpha", readFile(t, filepath.Join(src, "a.txt")))
	assert.Equal(t, "beta", readFile(t, filepath.Join(src, "nested", "b.txt")))
}

func TestCopyDirectoryIntoItsOwnSubtreeRefused(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "docs")
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "inner"), 0755))

	c := transfer.New(nil)
	results := c.Copy([]string{src}, filepath.Join(src, "inner"))

	require.Len(t, results, 1)
	assert.False(t, results[0].Done)
	assert.Error(t, results[0].Error)
	// No runaway recursive copy appears under the source
	assert.False(t, exists(filepath.Join(src, "inner", "docs", "a.txt")))
	assert.Equal(t, "alpha", readFile(t, filepath.Join(src, "a.txt")))
}

func TestMoveIsDestructive(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "payload")

	c := transfer.New(nil)
	results := c.Move([]string{filepath.Join(src, "a.txt")}, dest)

	require.Len(t, results, 1)
	assert.True(t, results[0].Done)
	assert.False(t, exists(filepath.Join(src, "a.txt")))
	assert.Equal(t, "payload", readFile(t, filepath.Join(dest, "a.txt")))
}

func TestMoveCollisionIsPerItemError(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "new")
	writeFile(t, filepath.Join(src, "b.txt"), "b")
	writeFile(t, filepath.Join(dest, "a.txt"), "old")

	c := transfer.New(nil)
	results := c.Move([]string{
		filepath.Join(src, "a.txt"),
		filepath.Join(src, "b.txt"),
	}, dest)

	require.Len(t, results, 2)

	// The colliding item errors without overwriting; the other moves
	assert.True(t, errors.IsAlreadyExists(results[0].Error))
	assert.Equal(t, "old", readFile(t, filepath.Join(dest, "a.txt")))
	assert.True(t, exists(filepath.Join(src, "a.txt")))
	assert.True(t, results[1].Done)
	assert.False(t, exists(filepath.Join(src, "b.txt")))
}

func TestDeleteDeclinedRemovesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.txt"), "keep me")

	c := transfer.New(transfer.ConfirmFunc(no))
	results, confirmed := c.Delete([]string{filepath.Join(dir, "old.txt")})

	assert.False(t, confirmed)
	assert.Nil(t, results)
	assert.True(t, exists(filepath.Join(dir, "old.txt")))
}

func TestDeleteConfirmedRemovesBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.txt"), "x")
	writeFile(t, filepath.Join(dir, "sub", "inner.txt"), "y")

	c := transfer.New(transfer.ConfirmFunc(yes))
	results, confirmed := c.Delete([]string{
		filepath.Join(dir, "old.txt"),
		filepath.Join(dir, "sub"),
	})

	assert.True(t, confirmed)
	require.Len(t, results, 2)
	assert.True(t, results[0].Done)
	assert.True(t, results[1].Done)
	assert.False(t, exists(filepath.Join(dir, "old.txt")))
	assert.False(t, exists(filepath.Join(dir, "sub")))
}

func TestDeleteWithoutConfirmerProceeds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.txt"), "x")

	c := transfer.New(nil)
	results, confirmed := c.Delete([]string{filepath.Join(dir, "old.txt")})

	assert.True(t, confirmed)
	require.Len(t, results, 1)
	assert.False(t, exists(filepath.Join(dir, "old.txt")))
}

func TestRename(t *testing.T) {
	c := transfer.New(nil)

	t.Run("relocates within parent", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "x")

		require.NoError(t, c.Rename(filepath.Join(dir, "a.txt"), "b.txt"))
		assert.False(t, exists(filepath.Join(dir, "a.txt")))
		assert.True(t, exists(filepath.Join(dir, "b.txt")))
	})

	t.Run("collision leaves filesystem unchanged", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "a")
		writeFile(t, filepath.Join(dir, "b.txt"), "b")

		err := c.Rename(filepath.Join(dir, "a.txt"), "b.txt")
		assert.True(t, errors.IsAlreadyExists(err))
		assert.Equal(t, "a", readFile(t, filepath.Join(dir, "a.txt")))
		assert.Equal(t, "b", readFile(t, filepath.Join(dir, "b.txt")))
	})

	t.Run("missing source", func(t *testing.T) {
		err := c.Rename(filepath.Join(t.TempDir(), "ghost.txt"), "real.txt")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("rejects separator in name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "x")

		err := c.Rename(filepath.Join(dir, "a.txt"), "sub/b.txt")
		assert.True(t, errors.IsInvalidName(err))
	})
}

func TestMkdir(t *testing.T) {
	c := transfer.New(nil)

	t.Run("creates directory", func(t *testing.T) {
		dir := t.TempDir()
		path, err := c.Mkdir(dir, "newdir")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "newdir"), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		dir := t.TempDir()
		_, err := c.Mkdir(dir, "  ")
		assert.True(t, errors.IsInvalidName(err))

		entries, rerr := os.ReadDir(dir)
		require.NoError(t, rerr)
		assert.Empty(t, entries, "no directory may be created")
	})

	t.Run("rejects collision", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0755))
		_, err := c.Mkdir(dir, "taken")
		assert.True(t, errors.IsAlreadyExists(err))
	})
}

func TestExecuteDispatch(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "x")

	c := transfer.New(transfer.ConfirmFunc(yes))

	results := c.Execute(types.TransferRequest{
		Kind:    types.OpCopy,
		Sources: []string{filepath.Join(src, "a.txt")},
		DestDir: dest,
	})
	require.Len(t, results, 1)
	assert.True(t, results[0].Done)

	results = c.Execute(types.TransferRequest{
		Kind:    types.OpMkdir,
		DestDir: dest,
		NewName: "made",
	})
	require.Len(t, results, 1)
	assert.True(t, results[0].Done)
	assert.True(t, exists(filepath.Join(dest, "made")))

	results = c.Execute(types.TransferRequest{
		Kind:    types.OpDelete,
		Sources: []string{filepath.Join(dest, "made")},
	})
	require.Len(t, results, 1)
	assert.True(t, results[0].Done)

	assert.Len(t, types.Failed(results), 0)
}
