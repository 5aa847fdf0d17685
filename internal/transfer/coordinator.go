// Package transfer executes the function-key file operations: copy, move,
// delete, rename, and directory creation. Batch operations are best-effort:
// every item gets its own result and one failure never aborts the rest.
package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gxplorer/internal/errors"
	"gxplorer/internal/log"
	"gxplorer/pkg/types"
)

// Confirmer answers a single yes/no question before a destructive batch
// runs. The front end provides a dialog-backed implementation; tests use
// a canned answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Coordinator performs filesystem operations on behalf of the panes.
// All operations are synchronous and uninterruptible; callers refresh
// both panes and clear selection after any of them returns.
type Coordinator struct {
	confirmer Confirmer
}

// New creates a coordinator. A nil confirmer means destructive
// operations proceed without asking.
func New(confirmer Confirmer) *Coordinator {
	return &Coordinator{confirmer: confirmer}
}

// Execute dispatches a request to the matching operation.
func (c *Coordinator) Execute(req types.TransferRequest) []types.TransferResult {
	switch req.Kind {
	case types.OpCopy:
		return c.Copy(req.Sources, req.DestDir)
	case types.OpMove:
		return c.Move(req.Sources, req.DestDir)
	case types.OpDelete:
		results, _ := c.Delete(req.Sources)
		return results
	case types.OpRename:
		if len(req.Sources) == 0 {
			return nil
		}
		err := c.Rename(req.Sources[0], req.NewName)
		return []types.TransferResult{{Source: req.Sources[0], Done: err == nil, Error: err}}
	case types.OpMkdir:
		path, err := c.Mkdir(req.DestDir, req.NewName)
		return []types.TransferResult{{Destination: path, Done: err == nil, Error: err}}
	default:
		return nil
	}
}

// Copy duplicates every path into destDir, preserving names. Regular
// files are copied byte for byte; directories are duplicated recursively.
// A partially copied subtree is left in place when an item fails.
func (c *Coordinator) Copy(paths []string, destDir string) []types.TransferResult {
	results := make([]types.TransferResult, 0, len(paths))
	for _, src := range paths {
		dest := filepath.Join(destDir, filepath.Base(src))
		result := types.TransferResult{Source: src, Destination: dest}

		if err := copyPath(src, dest); err != nil {
			result.Error = err
			log.Warnf("copy %s: %v", src, err)
		} else {
			result.Done = true
			log.Debugf("copied %s -> %s", src, dest)
		}
		results = append(results, result)
	}
	return results
}

// Move relocates every path into destDir. A name collision at the
// destination is an error for that item, never a silent overwrite.
func (c *Coordinator) Move(paths []string, destDir string) []types.TransferResult {
	results := make([]types.TransferResult, 0, len(paths))
	for _, src := range paths {
		dest := filepath.Join(destDir, filepath.Base(src))
		result := types.TransferResult{Source: src, Destination: dest}

		if err := movePath(src, dest); err != nil {
			result.Error = err
			log.Warnf("move %s: %v", src, err)
		} else {
			result.Done = true
			log.Debugf("moved %s -> %s", src, dest)
		}
		results = append(results, result)
	}
	return results
}

// Delete permanently removes the given paths, directories recursively.
// One confirmation covers the whole batch; a declined prompt removes
// nothing and returns confirmed == false.
func (c *Coordinator) Delete(paths []string) (results []types.TransferResult, confirmed bool) {
	if len(paths) == 0 {
		return nil, false
	}

	if c.confirmer != nil {
		prompt := "Permanently delete 1 item?"
		if len(paths) > 1 {
			prompt = fmt.Sprintf("Permanently delete %d items?", len(paths))
		}
		if !c.confirmer.Confirm(prompt) {
			log.Info("delete cancelled by user")
			return nil, false
		}
	}

	results = make([]types.TransferResult, 0, len(paths))
	for _, path := range paths {
		result := types.TransferResult{Source: path}

		if err := deletePath(path); err != nil {
			result.Error = err
			log.Warnf("delete %s: %v", path, err)
		} else {
			result.Done = true
			log.Debugf("deleted %s", path)
		}
		results = append(results, result)
	}
	return results, true
}

// Rename gives path a new name within its parent directory. Fails
// without touching the filesystem when the target name already exists.
func (c *Coordinator) Rename(path, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}

	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("path not found", path, errors.NotFound, nil)
		}
		return errors.NewFileError("cannot rename", path, errors.OperationFailed, err)
	}

	dest := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Lstat(dest); err == nil {
		return errors.NewFileError("name already taken", dest, errors.AlreadyExists, nil)
	}

	if err := os.Rename(path, dest); err != nil {
		return wrapOSError("rename failed", path, err)
	}
	log.Debugf("renamed %s -> %s", path, dest)
	return nil
}

// Mkdir creates a directory called name under parentDir and returns its
// path. Empty or whitespace-only names are rejected, as are collisions.
func (c *Coordinator) Mkdir(parentDir, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(parentDir, name)
	if _, err := os.Lstat(path); err == nil {
		return "", errors.NewFileError("path already exists", path, errors.AlreadyExists, nil)
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return "", wrapOSError("mkdir failed", path, err)
	}
	log.Debugf("created directory %s", path)
	return path, nil
}

// validateName rejects empty, whitespace-only, and separator-carrying
// names. Operations stay within a single parent directory.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewFileError("name cannot be empty", name, errors.InvalidName, nil)
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return errors.NewFileError("name cannot contain a path separator", name, errors.InvalidName, nil)
	}
	return nil
}

func copyPath(src, dest string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return wrapOSError("cannot read source", src, err)
	}

	// Copying a path onto itself would truncate the source before it is
	// read. Both panes showing the same directory makes dest == src.
	if destInfo, derr := os.Lstat(dest); derr == nil && os.SameFile(info, destInfo) {
		return errors.NewFileError("source and destination are the same file", src, errors.AlreadyExists, nil)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(src, dest)
	case info.IsDir():
		if within(src, dest) {
			return errors.NewFileError("destination is inside the source directory", dest, errors.InvalidPath, nil)
		}
		return copyDir(src, dest)
	default:
		return copyFile(src, dest, info.Mode().Perm())
	}
}

// within reports whether path equals root or sits below it. Both
// arguments arrive absolute and cleaned.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func copyFile(src, dest string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return wrapOSError("cannot open source", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return wrapOSError("cannot create destination", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return wrapOSError("copy failed", dest, err)
	}
	return out.Close()
}

func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return wrapOSError("cannot create destination directory", dest, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return wrapOSError("cannot read directory", src, err)
	}

	for _, entry := range entries {
		if err := copyPath(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copySymlink(src, dest string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return wrapOSError("cannot read link", src, err)
	}
	if err := os.Symlink(target, dest); err != nil {
		return wrapOSError("cannot create link", dest, err)
	}
	return nil
}

func movePath(src, dest string) error {
	if _, err := os.Lstat(src); err != nil {
		return wrapOSError("cannot read source", src, err)
	}
	if _, err := os.Lstat(dest); err == nil {
		return errors.NewFileError("destination already exists", dest, errors.AlreadyExists, nil)
	}

	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}

	// Rename cannot cross filesystems; fall back to copy and remove
	if _, ok := err.(*os.LinkError); ok {
		if cerr := copyPath(src, dest); cerr != nil {
			return cerr
		}
		if rerr := os.RemoveAll(src); rerr != nil {
			return wrapOSError("cannot remove source after copy", src, rerr)
		}
		return nil
	}
	return wrapOSError("move failed", src, err)
}

func deletePath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return wrapOSError("cannot read path", path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return wrapOSError("delete failed", path, err)
	}
	return nil
}

// wrapOSError maps a raw OS error onto the application taxonomy.
func wrapOSError(msg, path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.NewFileError(msg, path, errors.NotFound, err)
	case os.IsPermission(err):
		return errors.NewFileError(msg, path, errors.AccessDenied, err)
	case os.IsExist(err):
		return errors.NewFileError(msg, path, errors.AlreadyExists, err)
	default:
		return errors.NewFileError(msg, path, errors.OperationFailed, err)
	}
}

