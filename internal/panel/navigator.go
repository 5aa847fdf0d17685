package panel

import (
	"os"
	"path/filepath"

	"gxplorer/internal/errors"
)

// Navigator resolves and validates a pane's current directory. Failed
// navigation never mutates state: the pane keeps showing what it showed.
type Navigator struct {
	current string
}

// NewNavigator creates a navigator positioned at start.
func NewNavigator(start string) (*Navigator, error) {
	n := &Navigator{}
	if err := n.Navigate(start); err != nil {
		return nil, err
	}
	return n, nil
}

// Navigate validates the target, normalizes it, and stores it as the
// current directory.
func (n *Navigator) Navigate(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.NewFileError("invalid path", path, errors.InvalidPath, err)
	}
	abs = filepath.Clean(abs)

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("path not found", abs, errors.NotFound, nil)
		}
		if os.IsPermission(err) {
			return errors.NewFileError("access denied", abs, errors.AccessDenied, err)
		}
		return errors.NewFileError("cannot navigate", abs, errors.OperationFailed, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("not a directory", abs, errors.InvalidPath, nil)
	}

	n.current = abs
	return nil
}

// GoUp navigates to the parent directory. At a filesystem root the
// parent equals the current directory and GoUp is a no-op.
func (n *Navigator) GoUp() error {
	parent := filepath.Dir(n.current)
	if parent == n.current {
		return nil
	}
	return n.Navigate(parent)
}

// CurrentDir returns the normalized current directory.
func (n *Navigator) CurrentDir() string {
	return n.current
}
