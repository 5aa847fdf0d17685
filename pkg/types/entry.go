package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry represents one row in a panel's directory listing.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// String returns a human-readable representation
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	if e.IsDir {
		sb.WriteString(string(filepath.Separator))
	} else {
		sb.WriteString(fmt.Sprintf(" (%d bytes)", e.Size))
	}
	return sb.String()
}

// IsSymlink checks if the entry is a symbolic link
func (e Entry) IsSymlink() bool {
	info, err := os.Lstat(e.Path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
