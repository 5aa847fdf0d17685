// Package panel implements one side of the dual-pane explorer: directory
// navigation, the entry listing, and persistent selection tracking.
package panel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gxplorer/internal/log"
	"gxplorer/pkg/types"

	"github.com/gobwas/glob"
)

// Panel composes a navigator, a selection tracker, and the directory
// listing for one pane. Each pane owns exactly one tracker; the two
// panes never share selection state.
type Panel struct {
	side       types.Side
	nav        *Navigator
	sel        *SelectionTracker
	entries    []types.Entry
	filter     glob.Glob
	filterText string
	showHidden bool
}

// New creates a panel rooted at startDir.
func New(side types.Side, startDir string, showHidden bool) (*Panel, error) {
	nav, err := NewNavigator(startDir)
	if err != nil {
		return nil, err
	}

	p := &Panel{
		side:       side,
		nav:        nav,
		sel:        NewSelectionTracker(),
		showHidden: showHidden,
	}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// Side returns which pane this is.
func (p *Panel) Side() types.Side {
	return p.side
}

// CurrentDir returns the pane's current directory.
func (p *Panel) CurrentDir() string {
	return p.nav.CurrentDir()
}

// Navigate moves the pane to path. On success the selection is cleared
// before the listing is rebuilt, so no stale selection can survive a
// directory change. On failure the pane is left untouched.
func (p *Panel) Navigate(path string) error {
	if err := p.nav.Navigate(path); err != nil {
		return err
	}
	p.sel.Clear()
	p.filter = nil
	p.filterText = ""
	return p.Refresh()
}

// GoUp moves to the parent directory, a no-op at a filesystem root.
func (p *Panel) GoUp() error {
	parent := filepath.Dir(p.nav.CurrentDir())
	if parent == p.nav.CurrentDir() {
		return nil
	}
	return p.Navigate(parent)
}

// Enter navigates into the given entry if it is a directory.
func (p *Panel) Enter(e types.Entry) error {
	if !e.IsDir {
		return nil
	}
	return p.Navigate(e.Path)
}

// Refresh rescans the current directory. Selection is preserved; callers
// that need a clean slate (navigation, completed transfers) clear it
// explicitly.
func (p *Panel) Refresh() error {
	dir := p.nav.CurrentDir()
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !p.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if p.filter != nil && !p.filter.Match(strings.ToLower(name)) {
			continue
		}

		e := types.Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}

	// Directories first, then names, for a stable commander-style listing
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	p.entries = entries

	// Drop selected paths that no longer appear in the listing
	for _, sel := range p.sel.Selected() {
		if _, err := os.Lstat(sel); err != nil {
			log.Debugf("dropping stale selection %s", sel)
			p.sel.Toggle(sel)
		}
	}

	return nil
}

// Entries returns the current listing.
func (p *Panel) Entries() []types.Entry {
	return p.entries
}

// Toggle flips the selection state of path.
func (p *Panel) Toggle(path string) {
	p.sel.Toggle(path)
}

// IsSelected reports whether path is selected.
func (p *Panel) IsSelected(path string) bool {
	return p.sel.Contains(path)
}

// SelectedPaths returns a snapshot of the pane's selection.
func (p *Panel) SelectedPaths() []string {
	return p.sel.Selected()
}

// SelectionCount returns the number of selected entries.
func (p *Panel) SelectionCount() int {
	return p.sel.Len()
}

// ClearSelection empties the pane's selection.
func (p *Panel) ClearSelection() {
	p.sel.Clear()
}

// SetFilter narrows the listing to names matching pattern, case
// insensitively. A pattern without glob metacharacters matches as a
// substring, mirroring a plain search box. Empty pattern clears the
// filter. The listing is rebuilt immediately.
func (p *Panel) SetFilter(pattern string) error {
	pattern = strings.TrimSpace(strings.ToLower(pattern))
	if pattern == "" {
		p.filter = nil
		p.filterText = ""
		return p.Refresh()
	}

	if !strings.ContainsAny(pattern, "*?[{") {
		pattern = "*" + pattern + "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return err
	}
	p.filter = g
	p.filterText = pattern
	return p.Refresh()
}

// Filter returns the active filter pattern, empty when unfiltered.
func (p *Panel) Filter() string {
	return p.filterText
}

// SetShowHidden toggles dotfile visibility and rebuilds the listing.
func (p *Panel) SetShowHidden(show bool) error {
	p.showHidden = show
	return p.Refresh()
}
