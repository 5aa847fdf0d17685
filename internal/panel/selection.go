package panel

// SelectionTracker maintains the set of selected paths for one pane,
// independent of whatever row highlighting the view applies. It survives
// re-renders and is cleared on every navigation.
type SelectionTracker struct {
	paths map[string]struct{}
}

// NewSelectionTracker creates an empty tracker.
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{
		paths: make(map[string]struct{}),
	}
}

// Toggle adds the path if absent and removes it if present. Two toggles
// of the same path restore the previous state.
func (s *SelectionTracker) Toggle(path string) {
	if _, ok := s.paths[path]; ok {
		delete(s.paths, path)
		return
	}
	s.paths[path] = struct{}{}
}

// Clear empties the set unconditionally.
func (s *SelectionTracker) Clear() {
	s.paths = make(map[string]struct{})
}

// Contains reports whether the path is currently selected.
func (s *SelectionTracker) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Len returns the number of selected paths.
func (s *SelectionTracker) Len() int {
	return len(s.paths)
}

// Selected returns a snapshot of the selected paths. Iteration order is
// unspecified; callers building an operation batch must not rely on it.
func (s *SelectionTracker) Selected() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	return out
}
