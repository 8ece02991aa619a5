package swingnav

// historyStack records the paths visited, oldest first. Immediately after
// a successful navigation the top entry equals the path of the screen
// currently displayed.
type historyStack struct {
	paths []string
}

func newHistoryStack() *historyStack {
	return &historyStack{
		paths: make([]string, 0),
	}
}

// Push appends a path. Called once per successful navigation.
func (s *historyStack) Push(path string) {
	s.paths = append(s.paths, path)
}

// Pop removes and returns the most recent path.
// Returns false if the stack is empty.
func (s *historyStack) Pop() (string, bool) {
	if len(s.paths) == 0 {
		return "", false
	}
	path := s.paths[len(s.paths)-1]
	s.paths = s.paths[:len(s.paths)-1]
	return path, true
}

// Peek returns the most recent path without removing it.
// Returns false if the stack is empty.
func (s *historyStack) Peek() (string, bool) {
	if len(s.paths) == 0 {
		return "", false
	}
	return s.paths[len(s.paths)-1], true
}

// Len returns the number of recorded paths.
func (s *historyStack) Len() int {
	return len(s.paths)
}

// Clear removes all recorded paths.
func (s *historyStack) Clear() {
	s.paths = s.paths[:0]
}

// Snapshot returns a copy of the recorded paths, oldest first. Mutating
// the returned slice does not affect the stack.
func (s *historyStack) Snapshot() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}
