package nav

// Stack holds the mounted views, bottom first.
type Stack struct {
	entries []View
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]View, 0),
	}
}

// Push mounts v on top.
func (s *Stack) Push(v View) {
	s.entries = append(s.entries, v)
}

// Pop removes and returns the top view.
// Returns nil if the stack is empty.
func (s *Stack) Pop() View {
	if len(s.entries) == 0 {
		return nil
	}
	v := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return v
}

// Top returns the top view without removing it, or nil.
func (s *Stack) Top() View {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// ReplaceTop swaps the top view for its updated value.
func (s *Stack) ReplaceTop(v View) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, v)
		return
	}
	s.entries[len(s.entries)-1] = v
}

// IndexOf returns the position of the topmost view for screen, or -1.
func (s *Stack) IndexOf(screen Screen) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen() == screen {
			return i
		}
	}
	return -1
}

// PopTo unmounts every view above the topmost instance of screen.
// It reports false, leaving the stack untouched, when screen is not mounted.
func (s *Stack) PopTo(screen Screen) bool {
	i := s.IndexOf(screen)
	if i < 0 {
		return false
	}
	for s.Len() > i+1 {
		s.Pop()
	}
	return true
}

// Each calls fn for every mounted view, bottom first, storing the result.
func (s *Stack) Each(fn func(View) View) {
	for i, v := range s.entries {
		s.entries[i] = fn(v)
	}
}

// Screens lists the mounted screens, bottom first.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.entries))
	for i, v := range s.entries {
		out[i] = v.Screen()
	}
	return out
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
