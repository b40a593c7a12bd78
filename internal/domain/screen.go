package domain

// ScreenSet is a deduplicated collection of screen names that preserves
// first-seen insertion order, so diagram node ids and inventory numbering
// are stable across runs on identical input.
type ScreenSet struct {
	names []string
	index map[string]int
}

func NewScreenSet() *ScreenSet {
	return &ScreenSet{index: map[string]int{}}
}

// Add inserts a screen name and reports whether it was new.
// Duplicates (exact string equality) are ignored.
func (s *ScreenSet) Add(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)
	return true
}

func (s *ScreenSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Position returns the zero-based first-seen position of a name.
func (s *ScreenSet) Position(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

func (s *ScreenSet) Len() int {
	return len(s.names)
}

// Names returns the screen names in first-seen order.
// The returned slice is a copy; mutating it does not affect the set.
func (s *ScreenSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
