package utils

// IDSet tracks job identifiers admitted during a collection run. Collection
// is single-threaded, so no locking is needed.
type IDSet struct {
	seen map[string]struct{}
}

// NewIDSet creates an empty IDSet.
func NewIDSet() *IDSet {
	return &IDSet{seen: make(map[string]struct{})}
}

// Add returns true if the identifier was newly added, false if already present.
func (s *IDSet) Add(id string) bool {
	if _, exists := s.seen[id]; exists {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

// Contains returns true if the identifier has already been admitted.
func (s *IDSet) Contains(id string) bool {
	_, exists := s.seen[id]
	return exists
}

// Size returns the number of unique identifiers tracked.
func (s *IDSet) Size() int {
	return len(s.seen)
}
