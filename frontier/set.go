package frontier

// Set is a hash set of comparable values. The zero value is not usable;
// build one with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a set seeded with items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

// Add inserts item; adding an existing item is a no-op.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Contains reports whether item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set.
func (s Set[T]) Len() int { return len(s) }
