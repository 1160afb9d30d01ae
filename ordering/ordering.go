package ordering

// Comparable is satisfied by types that support equality and a strict
// less-than relation. Less must be a strict weak ordering consistent with ==:
// if a == b then neither a.Less(b) nor b.Less(a).
type Comparable[T any] interface {
	comparable
	Less(other T) bool
}

// Greater reports whether a sorts strictly after b.
func Greater[T Comparable[T]](a, b T) bool {
	return !a.Less(b) && a != b
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T Comparable[T]](a, b T) bool {
	return !a.Less(b)
}

// LessOrEqual reports whether a sorts before b or equals it.
func LessOrEqual[T Comparable[T]](a, b T) bool {
	return a.Less(b) || a == b
}
