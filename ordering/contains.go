package ordering

import (
	"cmp"
	"iter"
)

// LinearContains scans seq in order and reports whether any element equals key.
// Time Complexity: O(n).
func LinearContains[T comparable](seq []T, key T) bool {
	for _, item := range seq {
		if item == key {
			return true
		}
	}

	return false
}

// LinearContainsSeq is LinearContains over an arbitrary iterator.
// Iteration stops at the first match.
func LinearContainsSeq[T comparable](seq iter.Seq[T], key T) bool {
	for item := range seq {
		if item == key {
			return true
		}
	}

	return false
}

// BinaryContains reports whether key is present in seq, which must be sorted
// in ascending order under Less.
//
// Loop invariant: if key is present, its index lies in [low, high].
// Time Complexity: O(log n).
func BinaryContains[T Comparable[T]](seq []T, key T) bool {
	low, high := 0, len(seq)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case seq[mid].Less(key):
			low = mid + 1
		case Greater(seq[mid], key):
			high = mid - 1
		default:
			return true
		}
	}

	return false
}

// BinaryContainsOrdered is BinaryContains for built-in ordered types
// (integers, floats, strings), which cannot carry a Less method.
func BinaryContainsOrdered[T cmp.Ordered](seq []T, key T) bool {
	low, high := 0, len(seq)-1
	for low <= high {
		mid := (low + high) / 2
		switch c := cmp.Compare(seq[mid], key); {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		default:
			return true
		}
	}

	return false
}
