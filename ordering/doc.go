// Package ordering defines the comparability capability shared by the
// containers and lookups of this module, and the two classic membership
// lookups built on top of it.
//
// What
//
//   - Comparable[T]: a compile-time contract for types with equality (Go ==)
//     and a strict less-than relation (Less).
//   - Greater, GreaterOrEqual, LessOrEqual: relations derived from Less and ==.
//   - LinearContains / LinearContainsSeq: O(n) scan, no ordering required.
//   - BinaryContains / BinaryContainsOrdered: O(log n) narrowing over a slice
//     sorted in ascending order.
//
// Derived relations
//
//	a >  b  ⇔  !(a < b) ∧ a ≠ b
//	a >= b  ⇔  !(a < b)
//	a <= b  ⇔  (a < b) ∨ a = b
//
// Preconditions
//
//	BinaryContains does not verify that its input is sorted; an unsorted
//	slice yields an unspecified (but terminating) answer.
//
// Complexity
//
//   - LinearContains:  O(n) time, O(1) memory.
//   - BinaryContains:  O(log n) time, O(1) memory.
package ordering
