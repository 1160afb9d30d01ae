// Package frontier provides the generic containers a state-space search keeps
// its discovered-but-unexpanded nodes in, plus the explored-set type.
//
// What
//
//   - Stack[T]:          LIFO; the depth-first frontier.
//   - Queue[T]:          FIFO; the breadth-first frontier.
//   - PriorityQueue[T]:  binary min-heap under ordering.Comparable; the A* frontier.
//   - Set[T]:            hash set of comparable values; the explored set.
//
// All three containers implement Frontier[T], so a traversal can be written
// once against the interface and parameterised by discipline.
//
// Errors
//
//   - ErrEmptyContainer  Pop or Peek on an empty container. This is always a
//     caller logic error: check Empty before popping.
//
// Complexity
//
//   - Stack.Push/Pop:          O(1) amortised.
//   - Queue.Push/Pop:          O(1) amortised (head index + periodic compaction).
//   - PriorityQueue.Push/Pop:  O(log n).
//
// None of the containers are safe for concurrent use; a search owns its
// frontier exclusively.
package frontier
