package frontier

import (
	"container/heap"
	"fmt"

	"github.com/Tardigrada777/copec-cspy-book/ordering"
)

// PriorityQueue is a binary min-heap: Pop returns the element that sorts
// first under T's Less method. Ties are broken arbitrarily.
// The zero value is an empty queue ready to use.
type PriorityQueue[T ordering.Comparable[T]] struct {
	h minHeap[T]
}

// NewPriorityQueue returns an empty priority queue with room for capacity elements.
func NewPriorityQueue[T ordering.Comparable[T]](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: make(minHeap[T], 0, max(capacity, 0))}
}

// Push inserts x, restoring heap order. O(log n).
func (pq *PriorityQueue[T]) Push(x T) {
	heap.Push(&pq.h, x)
}

// Pop removes and returns the minimum element. O(log n).
func (pq *PriorityQueue[T]) Pop() (T, error) {
	if len(pq.h) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return heap.Pop(&pq.h).(T), nil
}

// Peek returns the minimum element without removing it. O(1).
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if len(pq.h) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return pq.h[0], nil
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// Empty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) Empty() bool { return len(pq.h) == 0 }

// String renders the heap in its internal array order.
func (pq *PriorityQueue[T]) String() string {
	return fmt.Sprint([]T(pq.h))
}

// minHeap implements heap.Interface over a slice ordered by T.Less.
type minHeap[T ordering.Comparable[T]] []T

// Len returns the number of items in the heap.
func (h minHeap[T]) Len() int { return len(h) }

// Less orders by the element's own Less method.
func (h minHeap[T]) Less(i, j int) bool { return h[i].Less(h[j]) }

// Swap swaps two elements in the heap.
func (h minHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be of type T.
func (h *minHeap[T]) Push(x any) { *h = append(*h, x.(T)) }

// Pop is called by heap.Pop after moving the minimum to the end.
func (h *minHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid holding a reference
	*h = old[:n-1]

	return item
}
