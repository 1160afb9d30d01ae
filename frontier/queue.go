package frontier

import "fmt"

// compactThreshold is the minimum number of consumed head slots before the
// queue considers shifting its live elements to the front of the buffer.
const compactThreshold = 64

// Queue is a FIFO container. The zero value is an empty queue ready to use.
//
// Elements live in items[head:]; consumed slots before head are zeroed and
// reclaimed once they make up at least half of the buffer.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue with room for capacity elements.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push appends x to the tail of the queue.
func (q *Queue[T]) Push(x T) {
	q.items = append(q.items, x)
}

// Pop removes the head of the queue and returns it.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmptyContainer
	}
	x := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	q.compact()

	return x, nil
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}

	return q.items[q.head], nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// String renders the queue head-to-tail.
func (q *Queue[T]) String() string {
	return fmt.Sprint(q.items[q.head:])
}

// compact moves live elements to the front once the dead prefix dominates.
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head < compactThreshold || q.head < len(q.items)/2 {
		return
	}
	n := copy(q.items, q.items[q.head:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.head = 0
}
