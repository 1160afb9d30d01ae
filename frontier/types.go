package frontier

import "errors"

// ErrEmptyContainer is returned when popping or peeking an empty container.
var ErrEmptyContainer = errors.New("frontier: container is empty")

// Frontier is the common surface of Stack, Queue and PriorityQueue.
type Frontier[T any] interface {
	// Push inserts x according to the container's discipline.
	Push(x T)

	// Pop removes and returns the next element, or ErrEmptyContainer.
	Pop() (T, error)

	// Len returns the number of stored elements.
	Len() int

	// Empty reports whether Len() == 0.
	Empty() bool
}

// Compile-time checks that the FIFO and LIFO containers satisfy Frontier.
var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
)
