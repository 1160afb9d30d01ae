package frontier

import "fmt"

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push appends x to the top of the stack.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyContainer
	}
	x := s.items[n-1]
	s.items[n-1] = zero // release the reference
	s.items = s.items[:n-1]

	return x, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return s.items[len(s.items)-1], nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// String renders the stack bottom-to-top.
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.items)
}
