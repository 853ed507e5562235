package stack

import "errors"

// ErrUnderflow is returned when popping or peeking an empty stack.
var ErrUnderflow = errors.New("stack: underflow")

// initialDepth sizes the backing array so short expressions never grow it.
const initialDepth = 16

// Stack is a last-in-first-out container. The zero value is an empty stack
// ready for use.
type Stack[T any] struct {
	items []T
}

// New creates an empty stack with room for depth items before growing.
func New[T any](depth int) *Stack[T] {
	if depth < initialDepth {
		depth = initialDepth
	}
	return &Stack[T]{items: make([]T, 0, depth)}
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrUnderflow
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	return s.items[n-1], nil
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the stack contents, bottom first.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Reset empties the stack for reuse, keeping its capacity.
func (s *Stack[T]) Reset() {
	// Zero out the slots to avoid retaining values between runs
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}
