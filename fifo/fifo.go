package fifo

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrCapacity indicates a non-positive capacity was requested.
	ErrCapacity = errors.New("fifo: capacity must be positive")
	// ErrFull is returned by Enqueue when the queue holds Cap values.
	ErrFull = errors.New("fifo: queue is full")
	// ErrEmpty is returned by Dequeue when the queue holds no values.
	ErrEmpty = errors.New("fifo: queue is empty")
)

// Queue is a bounded FIFO of T.
type Queue[T any] struct {
	values []T
	first  int // index of the oldest value
	size   int // values currently held
	total  int // values ever enqueued
}

// New returns an empty queue able to hold capacity values.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	return &Queue[T]{values: make([]T, capacity)}, nil
}

// Enqueue appends v at the back. Returns ErrFull when no slot is left.
func (q *Queue[T]) Enqueue(v T) error {
	if q.size == len(q.values) {
		return fmt.Errorf("%w: capacity %d", ErrFull, len(q.values))
	}
	q.values[(q.first+q.size)%len(q.values)] = v
	q.size++
	q.total++

	return nil
}

// Dequeue removes and returns the front value. Returns ErrEmpty when the
// queue holds nothing.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	v := q.values[q.first]
	q.values[q.first] = zero
	q.first = (q.first + 1) % len(q.values)
	q.size--

	return v, nil
}

// Len returns the number of values currently queued.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.values) }

// Empty reports whether Len is zero.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Total returns how many values were enqueued over the queue's lifetime.
func (q *Queue[T]) Total() int { return q.total }
