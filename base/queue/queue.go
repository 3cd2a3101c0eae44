// Package queue provides a growable ring-buffer FIFO.
//
// A Queue is not safe for concurrent use; callers serialize access.
package queue

import "github.com/joshuapare/basekit/internal/grow"

// Queue is a FIFO backed by a ring buffer that doubles when full.
type Queue[T any] struct {
	items []T // len(items) is the allocated count
	head  int // index of the first item
	tail  int // index of the next free slot
	count int
}

// New creates a queue with room for capacity items. A capacity of 0 becomes 1.
func New[T any](capacity int) *Queue[T] {
	q := &Queue[T]{}
	q.Init(capacity)
	return q
}

// Init prepares a zero or reused Queue for use.
func (q *Queue[T]) Init(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	q.items = make([]T, capacity)
	q.head, q.tail, q.count = 0, 0, 0
}

// Reset releases the storage. Init must be called before reuse.
func (q *Queue[T]) Reset() {
	q.items = nil
	q.head, q.tail, q.count = 0, 0, 0
}

// Count returns the number of queued items.
func (q *Queue[T]) Count() int { return q.count }

// Capacity returns the allocated count.
func (q *Queue[T]) Capacity() int { return len(q.items) }

// Enqueue adds v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[q.tail] = v
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// Dequeue removes and returns the head item.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return v, true
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Clear removes all items without shrinking storage.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.head, q.tail, q.count = 0, 0, 0
}

// grow doubles storage and unwraps the ring so head is at 0.
func (q *Queue[T]) grow() {
	items := make([]T, grow.Capacity(len(q.items), q.count+1))
	if q.count > 0 {
		n := copy(items, q.items[q.head:])
		if n < q.count {
			copy(items[n:], q.items[:q.tail])
		}
	}
	q.items = items
	q.head = 0
	q.tail = q.count
}
