// Package arraylist provides an unordered growable array of element references.
//
// A List is not safe for concurrent use; callers serialize access.
package arraylist

import (
	"errors"
	"iter"
	"slices"

	"github.com/joshuapare/basekit/internal/grow"
)

// ErrCapacityTooSmall indicates a Resize below the current count.
var ErrCapacityTooSmall = errors.New("arraylist: new capacity is smaller than count")

// List is a growable array. Storage doubles when full.
type List[T comparable] struct {
	count int
	items []T // len(items) is the allocated count
}

// New creates a list with room for capacity items. A capacity of 0 becomes 1.
func New[T comparable](capacity int) *List[T] {
	l := &List[T]{}
	l.Init(capacity)
	return l
}

// Init prepares a zero or reused List for use.
func (l *List[T]) Init(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	l.count = 0
	l.items = make([]T, capacity)
}

// Count returns the number of items.
func (l *List[T]) Count() int { return l.count }

// Capacity returns the allocated count.
func (l *List[T]) Capacity() int { return len(l.items) }

// Items returns the live items. The slice aliases the list storage and is
// invalidated by the next mutation.
func (l *List[T]) Items() []T { return l.items[:l.count] }

// Get returns the item at index.
func (l *List[T]) Get(index int) T { return l.items[:l.count][index] }

// Set replaces the item at index.
func (l *List[T]) Set(index int, item T) { l.items[:l.count][index] = item }

// Resize sets the allocated count. It fails if newCapacity < Count.
func (l *List[T]) Resize(newCapacity int) error {
	if newCapacity < l.count {
		return ErrCapacityTooSmall
	}
	l.realloc(newCapacity)
	return nil
}

// Add appends an item.
func (l *List[T]) Add(item T) {
	l.ensure(1)
	l.items[l.count] = item
	l.count++
}

// AddRange appends items in order.
func (l *List[T]) AddRange(items ...T) {
	l.ensure(len(items))
	copy(l.items[l.count:], items)
	l.count += len(items)
}

// Insert places item at index, shifting later items back.
func (l *List[T]) Insert(index int, item T) {
	l.InsertRange(index, item)
}

// InsertRange places items at index, shifting later items back.
func (l *List[T]) InsertRange(index int, items ...T) {
	if index < 0 || index > l.count {
		panic("arraylist: insert index out of range")
	}
	l.ensure(len(items))
	if index < l.count {
		copy(l.items[index+len(items):], l.items[index:l.count])
	}
	copy(l.items[index:], items)
	l.count += len(items)
}

// Remove deletes the item at index, shifting later items forward.
func (l *List[T]) Remove(index int) {
	l.RemoveRange(index, 1)
}

// RemoveRange deletes count items starting at start.
func (l *List[T]) RemoveRange(start, count int) {
	if start < 0 || count < 0 || start+count > l.count {
		panic("arraylist: remove range out of bounds")
	}
	copy(l.items[start:], l.items[start+count:l.count])
	// Drop references held by the vacated tail.
	clear(l.items[l.count-count : l.count])
	l.count -= count
}

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	for i := 0; i < l.count; i++ {
		if l.items[i] == item {
			return i
		}
	}
	return -1
}

// Clear removes all items without shrinking storage.
func (l *List[T]) Clear() {
	clear(l.items[:l.count])
	l.count = 0
}

// Reset releases the storage. The list must be re-initialized with Init
// before it is used again.
func (l *List[T]) Reset() {
	l.items = nil
	l.count = 0
}

// Sort orders the items with cmp. The sort is not stable. Any per-call
// context the comparison needs is captured by the closure.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(l.items[:l.count], cmp)
}

// All iterates index/item pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(i, l.items[i]) {
				return
			}
		}
	}
}

// ensure grows storage to fit n more items: double, or exactly enough if
// doubling is not.
func (l *List[T]) ensure(n int) {
	need := grow.Need(l.count, n)
	if need <= len(l.items) {
		return
	}
	l.realloc(grow.Capacity(len(l.items), need))
}

func (l *List[T]) realloc(newCap int) {
	items := make([]T, newCap)
	copy(items, l.items[:l.count])
	l.items = items
}
