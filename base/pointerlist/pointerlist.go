// Package pointerlist provides a growable arena that hands out stable handles.
//
// Removing an element never moves any other element: the freed slot is
// pushed onto an internal free chain and reused by a later Add. A handle
// therefore keeps naming the same element until that handle itself is
// removed.
//
// Handles are index+1, so the zero Handle always means "not found".
//
// A List is not safe for concurrent use; callers serialize access.
package pointerlist

import (
	"iter"
	"math"

	"github.com/joshuapare/basekit/internal/grow"
)

// Handle identifies an element of a List. The zero Handle is invalid.
type Handle uint32

// noEntry terminates the free chain.
const noEntry int32 = -1

// slot is either occupied (used) or a link in the free chain.
type slot[T any] struct {
	value T
	next  int32 // next free index when !used
	used  bool
}

// List is a handle-stable arena of T values.
type List[T comparable] struct {
	slots     []slot[T] // len(slots) is the allocated count
	count     int
	nextEntry int32
	freeEntry int32
}

// New creates a list with room for capacity elements. A capacity of 0 becomes 1.
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
	l.slots = make([]slot[T], capacity)
	l.count = 0
	l.nextEntry = 0
	l.freeEntry = noEntry
}

// Reset releases the storage. The list must be re-initialized with Init
// before it is used again.
func (l *List[T]) Reset() {
	l.slots = nil
	l.count = 0
	l.nextEntry = 0
	l.freeEntry = noEntry
}

// Count returns the number of live elements.
func (l *List[T]) Count() int { return l.count }

// Add stores v and returns its handle. A recycled slot is preferred over
// extending the arena.
func (l *List[T]) Add(v T) Handle {
	var index int32

	if l.freeEntry != noEntry {
		index = l.freeEntry
		l.freeEntry = l.slots[index].next
	} else {
		if int(l.nextEntry) == len(l.slots) {
			l.grow()
		}
		index = l.nextEntry
		l.nextEntry++
	}

	l.slots[index] = slot[T]{value: v, used: true}
	l.count++

	return indexToHandle(index)
}

// Remove frees the slot named by h. Removing a handle that is not live is
// undefined.
func (l *List[T]) Remove(h Handle) {
	index := handleToIndex(h)

	l.slots[index] = slot[T]{next: l.freeEntry}
	l.freeEntry = index
	l.count--
}

// Get returns the element named by h.
func (l *List[T]) Get(h Handle) (T, bool) {
	var zero T
	index := handleToIndex(h)
	if index < 0 || index >= l.nextEntry || !l.slots[index].used {
		return zero, false
	}
	return l.slots[index].value, true
}

// Find returns the handle of the first slot holding v, or 0.
// It is a linear scan.
func (l *List[T]) Find(v T) Handle {
	for i := int32(0); i < l.nextEntry; i++ {
		if l.slots[i].used && l.slots[i].value == v {
			return indexToHandle(i)
		}
	}
	return 0
}

// Next advances cursor to the next live element. Start with a zero cursor.
func (l *List[T]) Next(cursor *uint32) (T, Handle, bool) {
	for int64(*cursor) < int64(l.nextEntry) {
		index := int32(*cursor)
		*cursor++

		if s := &l.slots[index]; s.used {
			return s.value, indexToHandle(index), true
		}
	}
	var zero T
	return zero, 0, false
}

// All iterates live handle/element pairs in slot order.
func (l *List[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		var cursor uint32
		for {
			v, h, ok := l.Next(&cursor)
			if !ok || !yield(h, v) {
				return
			}
		}
	}
}

func (l *List[T]) grow() {
	slots := make([]slot[T], grow.CapacityLimit(len(l.slots), len(l.slots)+1, math.MaxInt32))
	copy(slots, l.slots)
	l.slots = slots
}

func indexToHandle(index int32) Handle { return Handle(index + 1) }

func handleToIndex(h Handle) int32 { return int32(h) - 1 }
