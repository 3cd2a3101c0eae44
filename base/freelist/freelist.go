package freelist

import (
	"sync/atomic"

	"github.com/joshuapare/basekit/internal/logger"
)

// node is one entry on the lock-free stack.
//
// A fresh node wraps every pushed block. Node addresses are therefore never
// recycled while a racing pop still holds a pointer to them, which keeps the
// CAS loop free of ABA.
type node[T any] struct {
	block *T
	next  *node[T]
}

// FreeList is a pool of *T blocks backed by a lock-free stack.
type FreeList[T any] struct {
	head     atomic.Pointer[node[T]]
	count    atomic.Int32
	maxCount int32
	newBlock func() *T

	allocated atomic.Uint64 // blocks created from the heap
	reused    atomic.Uint64 // blocks served from the stack
	freed     atomic.Uint64 // blocks pushed onto the stack
	spilled   atomic.Uint64 // blocks dropped because the pool was full
}

// Option configures a FreeList.
type Option[T any] func(*FreeList[T])

// WithConstructor sets the function used when the stack is empty.
// The default is new(T).
func WithConstructor[T any](fn func() *T) Option[T] {
	return func(f *FreeList[T]) {
		f.newBlock = fn
	}
}

// New creates a free list that pools at most maxCount blocks.
// A maxCount <= 0 disables pooling: every Free goes to the collector.
func New[T any](maxCount int, opts ...Option[T]) *FreeList[T] {
	if maxCount < 0 {
		maxCount = 0
	}
	f := &FreeList[T]{
		maxCount: int32(maxCount),
		newBlock: func() *T { return new(T) },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewBlocks creates a free list of byte blocks of exactly size bytes.
func NewBlocks(size, maxCount int) (*FreeList[[]byte], error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return New(maxCount, WithConstructor(func() *[]byte {
		b := make([]byte, size)
		return &b
	})), nil
}

// Allocate returns a block from the stack, or a new one when the stack is empty.
// The block is not zeroed.
func (f *FreeList[T]) Allocate() *T {
	if n := f.pop(); n != nil {
		f.count.Add(-1)
		f.reused.Add(1)
		return n.block
	}
	f.allocated.Add(1)
	return f.newBlock()
}

// Free returns a block to the pool. The caller must not touch the block
// afterwards.
func (f *FreeList[T]) Free(block *T) {
	if block == nil {
		return
	}
	// Count <= maxCount is checked, not enforced.
	if f.count.Load() < f.maxCount {
		f.push(&node[T]{block: block})
		f.count.Add(1)
		f.freed.Add(1)
		return
	}
	f.spilled.Add(1)
}

// Delete flushes every pooled block and returns how many were released.
// The free list stays usable afterwards.
func (f *FreeList[T]) Delete() int {
	n := 0
	for e := f.head.Swap(nil); e != nil; e = e.next {
		n++
	}
	f.count.Add(int32(-n))
	logger.Debug("freelist flushed", "released", n)
	return n
}

// Count returns the advisory number of pooled blocks.
func (f *FreeList[T]) Count() int {
	return int(f.count.Load())
}

// MaxCount returns the configured pool cap.
func (f *FreeList[T]) MaxCount() int {
	return int(f.maxCount)
}

// Stats reports cumulative counters for the free list.
type Stats struct {
	Allocated uint64 // heap allocations on an empty stack
	Reused    uint64 // allocations served from the stack
	Freed     uint64 // blocks returned to the stack
	Spilled   uint64 // blocks dropped because the pool was at its cap
	Pooled    int    // current advisory pooled count
}

// Stats returns a snapshot of the counters. Fields are read independently
// and may be mutually inconsistent under concurrent use.
func (f *FreeList[T]) Stats() Stats {
	return Stats{
		Allocated: f.allocated.Load(),
		Reused:    f.reused.Load(),
		Freed:     f.freed.Load(),
		Spilled:   f.spilled.Load(),
		Pooled:    f.Count(),
	}
}

func (f *FreeList[T]) push(n *node[T]) {
	for {
		head := f.head.Load()
		n.next = head
		if f.head.CompareAndSwap(head, n) {
			return
		}
	}
}

func (f *FreeList[T]) pop() *node[T] {
	for {
		head := f.head.Load()
		if head == nil {
			return nil
		}
		if f.head.CompareAndSwap(head, head.next) {
			return head
		}
	}
}
