// Package freelist provides a capped, goroutine-safe cache of fixed-size
// blocks. It is the allocation fast path for the object system and the
// thread spawner.
//
// # Overview
//
// A FreeList keeps released blocks on a lock-free (CAS) stack so the next
// Allocate can hand them out again without going to the heap:
//
//	fl := freelist.New[startContext](16)
//	ctx := fl.Allocate() // pooled block, or a fresh one from the heap
//	...
//	fl.Free(ctx)         // back onto the stack, or to the collector when full
//
// # Advisory Cap
//
// The pooled count is adjusted with atomic increments around the push and is
// never locked. Under concurrent Free calls the pool may briefly hold more
// than MaxCount blocks. Once the count is at or above the cap, freed blocks
// are dropped and left to the garbage collector.
//
// # Block Contents
//
// Blocks are never zeroed by the free list. A block returned by Allocate may
// still hold whatever its previous owner wrote into it.
//
// # Thread Safety
//
// Allocate, Free, Delete and the accessors may be called from any goroutine.
package freelist
