package hashtable

import (
	"hash/maphash"
	"iter"
)

// Pair is the entry type of a Simple table.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Simple is a key/value table layered on Table. Keys are hashed with
// hash/maphash, so any comparable key works.
type Simple[K comparable, V any] struct {
	t    Table[Pair[K, V]]
	seed maphash.Seed
}

// NewSimple creates a key/value table with room for capacity pairs.
func NewSimple[K comparable, V any](capacity int) *Simple[K, V] {
	s := &Simple[K, V]{seed: maphash.MakeSeed()}
	s.t.Init(
		func(a, b *Pair[K, V]) bool { return a.Key == b.Key },
		func(p *Pair[K, V]) uint32 {
			h := maphash.Comparable(s.seed, p.Key)
			return uint32(h) ^ uint32(h>>32)
		},
		capacity,
	)
	return s
}

// Add stores value under key. It returns false if key is already present.
func (s *Simple[K, V]) Add(key K, value V) bool {
	return s.t.Add(Pair[K, V]{Key: key, Value: value}) != nil
}

// Get returns a pointer to the value stored under key. The pointer follows
// the same validity rules as Table.Get.
func (s *Simple[K, V]) Get(key K) (*V, bool) {
	p := s.t.Get(&Pair[K, V]{Key: key})
	if p == nil {
		return nil, false
	}
	return &p.Value, true
}

// Remove deletes key and reports whether it was present.
func (s *Simple[K, V]) Remove(key K) bool {
	return s.t.Remove(&Pair[K, V]{Key: key})
}

// Count returns the number of pairs.
func (s *Simple[K, V]) Count() int { return s.t.Count() }

// Clear removes every pair.
func (s *Simple[K, V]) Clear() { s.t.Clear() }

// All iterates key/value pairs in storage order.
func (s *Simple[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range s.t.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
