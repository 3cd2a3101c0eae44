package hashtable

import "iter"

// EqualFunc reports whether two entries have the same key.
type EqualFunc[T any] func(a, b *T) bool

// HashFunc returns the hash code of an entry's key.
type HashFunc[T any] func(e *T) uint32

const (
	// noEntry terminates bucket and free chains.
	noEntry = ^uint32(0)
	// freeHash marks an unused entry slot.
	freeHash = ^uint32(0)
	// hashMask keeps stored hash codes clear of freeHash.
	hashMask = 0x7FFFFFFF
)

type entry[T any] struct {
	hashCode uint32
	next     uint32
	body     T
}

// Table is a hashtable of T entries.
type Table[T any] struct {
	equal EqualFunc[T]
	hash  HashFunc[T]
	prime bool

	buckets   []uint32
	entries   []entry[T] // len(entries) is the allocated entry count
	count     int
	freeEntry uint32
	nextEntry uint32
}

// Option configures a Table.
type Option func(*options)

type options struct {
	prime bool
}

// WithPrimeBuckets sizes buckets from the prime table and reduces hashes by
// modulo instead of masking.
func WithPrimeBuckets() Option {
	return func(o *options) { o.prime = true }
}

// New creates a table with room for at least capacity entries.
// A capacity of 0 becomes 1.
func New[T any](equal EqualFunc[T], hash HashFunc[T], capacity int, opts ...Option) *Table[T] {
	t := &Table[T]{}
	t.Init(equal, hash, capacity, opts...)
	return t
}

// Init prepares a zero or reused Table for use.
func (t *Table[T]) Init(equal EqualFunc[T], hash HashFunc[T], capacity int, opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if capacity <= 0 {
		capacity = 1
	}

	t.equal = equal
	t.hash = hash
	t.prime = o.prime

	n := t.bucketsFor(uint32(capacity))
	t.buckets = make([]uint32, n)
	fillEmpty(t.buckets)
	t.entries = make([]entry[T], n)

	t.count = 0
	t.freeEntry = noEntry
	t.nextEntry = 0
}

// Reset releases the storage. Init must be called before reuse.
func (t *Table[T]) Reset() {
	t.buckets = nil
	t.entries = nil
	t.count = 0
	t.freeEntry = noEntry
	t.nextEntry = 0
}

// Count returns the number of live entries.
func (t *Table[T]) Count() int { return t.count }

// Capacity returns the allocated entry count.
func (t *Table[T]) Capacity() int { return len(t.entries) }

// Add copies e into the table and returns a pointer to the stored entry.
// It returns nil if an equal entry already exists; the existing entry is
// left untouched.
func (t *Table[T]) Add(e T) *T {
	p, added := t.AddEx(e)
	if !added {
		return nil
	}
	return p
}

// AddEx is like Add but returns the existing entry when e is a duplicate.
func (t *Table[T]) AddEx(e T) (*T, bool) {
	hashCode := t.hash(&e) & hashMask
	index := t.indexFor(hashCode)

	for i := t.buckets[index]; i != noEntry; {
		ent := &t.entries[i]
		if ent.hashCode == hashCode && t.equal(&ent.body, &e) {
			return &ent.body, false
		}
		i = ent.next
	}

	var slot uint32
	if t.freeEntry != noEntry {
		slot = t.freeEntry
		t.freeEntry = t.entries[slot].next
	} else {
		if int(t.nextEntry) == len(t.entries) {
			t.resize(uint32(len(t.buckets)) * 2)
			index = t.indexFor(hashCode)
		}
		slot = t.nextEntry
		t.nextEntry++
	}

	ent := &t.entries[slot]
	ent.hashCode = hashCode
	ent.next = t.buckets[index]
	ent.body = e
	t.buckets[index] = slot
	t.count++

	return &ent.body, true
}

// Get returns the stored entry equal to key, or nil.
func (t *Table[T]) Get(key *T) *T {
	hashCode := t.hash(key) & hashMask
	index := t.indexFor(hashCode)

	for i := t.buckets[index]; i != noEntry; {
		ent := &t.entries[i]
		if ent.hashCode == hashCode && t.equal(&ent.body, key) {
			return &ent.body
		}
		i = ent.next
	}
	return nil
}

// Remove deletes the entry equal to key and reports whether one was found.
func (t *Table[T]) Remove(key *T) bool {
	hashCode := t.hash(key) & hashMask
	index := t.indexFor(hashCode)
	prev := noEntry

	for i := t.buckets[index]; i != noEntry; {
		ent := &t.entries[i]
		if ent.hashCode == hashCode && t.equal(&ent.body, key) {
			if prev == noEntry {
				t.buckets[index] = ent.next
			} else {
				t.entries[prev].next = ent.next
			}

			var zero T
			ent.body = zero
			ent.hashCode = freeHash
			ent.next = t.freeEntry
			t.freeEntry = i
			t.count--
			return true
		}
		prev = i
		i = ent.next
	}
	return false
}

// Clear removes every entry without shrinking storage.
func (t *Table[T]) Clear() {
	if t.count == 0 && t.nextEntry == 0 {
		return
	}
	fillEmpty(t.buckets)
	clear(t.entries[:t.nextEntry])
	t.count = 0
	t.freeEntry = noEntry
	t.nextEntry = 0
}

// Next advances cursor to the next live entry. Start with a zero cursor.
func (t *Table[T]) Next(cursor *uint32) (*T, bool) {
	for *cursor < t.nextEntry {
		ent := &t.entries[*cursor]
		*cursor++
		if ent.hashCode != freeHash {
			return &ent.body, true
		}
	}
	return nil, false
}

// All iterates live entries in array order.
func (t *Table[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		var cursor uint32
		for {
			e, ok := t.Next(&cursor)
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// resize reallocates buckets and entries for newCapacity and re-buckets
// every live entry. Add only resizes with an empty free chain.
func (t *Table[T]) resize(newCapacity uint32) {
	n := t.bucketsFor(newCapacity)

	t.buckets = make([]uint32, n)
	fillEmpty(t.buckets)

	entries := make([]entry[T], n)
	copy(entries, t.entries)
	t.entries = entries

	for i := uint32(0); i < t.nextEntry; i++ {
		ent := &t.entries[i]
		if ent.hashCode == freeHash {
			continue
		}
		index := t.indexFor(ent.hashCode)
		ent.next = t.buckets[index]
		t.buckets[index] = i
	}
}

func (t *Table[T]) bucketsFor(capacity uint32) uint32 {
	if t.prime {
		return PrimeAtLeast(capacity)
	}
	return RoundUpToPowerOfTwo(capacity)
}

func (t *Table[T]) indexFor(hashCode uint32) uint32 {
	if t.prime {
		return hashCode % uint32(len(t.buckets))
	}
	return hashCode & (uint32(len(t.buckets)) - 1)
}

func fillEmpty(buckets []uint32) {
	for i := range buckets {
		buckets[i] = noEntry
	}
}
