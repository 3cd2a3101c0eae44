// Package hashtable provides a chained hashtable whose entries live inline in
// a flat array.
//
// # Overview
//
// The caller supplies the entry type and two functions: an equality function
// and a hash function. Both receive the whole entry, so a "key" is just the
// part of the entry those functions look at. Lookups take a partial entry
// with only the key fields filled in:
//
//	type proc struct {
//	    pid  uint32
//	    name string
//	}
//
//	t := hashtable.New(
//	    func(a, b *proc) bool { return a.pid == b.pid },
//	    func(p *proc) uint32 { return hashtable.HashInt32(p.pid) },
//	    64,
//	)
//	t.Add(proc{pid: 4, name: "System"})
//	p := t.Get(&proc{pid: 4})
//
// # Layout
//
// Buckets map to the index of the first entry of their chain; each entry
// stores its hash code and the index of the next entry in the chain. Removed
// entries are unlinked, marked with a hash code of 0xFFFFFFFF and pushed onto
// a free-entry chain threaded through the same next field. Add reuses those
// slots before taking a new one from the end of the array. When the array is
// full the table doubles and every live entry is re-bucketed.
//
// Bucket counts are powers of two by default and the hash is masked. The
// WithPrimeBuckets option uses prime bucket counts and modulo instead.
//
// # Pointer Validity
//
// Entries are copied by value into the array. Pointers returned by Add, Get
// and Next are valid only until the next Add that grows the table, the next
// Remove, or Clear. Mutating the table while enumerating is undefined.
//
// # Thread Safety
//
// A Table is not safe for concurrent use; callers serialize access.
package hashtable
