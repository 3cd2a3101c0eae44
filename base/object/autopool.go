package object

// AutoPool collects references to release later, in one batch.
// The zero value is ready to use. An AutoPool is not safe for concurrent use.
type AutoPool struct {
	pending []Releaser
}

// Add queues one reference for release by Drain.
func (p *AutoPool) Add(r Releaser) {
	p.pending = append(p.pending, r)
}

// Auto queues o in p and returns o, so a fresh object can be used for the
// rest of the batch without tracking its release.
func Auto[T any](p *AutoPool, o *Object[T]) *Object[T] {
	p.Add(o)
	return o
}

// Len returns the number of queued references.
func (p *AutoPool) Len() int { return len(p.pending) }

// Drain releases every queued reference in the order they were added and
// returns how many were released. Releases queued by destructors during the
// drain are released too.
func (p *AutoPool) Drain() int {
	n := 0
	for len(p.pending) > 0 {
		batch := p.pending
		p.pending = nil
		for i, r := range batch {
			r.Release()
			batch[i] = nil
		}
		n += len(batch)
		if p.pending == nil {
			p.pending = batch[:0]
		}
	}
	return n
}
