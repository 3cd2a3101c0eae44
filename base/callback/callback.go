// Package callback implements a list of listeners that can be invoked and
// unregistered concurrently.
//
// Listeners run with no lock held, so they may register new listeners or
// invoke other callbacks. Unregister blocks until no invocation is running
// the registration being removed; afterwards the listener is never called
// again. A listener must not unregister its own registration from inside its
// own invocation: Unregister would wait for itself forever.
package callback

import (
	"sync"
	"sync/atomic"
)

// Func is a listener. context is the value given to Register.
type Func[P any] func(param P, context any)

// Registration is a handle to one registered listener.
type Registration[P any] struct {
	fn      Func[P]
	context any

	prev, next *Registration[P]

	// busy changes under the read lock and is read under the write lock.
	busy          atomic.Int32
	unregistering atomic.Bool
}

// Callback is an ordered list of listeners for parameter type P.
// The zero value is not usable; use New.
type Callback[P any] struct {
	mu   sync.RWMutex
	cond *sync.Cond // bound to the write lock

	head, tail *Registration[P]
	count      int
}

// New returns an empty callback.
func New[P any]() *Callback[P] {
	c := &Callback[P]{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Register appends fn to the listener list.
func (c *Callback[P]) Register(fn Func[P], context any) *Registration[P] {
	r := &Registration[P]{fn: fn, context: context}

	c.mu.Lock()
	r.prev = c.tail
	if c.tail != nil {
		c.tail.next = r
	} else {
		c.head = r
	}
	c.tail = r
	c.count++
	c.mu.Unlock()

	return r
}

// Unregister removes r, waiting for any running invocation of it to return.
func (c *Callback[P]) Unregister(r *Registration[P]) {
	r.unregistering.Store(true)

	c.mu.Lock()
	for r.busy.Load() > 0 {
		c.cond.Wait()
	}

	if r.prev != nil {
		r.prev.next = r.next
	} else {
		c.head = r.next
	}
	if r.next != nil {
		r.next.prev = r.prev
	} else {
		c.tail = r.prev
	}
	c.count--
	c.mu.Unlock()
}

// Invoke calls every listener in registration order. Listeners being
// unregistered are skipped.
func (c *Callback[P]) Invoke(param P) {
	c.mu.RLock()
	for r := c.head; r != nil; {
		if r.unregistering.Load() {
			r = r.next
			continue
		}

		r.busy.Add(1)
		c.mu.RUnlock()

		// Returns with the read lock held.
		c.call(r, param)

		r = r.next
	}
	c.mu.RUnlock()
}

// call runs one listener with the list unlocked. The busy count is dropped
// on the way out, panic or not, so Unregister never waits on a listener that
// has already unwound. A panicking listener leaves the list unlocked.
func (c *Callback[P]) call(r *Registration[P], param P) {
	returned := false
	defer func() {
		c.mu.RLock()
		if r.busy.Add(-1) == 0 && r.unregistering.Load() {
			c.cond.Broadcast()
		}
		if !returned {
			c.mu.RUnlock()
		}
	}()
	r.fn(param, r.context)
	returned = true
}

// Count returns the number of registered listeners.
func (c *Callback[P]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}
