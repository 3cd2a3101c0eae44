package object

import "sync/atomic"

// Object is a reference-counted header followed by a T body.
type Object[T any] struct {
	typ   *Type[T]
	refs  atomic.Int32
	flags objectFlags
	body  T
}

// Releaser is anything that gives up one reference on Release.
type Releaser interface {
	Release()
}

// Body returns the object's body.
func (o *Object[T]) Body() *T { return &o.body }

// Type returns the object's type.
func (o *Object[T]) Type() *Type[T] { return o.typ }

// RefCount returns the current reference count.
func (o *Object[T]) RefCount() int32 { return o.refs.Load() }

// Reference adds one reference.
func (o *Object[T]) Reference() {
	o.refs.Add(1)
}

// ReferenceN adds n references.
func (o *Object[T]) ReferenceN(n int32) {
	o.refs.Add(n)
}

// TryReference adds a reference only if the object is still alive.
// It reports whether the reference was taken.
func (o *Object[T]) TryReference() bool {
	for {
		c := o.refs.Load()
		if c <= 0 {
			return false
		}
		if o.refs.CompareAndSwap(c, c+1) {
			return true
		}
	}
}

// Release drops one reference, destroying the object when none remain.
func (o *Object[T]) Release() {
	o.ReleaseN(1)
}

// ReleaseN drops n references and returns the new count. The object is
// destroyed when the count reaches zero.
func (o *Object[T]) ReleaseN(n int32) int32 {
	c := o.refs.Add(-n)
	if c > 0 {
		return c
	}
	if c < 0 {
		panic(deadObject)
	}
	o.free()
	return 0
}

func (o *Object[T]) free() {
	t := o.typ
	if t.destroy != nil {
		t.destroy(&o.body)
	}
	t.live.Add(-1)

	if o.flags&fromFreeList != 0 {
		var zero T
		o.body = zero
		t.free.Free(o)
	}
}
