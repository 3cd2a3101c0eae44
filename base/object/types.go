package object

import (
	"reflect"
	"sync/atomic"

	"github.com/joshuapare/basekit/base/freelist"
)

// TypeID identifies a type within its Registry.
type TypeID uint32

// TypeFlags control how objects of a type are allocated.
type TypeFlags uint32

const (
	// UseFreeList serves object blocks from a per-type free list.
	UseFreeList TypeFlags = 1 << iota
)

// DefaultFreeListCount is the pool cap used when UseFreeList is set without
// WithFreeList.
const DefaultFreeListCount = 64

type objectFlags uint8

const (
	fromFreeList objectFlags = 1 << iota
)

// Type describes objects whose body is a T.
type Type[T any] struct {
	id      TypeID
	name    string
	flags   TypeFlags
	goType  reflect.Type
	destroy func(*T)
	free    *freelist.FreeList[Object[T]]

	liveLimit int64
	live      atomic.Int64
	created   atomic.Uint64
}

// TypeOption configures a type at creation.
type TypeOption func(*typeOptions)

type typeOptions struct {
	freeListCount int
	liveLimit     int64
}

// WithFreeList serves object blocks from a free list pooling up to maxCount
// released blocks. It implies UseFreeList.
func WithFreeList(maxCount int) TypeOption {
	return func(o *typeOptions) {
		o.freeListCount = maxCount
	}
}

// WithLiveLimit caps the number of live objects of the type. New returns
// ErrOutOfMemory beyond it. Zero means unlimited.
func WithLiveLimit(n int) TypeOption {
	return func(o *typeOptions) {
		o.liveLimit = int64(n)
	}
}

func newType[T any](id TypeID, name string, flags TypeFlags, destroy func(*T), o typeOptions) *Type[T] {
	t := &Type[T]{
		id:        id,
		name:      name,
		flags:     flags,
		goType:    reflect.TypeFor[T](),
		destroy:   destroy,
		liveLimit: o.liveLimit,
	}
	if o.freeListCount > 0 {
		t.flags |= UseFreeList
	}
	if t.flags&UseFreeList != 0 {
		n := o.freeListCount
		if n <= 0 {
			n = DefaultFreeListCount
		}
		t.free = freelist.New[Object[T]](n)
	}
	return t
}

// ID returns the type's registry ID.
func (t *Type[T]) ID() TypeID { return t.id }

// Name returns the type's name.
func (t *Type[T]) Name() string { return t.name }

// Flags returns the type's flags.
func (t *Type[T]) Flags() TypeFlags { return t.flags }

// Live returns the number of objects of this type that have not been
// destroyed.
func (t *Type[T]) Live() int64 { return t.live.Load() }

// New allocates an object with one reference and a zero body.
func (t *Type[T]) New() (*Object[T], error) {
	if n := t.live.Add(1); t.liveLimit > 0 && n > t.liveLimit {
		t.live.Add(-1)
		return nil, ErrOutOfMemory
	}

	var o *Object[T]
	if t.free != nil {
		// Pooled blocks were cleared when they were destroyed.
		o = t.free.Allocate()
		o.flags = fromFreeList
	} else {
		o = &Object[T]{}
	}
	o.typ = t
	o.refs.Store(1)
	t.created.Add(1)

	return o, nil
}

// MustNew is New for types without a live limit. It panics on failure.
func (t *Type[T]) MustNew() *Object[T] {
	o, err := t.New()
	if err != nil {
		panic(err)
	}
	return o
}

func (t *Type[T]) info() TypeInfo {
	info := TypeInfo{
		ID:              t.id,
		Name:            t.name,
		GoType:          t.goType.String(),
		Flags:           t.flags,
		NumberOfObjects: t.live.Load(),
		TotalCreated:    t.created.Load(),
	}
	if t.free != nil {
		info.FreeListCount = t.free.Count()
	}
	return info
}

func (t *Type[T]) key() typeKey { return typeKey{name: t.name, goType: t.goType} }

func (t *Type[T]) flush() int {
	if t.free == nil {
		return 0
	}
	return t.free.Delete()
}
