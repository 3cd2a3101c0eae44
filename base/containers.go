package base

import (
	"github.com/joshuapare/basekit/base/arraylist"
	"github.com/joshuapare/basekit/base/hashtable"
	"github.com/joshuapare/basekit/base/object"
	"github.com/joshuapare/basekit/base/pointerlist"
	"github.com/joshuapare/basekit/base/queue"
	"github.com/joshuapare/basekit/base/strbuilder"
)

// CreateList returns a reference-counted list with room for capacity items.
func CreateList[T comparable](rt *Runtime, capacity int) (*object.Object[arraylist.List[T]], error) {
	typ, err := object.EnsureType(rt.registry, "List", object.UseFreeList,
		(*arraylist.List[T]).Reset,
		object.WithFreeList(rt.cfg.ListFreeListCount))
	if err != nil {
		return nil, err
	}
	obj, err := typ.New()
	if err != nil {
		return nil, err
	}
	obj.Body().Init(capacity)
	return obj, nil
}

// CreatePointerList returns a reference-counted pointer list with room for
// capacity elements.
func CreatePointerList[T comparable](rt *Runtime, capacity int) (*object.Object[pointerlist.List[T]], error) {
	typ, err := object.EnsureType(rt.registry, "PointerList", 0, (*pointerlist.List[T]).Reset)
	if err != nil {
		return nil, err
	}
	obj, err := typ.New()
	if err != nil {
		return nil, err
	}
	obj.Body().Init(capacity)
	return obj, nil
}

// CreateHashtable returns a reference-counted hashtable.
func CreateHashtable[T any](rt *Runtime, equal hashtable.EqualFunc[T], hash hashtable.HashFunc[T], capacity int, opts ...hashtable.Option) (*object.Object[hashtable.Table[T]], error) {
	typ, err := object.EnsureType(rt.registry, "Hashtable", object.UseFreeList,
		(*hashtable.Table[T]).Reset,
		object.WithFreeList(rt.cfg.HashtableFreeListCount))
	if err != nil {
		return nil, err
	}
	obj, err := typ.New()
	if err != nil {
		return nil, err
	}
	obj.Body().Init(equal, hash, capacity, opts...)
	return obj, nil
}

// CreateQueue returns a reference-counted queue with room for capacity items.
func CreateQueue[T any](rt *Runtime, capacity int) (*object.Object[queue.Queue[T]], error) {
	typ, err := object.EnsureType(rt.registry, "Queue", 0, (*queue.Queue[T]).Reset)
	if err != nil {
		return nil, err
	}
	obj, err := typ.New()
	if err != nil {
		return nil, err
	}
	obj.Body().Init(capacity)
	return obj, nil
}

// CreateString returns a reference-counted string.
func (rt *Runtime) CreateString(s string) (*object.Object[string], error) {
	obj, err := rt.stringType.New()
	if err != nil {
		return nil, err
	}
	*obj.Body() = s
	return obj, nil
}

// CreateBytes returns a reference-counted copy of b.
func (rt *Runtime) CreateBytes(b []byte) (*object.Object[[]byte], error) {
	obj, err := rt.bytesType.New()
	if err != nil {
		return nil, err
	}
	*obj.Body() = append([]byte(nil), b...)
	return obj, nil
}

// FinalString returns the builder's text as a reference-counted string and
// resets the builder.
func (rt *Runtime) FinalString(b *strbuilder.Builder) (*object.Object[string], error) {
	obj, err := rt.CreateString(b.String())
	if err != nil {
		return nil, err
	}
	b.Reset()
	return obj, nil
}
