package object

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/joshuapare/basekit/internal/logger"
)

// DefaultMaxTypes is the default size of a registry's type table.
const DefaultMaxTypes = 256

// TypeInfo is a snapshot of one registered type.
type TypeInfo struct {
	ID              TypeID
	Name            string
	GoType          string
	Flags           TypeFlags
	FreeListCount   int   // blocks currently pooled
	NumberOfObjects int64 // live objects
	TotalCreated    uint64
}

type typeKey struct {
	name   string
	goType reflect.Type
}

type registered interface {
	info() TypeInfo
	key() typeKey
	flush() int
}

// Registry owns a set of object types.
type Registry struct {
	mu       sync.Mutex
	maxTypes int
	types    []registered
	byKey    map[typeKey]registered
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxTypes sets the size of the type table. Values <= 0 keep the default.
func WithMaxTypes(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.maxTypes = n
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		maxTypes: DefaultMaxTypes,
		byKey:    make(map[typeKey]registered),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateType registers a new type whose objects carry a T body. destroy may
// be nil. It fails with ErrTypeExists if the name is already registered for
// the same body type.
func CreateType[T any](r *Registry, name string, flags TypeFlags, destroy func(*T), opts ...TypeOption) (*Type[T], error) {
	t, created, err := lookupOrCreate(r, name, flags, destroy, opts)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, fmt.Errorf("%w: %s", ErrTypeExists, name)
	}
	return t, nil
}

// MustCreateType is CreateType for start-up code. It panics on failure.
func MustCreateType[T any](r *Registry, name string, flags TypeFlags, destroy func(*T), opts ...TypeOption) *Type[T] {
	t, err := CreateType(r, name, flags, destroy, opts...)
	if err != nil {
		panic(fmt.Sprintf("object: create type %q: %v", name, err))
	}
	return t
}

// EnsureType returns the type registered under name for body T, creating it
// with the given flags, destructor and options if it does not exist yet.
func EnsureType[T any](r *Registry, name string, flags TypeFlags, destroy func(*T), opts ...TypeOption) (*Type[T], error) {
	t, _, err := lookupOrCreate(r, name, flags, destroy, opts)
	return t, err
}

func lookupOrCreate[T any](r *Registry, name string, flags TypeFlags, destroy func(*T), opts []TypeOption) (*Type[T], bool, error) {
	if name == "" {
		return nil, false, ErrInvalidName
	}

	key := typeKey{name: name, goType: reflect.TypeFor[T]()}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[key]; ok {
		return existing.(*Type[T]), false, nil
	}
	if len(r.types) >= r.maxTypes {
		return nil, false, fmt.Errorf("%w: %d types", ErrTooManyTypes, r.maxTypes)
	}

	var o typeOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := newType(TypeID(len(r.types)), name, flags, destroy, o)
	r.types = append(r.types, t)
	r.byKey[key] = t

	logger.Debug("object type created",
		"id", t.id, "name", name, "go_type", key.goType.String(), "flags", t.flags)

	return t, true, nil
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.types)
}

// Types returns a snapshot of every registered type in ID order.
func (r *Registry) Types() []TypeInfo {
	r.mu.Lock()
	types := append([]registered(nil), r.types...)
	r.mu.Unlock()

	infos := make([]TypeInfo, len(types))
	for i, t := range types {
		infos[i] = t.info()
	}
	return infos
}

// Lookup returns the first type registered under name.
func (r *Registry) Lookup(name string) (TypeInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.types {
		if t.key().name == name {
			return t.info(), true
		}
	}
	return TypeInfo{}, false
}

// Flush empties every type's free list and returns the number of blocks
// dropped. Types stay registered.
func (r *Registry) Flush() int {
	r.mu.Lock()
	types := append([]registered(nil), r.types...)
	r.mu.Unlock()

	n := 0
	for _, t := range types {
		n += t.flush()
	}
	return n
}
