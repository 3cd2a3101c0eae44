// Package object implements reference-counted objects and the type registry
// that describes them.
//
// # Overview
//
// Every object carries a small header (its type, an atomic reference count
// and flags) in the same allocation as its body. A new object starts with one
// reference. Reference adds one; Release drops one. When the count reaches
// zero the type's destructor runs exactly once, then the block is freed:
// back to the type's free list when the type has one, otherwise to the
// garbage collector.
//
//	reg := object.NewRegistry()
//	procType, err := object.CreateType(reg, "Process", object.UseFreeList,
//	    func(p *Process) { p.handle.Close() },
//	    object.WithFreeList(128),
//	)
//	if err != nil {
//	    return err // fatal at startup
//	}
//
//	obj, err := procType.New()
//	if err != nil {
//	    return err
//	}
//	obj.Body().pid = 4
//	obj.Reference() // share it
//	obj.Release()
//	obj.Release()   // destructor runs here
//
// # Destructors
//
// A destructor releases what the body refers to: handles, child objects,
// buffers. It must not try to free the object itself.
//
// # Registry
//
// A Registry is the explicit, initialization-time context that owns every
// type. Types are created once, typically during start-up, and live as long
// as the registry. Registry.Types reports live and total object counts per
// type.
//
// # Thread Safety
//
// Reference, Release and TryReference are safe from any goroutine on any
// live object and never block. Releasing an object whose count is already
// zero is a bug in the caller and panics. Registry methods are safe for
// concurrent use.
package object
