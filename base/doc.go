// Package base wires the basekit substrate together: the object type
// registry, the built-in reference-counted container types, logging and the
// thread spawner.
//
// A Runtime is created once, at start-up:
//
//	rt, err := base.Init(base.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	list, err := base.CreateList[uint32](rt, 16)
//	if err != nil {
//	    return err
//	}
//	defer list.Release()
//	list.Body().Add(4)
//
// Container objects are typed by element: the "List" type for uint32 is a
// different object type from the "List" type for string. Each is registered
// the first time it is used.
//
// The containers themselves are not safe for concurrent use; only their
// reference counts are.
package base
