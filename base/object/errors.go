package object

import "errors"

var (
	// ErrOutOfMemory indicates a type's live-object limit was reached.
	ErrOutOfMemory = errors.New("object: out of memory")

	// ErrTypeExists indicates a type with the same name and body type is
	// already registered.
	ErrTypeExists = errors.New("object: type already exists")

	// ErrTooManyTypes indicates the registry's type table is full.
	ErrTooManyTypes = errors.New("object: type table full")

	// ErrInvalidName indicates an empty type name.
	ErrInvalidName = errors.New("object: type name must not be empty")
)

// deadObject is the panic message for a release past zero.
const deadObject = "object: release of dead object"
