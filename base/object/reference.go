package object

// SetReference stores o in *slot, taking a reference to o and releasing the
// previous occupant.
func SetReference[T any](slot **Object[T], o *Object[T]) {
	old := *slot
	if o != nil {
		o.Reference()
	}
	*slot = o
	if old != nil {
		old.Release()
	}
}

// MoveReference stores o in *slot without taking a reference, releasing the
// previous occupant. The caller's reference to o moves into the slot.
func MoveReference[T any](slot **Object[T], o *Object[T]) {
	old := *slot
	*slot = o
	if old != nil {
		old.Release()
	}
}

// ClearReference releases the object in *slot, if any, and sets it to nil.
func ClearReference[T any](slot **Object[T]) {
	MoveReference(slot, nil)
}
