package thread

import "errors"

var (
	// ErrClosed indicates the spawner no longer accepts threads.
	ErrClosed = errors.New("thread: spawner closed")

	// ErrTooManyThreads indicates the spawner's thread limit was reached.
	ErrTooManyThreads = errors.New("thread: too many threads")

	// ErrNilEntry indicates CreateThread was given a nil entry point.
	ErrNilEntry = errors.New("thread: nil entry point")

	// ErrPanicked indicates the entry point panicked.
	ErrPanicked = errors.New("thread: entry point panicked")
)
