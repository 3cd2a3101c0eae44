// Package thread starts OS-thread-bound workers with per-thread setup and
// teardown around the caller's entry point.
//
// Each thread is a goroutine locked to its OS thread for its whole life.
// Before the entry point runs, the new thread performs platform setup (a COM
// apartment on Windows), records its OS thread id, runs the spawner's
// initializer and fires Started. After the entry point returns the same
// steps are undone in reverse order and Exited fires. Because the goroutine
// never unlocks its thread, the OS thread ends with it.
//
// The small start context handed from CreateThread to the new thread comes
// from a free list, so spawning at a steady rate does not allocate one per
// thread.
//
// Go does not expose per-goroutine stack sizes; the stack size given to
// CreateThread is recorded on the Thread and otherwise ignored.
package thread
