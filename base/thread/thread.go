package thread

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/basekit/base/callback"
	"github.com/joshuapare/basekit/base/freelist"
	"github.com/joshuapare/basekit/internal/logger"
)

// DefaultContextCache is the number of start contexts kept for reuse.
const DefaultContextCache = 16

// EntryFunc is a thread's entry point.
type EntryFunc func(param any) error

// Initializer runs on every new thread before its entry point. The returned
// cleanup, if non-nil, runs on the same thread after the entry point returns.
// An error stops the thread before its entry point runs.
type Initializer func() (cleanup func(), err error)

// Thread is a running or finished thread.
type Thread struct {
	id        uint64
	stackSize int
	osID      atomic.Uint64

	done chan struct{}
	err  error
}

// ID returns the spawner-assigned id, starting at 1.
func (t *Thread) ID() uint64 { return t.id }

// OSThreadID returns the OS id of the thread, or 0 before the thread has
// started or on platforms without one.
func (t *Thread) OSThreadID() uint64 { return t.osID.Load() }

// StackSize returns the stack size requested at creation.
func (t *Thread) StackSize() int { return t.stackSize }

// Done is closed when the thread has finished, after Exited has fired.
func (t *Thread) Done() <-chan struct{} { return t.done }

// Wait blocks until the thread finishes and returns the entry point's error.
func (t *Thread) Wait() error {
	<-t.done
	return t.err
}

type startContext struct {
	entry  EntryFunc
	param  any
	thread *Thread
}

// Spawner creates threads.
type Spawner struct {
	// Started fires on the new thread just before its entry point.
	Started *callback.Callback[*Thread]
	// Exited fires on the thread after teardown.
	Exited *callback.Callback[*Thread]

	contexts   *freelist.FreeList[startContext]
	maxThreads int
	init       Initializer

	mu      sync.Mutex
	closed  bool
	running int
	wg      sync.WaitGroup
	nextID  atomic.Uint64
}

// Option configures a Spawner.
type Option func(*Spawner)

// WithContextCache sets how many start contexts are kept for reuse.
func WithContextCache(n int) Option {
	return func(s *Spawner) {
		s.contexts = freelist.New[startContext](n)
	}
}

// WithMaxThreads limits the number of concurrently running threads.
// Zero means unlimited.
func WithMaxThreads(n int) Option {
	return func(s *Spawner) { s.maxThreads = n }
}

// WithInitializer runs fn on every new thread before its entry point.
func WithInitializer(fn Initializer) Option {
	return func(s *Spawner) { s.init = fn }
}

// NewSpawner returns a spawner ready to create threads.
func NewSpawner(opts ...Option) *Spawner {
	s := &Spawner{
		Started:  callback.New[*Thread](),
		Exited:   callback.New[*Thread](),
		contexts: freelist.New[startContext](DefaultContextCache),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateThread starts entry(param) on a new OS thread.
func (s *Spawner) CreateThread(stackSize int, entry EntryFunc, param any) (*Thread, error) {
	if entry == nil {
		return nil, ErrNilEntry
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.maxThreads > 0 && s.running >= s.maxThreads {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: limit %d", ErrTooManyThreads, s.maxThreads)
	}
	s.running++
	s.wg.Add(1)
	s.mu.Unlock()

	t := &Thread{
		id:        s.nextID.Add(1),
		stackSize: stackSize,
		done:      make(chan struct{}),
	}

	ctx := s.contexts.Allocate()
	ctx.entry = entry
	ctx.param = param
	ctx.thread = t

	go s.run(ctx)

	return t, nil
}

// Running returns the number of threads that have not finished.
func (s *Spawner) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Close stops accepting threads, waits for running ones to finish and
// flushes the start-context cache. It is safe to call more than once.
func (s *Spawner) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
	s.contexts.Delete()
}

func (s *Spawner) run(ctx *startContext) {
	// Never unlocked: the OS thread exits with this goroutine.
	runtime.LockOSThread()

	entry, param, t := ctx.entry, ctx.param, ctx.thread
	*ctx = startContext{}
	s.contexts.Free(ctx)

	defer s.finish(t)

	t.osID.Store(osThreadID())
	logger.Debug("thread started", "id", t.id, "os_id", t.osID.Load())

	defer platformInit()()

	if s.init != nil {
		cleanup, err := s.init()
		if err != nil {
			t.err = fmt.Errorf("thread: initializer: %w", err)
			return
		}
		if cleanup != nil {
			defer cleanup()
		}
	}

	s.Started.Invoke(t)
	t.err = call(t, entry, param)
}

func (s *Spawner) finish(t *Thread) {
	s.Exited.Invoke(t)
	logger.Debug("thread exited", "id", t.id, "err", t.err)

	close(t.done)

	s.mu.Lock()
	s.running--
	s.mu.Unlock()
	s.wg.Done()
}

func call(t *Thread, entry EntryFunc, param any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("thread entry point panicked",
				"id", t.id, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	return entry(param)
}
