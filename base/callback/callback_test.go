package callback

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoke_RegistrationOrder(t *testing.T) {
	cb := New[int]()
	var got []string

	cb.Register(func(p int, ctx any) { got = append(got, ctx.(string)) }, "a")
	cb.Register(func(p int, ctx any) { got = append(got, ctx.(string)) }, "b")
	cb.Register(func(p int, ctx any) { got = append(got, ctx.(string)) }, "c")

	cb.Invoke(1)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 3, cb.Count())
}

func TestInvoke_PassesParam(t *testing.T) {
	cb := New[string]()
	var got string
	cb.Register(func(p string, _ any) { got = p }, nil)

	cb.Invoke("started")
	assert.Equal(t, "started", got)
}

func TestInvoke_Empty(t *testing.T) {
	cb := New[int]()
	assert.NotPanics(t, func() { cb.Invoke(0) })
	assert.Zero(t, cb.Count())
}

func TestUnregister_RemovesListener(t *testing.T) {
	tests := []struct {
		name    string
		remove  int
		wantRun []int
	}{
		{"head", 0, []int{1, 2}},
		{"middle", 1, []int{0, 2}},
		{"tail", 2, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := New[int]()
			var ran []int
			regs := make([]*Registration[int], 3)
			for i := range regs {
				regs[i] = cb.Register(func(int, any) { ran = append(ran, i) }, nil)
			}

			cb.Unregister(regs[tt.remove])
			cb.Invoke(0)

			assert.Equal(t, tt.wantRun, ran)
			assert.Equal(t, 2, cb.Count())
		})
	}
}

func TestUnregister_All(t *testing.T) {
	cb := New[int]()
	a := cb.Register(func(int, any) { t.Fatal("unregistered listener ran") }, nil)
	b := cb.Register(func(int, any) { t.Fatal("unregistered listener ran") }, nil)

	cb.Unregister(b)
	cb.Unregister(a)
	cb.Invoke(0)
	assert.Zero(t, cb.Count())

	// The list is reusable after being emptied.
	ran := false
	cb.Register(func(int, any) { ran = true }, nil)
	cb.Invoke(0)
	assert.True(t, ran)
}

func TestUnregister_WaitsForRunningListener(t *testing.T) {
	cb := New[int]()
	const sleep = 100 * time.Millisecond

	entered := make(chan struct{})
	var finished atomic.Bool
	reg := cb.Register(func(int, any) {
		close(entered)
		time.Sleep(sleep)
		finished.Store(true)
	}, nil)

	go cb.Invoke(0)
	<-entered

	start := time.Now()
	cb.Unregister(reg)
	elapsed := time.Since(start)

	assert.True(t, finished.Load(), "Unregister returned before the listener finished")
	assert.GreaterOrEqual(t, elapsed, sleep/2)
	assert.Zero(t, cb.Count())
}

func TestUnregister_NeverCalledAfterReturn(t *testing.T) {
	cb := New[int]()
	var afterUnregister atomic.Bool
	var calledLate atomic.Int32

	reg := cb.Register(func(int, any) {
		if afterUnregister.Load() {
			calledLate.Add(1)
		}
	}, nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					cb.Invoke(0)
				}
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	cb.Unregister(reg)
	afterUnregister.Store(true)
	time.Sleep(10 * time.Millisecond)
	close(stop)
	wg.Wait()

	assert.Zero(t, calledLate.Load())
}

func TestInvoke_ListenerMayRegister(t *testing.T) {
	cb := New[int]()
	var lateRuns atomic.Int32
	registered := false

	cb.Register(func(int, any) {
		if !registered {
			registered = true
			cb.Register(func(int, any) { lateRuns.Add(1) }, nil)
		}
	}, nil)

	cb.Invoke(0)
	require.Equal(t, 2, cb.Count())

	// A listener appended during an invocation is reached by that walk.
	assert.Equal(t, int32(1), lateRuns.Load())

	cb.Invoke(0)
	assert.Equal(t, int32(2), lateRuns.Load())
}

func TestInvoke_ListenerMayUnregisterAnother(t *testing.T) {
	cb := New[int]()
	var second *Registration[int]
	secondRan := false

	cb.Register(func(int, any) {
		if second != nil {
			cb.Unregister(second)
			second = nil
		}
	}, nil)
	second = cb.Register(func(int, any) { secondRan = true }, nil)

	cb.Invoke(0)
	assert.False(t, secondRan)
	assert.Equal(t, 1, cb.Count())
}

func TestConcurrentRegisterInvokeUnregister(t *testing.T) {
	cb := New[int]()
	var calls atomic.Int64

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 200 {
				r := cb.Register(func(int, any) { calls.Add(1) }, nil)
				cb.Unregister(r)
			}
		}()
		go func() {
			defer wg.Done()
			for range 200 {
				cb.Invoke(0)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, cb.Count())
}

func BenchmarkInvoke(b *testing.B) {
	cb := New[int]()
	for range 8 {
		cb.Register(func(int, any) {}, nil)
	}
	for b.Loop() {
		cb.Invoke(0)
	}
}

func TestInvoke_PanickingListenerCanBeUnregistered(t *testing.T) {
	cb := New[int]()
	reg := cb.Register(func(int, any) { panic("listener failed") }, nil)

	func() {
		defer func() {
			require.Equal(t, "listener failed", recover())
		}()
		cb.Invoke(1)
	}()

	done := make(chan struct{})
	go func() {
		cb.Unregister(reg)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Unregister still waiting on a listener that panicked")
	}
	assert.Zero(t, cb.Count())

	// The list lock was released by the unwinding Invoke.
	ran := false
	cb.Register(func(int, any) { ran = true }, nil)
	cb.Invoke(2)
	assert.True(t, ran)
}
