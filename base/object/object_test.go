package object

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type process struct {
	pid  uint32
	name string
}

func TestNew_StartsWithOneReference(t *testing.T) {
	reg := NewRegistry()
	typ, err := CreateType[process](reg, "Process", 0, nil)
	require.NoError(t, err)

	obj, err := typ.New()
	require.NoError(t, err)
	assert.Equal(t, int32(1), obj.RefCount())
	assert.Equal(t, process{}, *obj.Body())
	assert.Same(t, typ, obj.Type())
	assert.Equal(t, int64(1), typ.Live())
}

func TestRelease_DestructorRunsExactlyOnce(t *testing.T) {
	reg := NewRegistry()
	var calls atomic.Int32
	var seen uint32
	typ, err := CreateType(reg, "Process", 0, func(p *process) {
		calls.Add(1)
		seen = p.pid
	})
	require.NoError(t, err)

	obj, err := typ.New()
	require.NoError(t, err)
	obj.Body().pid = 42

	const n = 5
	for range n {
		obj.Reference()
	}
	for range n {
		obj.Release()
		require.Zero(t, calls.Load(), "destroyed while references remain")
	}
	obj.Release()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, uint32(42), seen)
	assert.Zero(t, typ.Live())
}

func TestReleaseN(t *testing.T) {
	reg := NewRegistry()
	destroyed := false
	typ := MustCreateType(reg, "Process", 0, func(*process) { destroyed = true })

	obj := typ.MustNew()
	obj.ReferenceN(3)
	assert.Equal(t, int32(4), obj.RefCount())

	assert.Equal(t, int32(1), obj.ReleaseN(3))
	assert.False(t, destroyed)
	assert.Equal(t, int32(0), obj.ReleaseN(1))
	assert.True(t, destroyed)
}

func TestRelease_DeadObjectPanics(t *testing.T) {
	reg := NewRegistry()
	typ := MustCreateType[process](reg, "Process", 0, nil)

	obj := typ.MustNew()
	obj.Release()
	assert.PanicsWithValue(t, deadObject, func() { obj.Release() })
}

func TestTryReference(t *testing.T) {
	reg := NewRegistry()
	typ := MustCreateType[process](reg, "Process", 0, nil)

	obj := typ.MustNew()
	require.True(t, obj.TryReference())
	assert.Equal(t, int32(2), obj.RefCount())

	obj.ReleaseN(2)
	assert.False(t, obj.TryReference())
}

func TestFreeList_ReusesBlocks(t *testing.T) {
	reg := NewRegistry()
	typ, err := CreateType[process](reg, "Process", UseFreeList, nil, WithFreeList(4))
	require.NoError(t, err)

	first := typ.MustNew()
	first.Body().name = "stale"
	first.Release()

	second := typ.MustNew()
	assert.Same(t, first, second, "released block should be reused")
	assert.Equal(t, process{}, *second.Body(), "reused body must be zero")
	assert.Equal(t, int32(1), second.RefCount())

	info, ok := reg.Lookup("Process")
	require.True(t, ok)
	assert.Equal(t, uint64(2), info.TotalCreated)
	assert.Equal(t, int64(1), info.NumberOfObjects)
	assert.Equal(t, 0, info.FreeListCount)
}

func TestFreeList_FlagWithoutCountUsesDefault(t *testing.T) {
	reg := NewRegistry()
	typ := MustCreateType[process](reg, "Process", UseFreeList, nil)
	require.NotNil(t, typ.free)
	assert.Equal(t, DefaultFreeListCount, typ.free.MaxCount())
}

func TestWithFreeList_ImpliesFlag(t *testing.T) {
	reg := NewRegistry()
	typ := MustCreateType[process](reg, "Process", 0, nil, WithFreeList(8))
	assert.NotZero(t, typ.Flags()&UseFreeList)
}

func TestWithLiveLimit(t *testing.T) {
	reg := NewRegistry()
	typ := MustCreateType[process](reg, "Process", 0, nil, WithLiveLimit(2))

	a, err := typ.New()
	require.NoError(t, err)
	_, err = typ.New()
	require.NoError(t, err)

	_, err = typ.New()
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, int64(2), typ.Live())

	a.Release()
	_, err = typ.New()
	require.NoError(t, err)
}

func TestConcurrentReferenceRelease(t *testing.T) {
	reg := NewRegistry()
	var calls atomic.Int32
	typ := MustCreateType(reg, "Process", UseFreeList, func(*process) { calls.Add(1) })

	obj := typ.MustNew()

	const workers = 8
	const rounds = 1000
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				obj.Reference()
				obj.Release()
			}
		}()
	}
	wg.Wait()

	require.Zero(t, calls.Load())
	obj.Release()
	assert.Equal(t, int32(1), calls.Load())
}
