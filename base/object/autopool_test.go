package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoPool_Drain(t *testing.T) {
	reg := NewRegistry()
	destroyed := 0
	typ := MustCreateType(reg, "Process", 0, func(*process) { destroyed++ })

	var pool AutoPool
	for range 3 {
		obj := Auto(&pool, typ.MustNew())
		obj.Body().pid = 1
	}
	require.Equal(t, 3, pool.Len())
	require.Zero(t, destroyed)

	assert.Equal(t, 3, pool.Drain())
	assert.Equal(t, 3, destroyed)
	assert.Zero(t, pool.Len())
	assert.Zero(t, pool.Drain())
}

func TestAutoPool_DestructorQueuesMore(t *testing.T) {
	reg := NewRegistry()
	var pool AutoPool

	childType := MustCreateType[process](reg, "Child", 0, nil)
	type parent struct{ child *Object[process] }
	parentType := MustCreateType(reg, "Parent", 0, func(p *parent) {
		pool.Add(p.child)
	})

	par := parentType.MustNew()
	par.Body().child = childType.MustNew()
	pool.Add(par)

	assert.Equal(t, 2, pool.Drain())
	assert.Zero(t, childType.Live())
}

func TestReferenceHelpers(t *testing.T) {
	reg := NewRegistry()
	typ := MustCreateType[process](reg, "Process", 0, nil)

	var slot *Object[process]
	a := typ.MustNew()

	SetReference(&slot, a)
	assert.Same(t, a, slot)
	assert.Equal(t, int32(2), a.RefCount())

	b := typ.MustNew()
	MoveReference(&slot, b)
	assert.Same(t, b, slot)
	assert.Equal(t, int32(1), a.RefCount())
	assert.Equal(t, int32(1), b.RefCount())

	ClearReference(&slot)
	assert.Nil(t, slot)
	assert.Zero(t, b.RefCount())

	// Storing the occupant again keeps it alive.
	SetReference(&slot, a)
	SetReference(&slot, a)
	assert.Equal(t, int32(2), a.RefCount())
}
