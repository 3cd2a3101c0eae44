package arraylist

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ZeroCapacityBecomesOne(t *testing.T) {
	l := New[int](0)
	require.Equal(t, 1, l.Capacity())
	require.Equal(t, 0, l.Count())
}

func TestAdd_DoublesCapacity(t *testing.T) {
	l := New[int](2)
	for i := range 5 {
		l.Add(i)
	}
	require.Equal(t, 5, l.Count())
	require.Equal(t, 8, l.Capacity())
	require.Equal(t, []int{0, 1, 2, 3, 4}, l.Items())
}

func TestAdd_ZeroValueGrowsFromNothing(t *testing.T) {
	var l List[string]
	var caps []int
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Add(s)
		caps = append(caps, l.Capacity())
	}
	require.Equal(t, []int{1, 2, 4, 4, 8}, caps)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, l.Items())
}

func TestAddRange_GrowsToFit(t *testing.T) {
	l := New[int](2)
	l.AddRange(1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 7, l.Count())
	require.Equal(t, 7, l.Capacity(), "doubling is not enough, so capacity jumps to need")
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, l.Items())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		index int
		items []string
		want  []string
	}{
		{"front", []string{"b", "c"}, 0, []string{"a"}, []string{"a", "b", "c"}},
		{"middle", []string{"a", "d"}, 1, []string{"b", "c"}, []string{"a", "b", "c", "d"}},
		{"end", []string{"a"}, 1, []string{"b"}, []string{"a", "b"}},
		{"empty", nil, 0, []string{"x"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[string](1)
			l.AddRange(tt.start...)
			l.InsertRange(tt.index, tt.items...)
			require.Equal(t, tt.want, l.Items())
		})
	}
}

func TestInsert_OutOfRangePanics(t *testing.T) {
	l := New[int](1)
	require.Panics(t, func() { l.Insert(2, 1) })
}

func TestRemoveRange(t *testing.T) {
	l := New[int](4)
	l.AddRange(0, 1, 2, 3, 4, 5)

	l.RemoveRange(1, 2)
	require.Equal(t, []int{0, 3, 4, 5}, l.Items())

	l.Remove(3)
	require.Equal(t, []int{0, 3, 4}, l.Items())

	l.RemoveRange(0, 3)
	require.Equal(t, 0, l.Count())

	require.Panics(t, func() { l.RemoveRange(0, 1) })
}

func TestRemoveRange_DropsReferences(t *testing.T) {
	a, b := new(int), new(int)
	l := New[*int](2)
	l.AddRange(a, b)
	l.Remove(0)
	require.Nil(t, l.items[1], "vacated slot must not pin the old pointer")
}

func TestIndexOf(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	l := New[*int](2)
	l.AddRange(a, b)

	require.Equal(t, 0, l.IndexOf(a))
	require.Equal(t, 1, l.IndexOf(b))
	require.Equal(t, -1, l.IndexOf(c))
}

func TestSort_WithCapturedContext(t *testing.T) {
	l := New[int](4)
	l.AddRange(5, 3, 9, 1)

	descending := true
	l.Sort(func(a, b int) int {
		if descending {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	})
	require.Equal(t, []int{9, 5, 3, 1}, l.Items())
}

func TestResize(t *testing.T) {
	l := New[int](1)
	l.AddRange(1, 2, 3)

	require.ErrorIs(t, l.Resize(2), ErrCapacityTooSmall)
	require.NoError(t, l.Resize(10))
	require.Equal(t, 10, l.Capacity())
	require.Equal(t, []int{1, 2, 3}, l.Items())
}

func TestClearAndAll(t *testing.T) {
	l := New[int](1)
	l.AddRange(10, 20, 30)

	var got []int
	for i, v := range l.All() {
		require.Equal(t, l.Get(i), v)
		got = append(got, v)
	}
	require.Equal(t, []int{10, 20, 30}, got)

	capBefore := l.Capacity()
	l.Clear()
	require.Equal(t, 0, l.Count())
	require.Equal(t, capBefore, l.Capacity())
}
