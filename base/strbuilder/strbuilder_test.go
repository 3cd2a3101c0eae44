package strbuilder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Cap())
	assert.Equal(t, 100, New(100).Cap())
}

func TestAppend(t *testing.T) {
	b := New(4)
	b.Append("abc")
	b.AppendBytes([]byte("de"))
	b.AppendChar('é')
	b.AppendCharN('-', 3)
	b.AppendFormat("[%d:%s]", 7, "x")

	assert.Equal(t, "abcdeé---[7:x]", b.String())
	assert.Equal(t, len("abcdeé---[7:x]"), b.Len())
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		add     int
		wantCap int
	}{
		{"fits", 8, 8, 8},
		{"doubles", 8, 9, 16},
		{"jumps to required", 8, 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.initial)
			b.Append(strings.Repeat("x", tt.add))
			assert.Equal(t, tt.wantCap, b.Cap())
			assert.Equal(t, tt.add, b.Len())
		})
	}
}

func TestAppendChar_InvalidRuneReservesReplacement(t *testing.T) {
	b := New(1)
	b.AppendChar(-1)
	assert.Equal(t, "\uFFFD", b.String())
	assert.Equal(t, 3, b.Cap())

	b = New(1)
	b.AppendCharN(0xD800, 2)
	assert.Equal(t, "\uFFFD\uFFFD", b.String())
	assert.Equal(t, 6, b.Cap())
}

func TestZeroValue(t *testing.T) {
	var b Builder
	b.Append("hi")
	assert.Equal(t, "hi", b.String())
}

func TestInsert(t *testing.T) {
	b := New(4)
	b.Append("held")
	b.Insert(2, "llo wor")
	assert.Equal(t, "hello world", b.String())

	b.Insert(0, ">")
	b.Insert(b.Len(), "<")
	assert.Equal(t, ">hello world<", b.String())

	assert.Panics(t, func() { b.Insert(-1, "x") })
	assert.Panics(t, func() { b.Insert(b.Len()+1, "x") })
}

func TestRemove(t *testing.T) {
	b := New(0)
	b.Append("hello cruel world")
	b.Remove(5, 6)
	assert.Equal(t, "hello world", b.String())

	b.Remove(0, 0)
	assert.Equal(t, "hello world", b.String())

	b.Remove(5, 6)
	assert.Equal(t, "hello", b.String())

	assert.Panics(t, func() { b.Remove(3, 3) })
	assert.Panics(t, func() { b.Remove(-1, 1) })
}

func TestReset_KeepsCapacity(t *testing.T) {
	b := New(0)
	b.Append(strings.Repeat("a", 100))
	c := b.Cap()

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Equal(t, c, b.Cap())
}

func TestWriter(t *testing.T) {
	b := New(0)
	n, err := b.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = b.WriteString("cd")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "abcd", b.String())
}

func TestReadFrom(t *testing.T) {
	src := strings.Repeat("0123456789", 200)
	b := New(0)
	b.Append("> ")

	n, err := b.ReadFrom(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, int64(len(src)), n)
	assert.Equal(t, "> "+src, b.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadFrom_Error(t *testing.T) {
	_, err := New(0).ReadFrom(failingReader{})
	require.EqualError(t, err, "boom")
}
