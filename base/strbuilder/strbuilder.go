// Package strbuilder provides a growable UTF-8 string buffer with explicit
// capacity management and in-place insert and remove.
package strbuilder

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/joshuapare/basekit/internal/grow"
)

// DefaultCapacity is used when New is given a capacity <= 0.
const DefaultCapacity = 16

// Builder accumulates UTF-8 text. The zero value is an empty builder.
// A Builder is not safe for concurrent use.
type Builder struct {
	buf []byte
}

// New returns a builder with room for capacity bytes.
func New(capacity int) *Builder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the allocated capacity in bytes.
func (b *Builder) Cap() int { return cap(b.buf) }

// String returns a copy of the accumulated text.
func (b *Builder) String() string { return string(b.buf) }

// Bytes returns the accumulated text. The slice aliases the builder and is
// valid until the next mutation.
func (b *Builder) Bytes() []byte { return b.buf }

// Reset empties the builder, keeping its allocation.
func (b *Builder) Reset() { b.buf = b.buf[:0] }

// Append appends s.
func (b *Builder) Append(s string) {
	b.ensure(len(s))
	b.buf = append(b.buf, s...)
}

// AppendBytes appends p.
func (b *Builder) AppendBytes(p []byte) {
	b.ensure(len(p))
	b.buf = append(b.buf, p...)
}

// AppendChar appends the UTF-8 encoding of r.
func (b *Builder) AppendChar(r rune) {
	b.ensure(runeSize(r))
	b.buf = utf8.AppendRune(b.buf, r)
}

// AppendCharN appends r n times.
func (b *Builder) AppendCharN(r rune, n int) {
	if n <= 0 {
		return
	}
	b.ensure(grow.Size(runeSize(r), n))
	for range n {
		b.buf = utf8.AppendRune(b.buf, r)
	}
}

// AppendFormat appends fmt.Sprintf(format, args...).
func (b *Builder) AppendFormat(format string, args ...any) {
	b.buf = fmt.Appendf(b.buf, format, args...)
}

// Insert inserts s at byte offset i. It panics if i is out of range.
func (b *Builder) Insert(i int, s string) {
	if i < 0 || i > len(b.buf) {
		panic(fmt.Sprintf("strbuilder: insert index %d out of range [0:%d]", i, len(b.buf)))
	}
	n := len(b.buf)
	b.ensure(len(s))
	b.buf = b.buf[:n+len(s)]
	copy(b.buf[i+len(s):], b.buf[i:n])
	copy(b.buf[i:], s)
}

// Remove deletes count bytes starting at start. It panics if the range is
// out of bounds.
func (b *Builder) Remove(start, count int) {
	if start < 0 || count < 0 || start+count > len(b.buf) {
		panic(fmt.Sprintf("strbuilder: remove [%d:%d] out of range [0:%d]", start, start+count, len(b.buf)))
	}
	n := copy(b.buf[start:], b.buf[start+count:])
	b.buf = b.buf[:start+n]
}

// Write appends p. It always returns len(p), nil.
func (b *Builder) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// WriteString appends s. It always returns len(s), nil.
func (b *Builder) WriteString(s string) (int, error) {
	b.Append(s)
	return len(s), nil
}

// ReadFrom appends everything read from r until EOF.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		b.ensure(512)
		n, err := r.Read(b.buf[len(b.buf):cap(b.buf)])
		b.buf = b.buf[:len(b.buf)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// runeSize returns the encoded length of r. Invalid runes are written as
// utf8.RuneError.
func runeSize(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// ensure grows the allocation so n more bytes fit. Growth doubles the
// capacity, or jumps straight to the required length when doubling is not
// enough.
func (b *Builder) ensure(n int) {
	need := grow.Need(len(b.buf), n)
	if need <= cap(b.buf) {
		return
	}
	buf := make([]byte, len(b.buf), grow.Capacity(cap(b.buf), need))
	copy(buf, b.buf)
	b.buf = buf
}
