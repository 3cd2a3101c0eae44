package hashtable

import (
	"unicode"
	"unicode/utf8"
)

// fnvPrime32 is the 32-bit FNV prime.
const fnvPrime32 uint32 = 0x01000193

// HashBytes hashes b with FNV-1a starting from a zero basis.
// An empty input hashes to 0.
func HashBytes(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return h
}

// HashString hashes s with FNV-1a. With ignoreCase, each rune is upper-cased
// and hashed as a single unit, so strings differing only in case collide on
// purpose.
func HashString(s string, ignoreCase bool) uint32 {
	if !ignoreCase {
		var h uint32
		for i := 0; i < len(s); i++ {
			h ^= uint32(s[i])
			h *= fnvPrime32
		}
		return h
	}

	var h uint32
	for _, r := range s {
		h ^= uint32(unicode.ToUpper(r))
		h *= fnvPrime32
	}
	return h
}

// HashStringX65599 hashes s with the x65599 algorithm used for object
// directory names. With ignoreCase only ASCII a-z is folded.
func HashStringX65599(s string, ignoreCase bool) uint32 {
	var h uint32
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if ignoreCase && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		h = 65599*h + uint32(r)
	}
	return h
}

// HashInt32 mixes a 32-bit integer.
func HashInt32(v uint32) uint32 {
	v ^= (v >> 20) ^ (v >> 12)
	return v ^ (v >> 7) ^ (v >> 4)
}

// HashInt64 mixes a 64-bit integer down to 32 bits.
func HashInt64(v uint64) uint32 {
	v = ^v + (v << 18)
	v ^= v >> 31
	v *= 21
	v ^= v >> 11
	v += v << 6
	v ^= v >> 22
	return uint32(v)
}

// HashUintptr mixes a pointer-sized integer.
func HashUintptr(v uintptr) uint32 {
	return HashInt64(uint64(v))
}
