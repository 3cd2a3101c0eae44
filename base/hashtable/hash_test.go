package hashtable

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashBytes(t *testing.T) {
	require.Equal(t, uint32(0), HashBytes(nil))

	// Same multiply/xor steps as FNV-1a, only the basis differs.
	var h uint32
	for _, c := range []byte("abc") {
		h ^= uint32(c)
		h *= 16777619
	}
	require.Equal(t, h, HashBytes([]byte("abc")))

	std := fnv.New32a()
	std.Write([]byte("abc"))
	require.NotEqual(t, std.Sum32(), HashBytes([]byte("abc")), "zero basis differs from standard FNV-1a")
}

func TestHashString(t *testing.T) {
	require.Equal(t, HashBytes([]byte("Explorer.exe")), HashString("Explorer.exe", false))
	require.Equal(t, HashString("EXPLORER.EXE", true), HashString("explorer.exe", true))
	require.NotEqual(t, HashString("EXPLORER.EXE", false), HashString("explorer.exe", false))
	require.Equal(t, HashString("ÄBC", true), HashString("äbc", true))
}

func TestHashStringX65599(t *testing.T) {
	require.Equal(t, uint32(0), HashStringX65599("", false))
	require.Equal(t, uint32('A'), HashStringX65599("a", true))
	require.Equal(t, uint32(65599*'A'+'B'), HashStringX65599("ab", true))
	require.Equal(t, HashStringX65599("Device", true), HashStringX65599("DEVICE", true))
}

func TestHashInts_Spread(t *testing.T) {
	seen := map[uint32]bool{}
	for i := range uint32(1000) {
		seen[HashInt32(i)&1023] = true
	}
	require.Greater(t, len(seen), 500)

	require.NotEqual(t, HashInt64(1), HashInt64(2))
	require.Equal(t, HashInt64(0x1234), HashUintptr(0x1234))
}

func TestPrimeAtLeast(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 3}, {1, 3}, {3, 3}, {4, 7}, {100, 0x6b}, {0x6dda89, 0x6dda89},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, PrimeAtLeast(tt.in), "PrimeAtLeast(%d)", tt.in)
	}

	p := PrimeAtLeast(0x6dda8a)
	require.GreaterOrEqual(t, p, uint32(0x6dda8a))
	require.True(t, isOddPrime(p))
}

func TestRoundUpToPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{1, 1}, {2, 2}, {3, 4}, {5, 8}, {64, 64}, {65, 128},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RoundUpToPowerOfTwo(tt.in))
	}
}
