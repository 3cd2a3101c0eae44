// Package grow computes container growth sizes with overflow checks.
//
// Every growable container in basekit doubles its allocation, or jumps
// straight to the required size when doubling is not enough. A size that
// would overflow int is an allocation failure, and allocation failure is
// fatal: the helpers panic with ErrOverflow instead of returning an error.
package grow

import (
	"errors"
	"math"
)

// ErrOverflow is the panic value for a size that does not fit in an int.
var ErrOverflow = errors.New("grow: size overflows int")

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false
// when the result would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Need returns length + n. It panics with ErrOverflow on overflow.
func Need(length, n int) int {
	v, ok := AddOverflowSafe(length, n)
	if !ok {
		panic(ErrOverflow)
	}
	return v
}

// Size returns n * elemSize. It panics with ErrOverflow on overflow.
func Size(n, elemSize int) int {
	v, ok := MulOverflowSafe(n, elemSize)
	if !ok {
		panic(ErrOverflow)
	}
	return v
}

// Capacity returns the capacity a container of capacity cur should grow to
// so that need elements fit: cur doubled, or need itself if larger. It
// returns cur unchanged when need already fits.
func Capacity(cur, need int) int {
	if need <= cur {
		return cur
	}
	doubled, ok := MulOverflowSafe(cur, 2)
	if !ok || doubled < need {
		return need
	}
	return doubled
}

// CapacityLimit is Capacity bounded by limit. It panics with ErrOverflow
// when need exceeds limit.
func CapacityLimit(cur, need, limit int) int {
	if need > limit {
		panic(ErrOverflow)
	}
	return min(Capacity(cur, need), limit)
}
