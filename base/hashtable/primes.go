package hashtable

import "math"

var primes = [...]uint32{
	0x3, 0x7, 0xb, 0x11, 0x17, 0x1d, 0x25, 0x2f, 0x3b, 0x47, 0x59, 0x6b, 0x83,
	0xa3, 0xc5, 0xef, 0x125, 0x161, 0x1af, 0x209, 0x277, 0x2f9, 0x397, 0x44f,
	0x52f, 0x63d, 0x78b, 0x91d, 0xaf1, 0xd2b, 0xfd1, 0x12fd, 0x16cf, 0x1b65,
	0x20e3, 0x2777, 0x2f6f, 0x38ff, 0x446f, 0x521f, 0x628d, 0x7655, 0x8e01,
	0xaa6b, 0xcc89, 0xf583, 0x126a7, 0x1619b, 0x1a857, 0x1fd3b, 0x26315, 0x2dd67,
	0x3701b, 0x42023, 0x4f361, 0x5f0ed, 0x72125, 0x88e31, 0xa443b, 0xc51eb,
	0xec8c1, 0x11bdbf, 0x154a3f, 0x198c4f, 0x1ea867, 0x24ca19, 0x2c25c1, 0x34fa1b,
	0x3f928f, 0x4c4987, 0x5b8b6f, 0x6dda89,
}

// PrimeAtLeast returns a prime >= minimum. Small values come from a table;
// larger ones are found by trial division over odd candidates.
func PrimeAtLeast(minimum uint32) uint32 {
	for _, p := range primes {
		if p >= minimum {
			return p
		}
	}

	for i := minimum | 1; i < math.MaxInt32; i += 2 {
		if isOddPrime(i) {
			return i
		}
	}
	return minimum
}

func isOddPrime(n uint32) bool {
	limit := uint32(math.Sqrt(float64(n)))
	for j := uint32(3); j <= limit; j += 2 {
		if n%j == 0 {
			return false
		}
	}
	return true
}

// RoundUpToPowerOfTwo returns the smallest power of two >= n.
// Zero rounds to zero.
func RoundUpToPowerOfTwo(n uint32) uint32 {
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}
