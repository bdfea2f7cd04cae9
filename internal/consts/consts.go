package consts

import "math"

const (
	// BlockLen is the size of the single padded block in bytes.
	BlockLen = 64

	// MaxMessageLen is the longest message that still leaves room inside
	// one block for the terminator bit and the 64-bit length field.
	MaxMessageLen = 55
)

// IV holds the initial hash values H0..H7, the fractional parts of the
// square roots of the first 8 primes. Computed once at init, read-only
// afterwards.
var IV = deriveIV()

// K holds the round constants K0..K63, the fractional parts of the cube
// roots of the first 64 primes. Computed once at init, read-only afterwards.
var K = deriveK()

// Primes returns the first n primes, starting at 2, by trial division.
func Primes(n int) []uint32 {
	primes := make([]uint32, 0, n)
	for c := uint32(2); len(primes) < n; c++ {
		prime := true
		for d := uint32(2); d < c; d++ {
			if c%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			primes = append(primes, c)
		}
	}
	return primes
}

// FracWord truncates the fractional part of v to a 32-bit word. Truncation
// toward zero, not rounding: rounding the last bit diverges from the
// published constants.
func FracWord(v float64) uint32 {
	_, frac := math.Modf(v)
	return uint32(uint64(frac * (1 << 32)))
}

func deriveIV() (iv [8]uint32) {
	for i, p := range Primes(8) {
		iv[i] = FracWord(math.Sqrt(float64(p)))
	}
	return iv
}

func deriveK() (k [64]uint32) {
	for i, p := range Primes(64) {
		k[i] = FracWord(math.Cbrt(float64(p)))
	}
	return k
}
