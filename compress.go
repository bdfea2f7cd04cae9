package sha256

import (
	"math/bits"

	"github.com/singleblock/sha256/internal/consts"
)

// compress runs the 64-round mixing loop over the schedule, starting from
// the IV registers, and returns the terminal register state. Every register
// is a uint32, so sums wrap mod 2^32 and ^e is the exact 32-bit complement
// the ch term needs.
func compress(w *[64]uint32) [8]uint32 {
	a, b, c, d := consts.IV[0], consts.IV[1], consts.IV[2], consts.IV[3]
	e, f, g, h := consts.IV[4], consts.IV[5], consts.IV[6], consts.IV[7]

	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + consts.K[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h, g, f = g, f, e
		e = d + temp1
		d, c, b = c, b, a
		a = temp1 + temp2
	}

	return [8]uint32{a, b, c, d, e, f, g, h}
}
