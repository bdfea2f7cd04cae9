package sha256

import "math/bits"

func sigma0(w uint32) uint32 {
	return bits.RotateLeft32(w, -7) ^ bits.RotateLeft32(w, -18) ^ w>>3
}

func sigma1(w uint32) uint32 {
	return bits.RotateLeft32(w, -17) ^ bits.RotateLeft32(w, -19) ^ w>>10
}

// expandSchedule derives the 64-word message schedule from one block. The
// first 16 words are the block itself; every later word mixes four earlier
// ones through the σ0/σ1 recurrence, wrapping mod 2^32.
func expandSchedule(block *[16]uint32) (w [64]uint32) {
	copy(w[:16], block[:])
	for i := 16; i < 64; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}
	return w
}
