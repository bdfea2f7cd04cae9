package sha256

import (
	"github.com/singleblock/sha256/internal/consts"
	"github.com/singleblock/sha256/internal/utils"
)

// assembleDigest folds the terminal register state back into the initial
// hash values, wrapping mod 2^32, and packs the eight words big-endian.
func assembleDigest(state *[8]uint32) (out [32]byte) {
	var words [8]uint32
	for i := range words {
		words[i] = consts.IV[i] + state[i]
	}

	utils.WordsToBytes(&words, &out)
	return out
}
