// Package sha256 computes the SHA-256 digest of a single-block message,
// deriving every fixed constant from the primes it comes from instead of
// writing the tables down. It demonstrates the internals of the compression
// algorithm and is not meant for production hashing: messages longer than
// one block are rejected, never chained.
package sha256

// sum drives one message through the pipeline: pad it into the single
// 512-bit block, expand the 64-word schedule, run the compression rounds,
// and fold the final registers back into the initial hash values.
func sum(msg []byte) ([32]byte, error) {
	block, err := buildBlock(msg)
	if err != nil {
		return [32]byte{}, err
	}

	w := expandSchedule(&block)
	state := compress(&w)
	return assembleDigest(&state), nil
}
