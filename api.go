package sha256

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

var (
	// ErrMessageTooLong means the message does not fit in a single 512-bit
	// block alongside the terminator bit and the 64-bit length field.
	ErrMessageTooLong = errors.New("message exceeds single-block capacity")

	// ErrInvalidCharacter means a rune's code point does not fit in 8 bits.
	// HashString only accepts the single-byte character domain.
	ErrInvalidCharacter = errors.New("character does not fit in 8 bits")
)

// Sum256 returns the SHA-256 digest of message, which must fit in a single
// block (at most 55 bytes).
func Sum256(message []byte) ([32]byte, error) {
	return sum(message)
}

// Hash returns the digest of message rendered as 64 lowercase hexadecimal
// characters, or ErrMessageTooLong if the message does not fit in one block.
func Hash(message []byte) (string, error) {
	digest, err := sum(message)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest[:]), nil
}

// HashString hashes a text message. Every rune must fit in one byte or the
// call fails with ErrInvalidCharacter; accepted runes are encoded one byte
// each, so "é" hashes as the single byte 0xe9, not as its UTF-8 encoding.
func HashString(message string) (string, error) {
	buf := make([]byte, 0, len(message))
	for _, r := range message {
		if r > 0xff {
			return "", errors.Wrapf(ErrInvalidCharacter, "%q", r)
		}
		buf = append(buf, byte(r))
	}
	return Hash(buf)
}
