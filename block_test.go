package sha256

import (
	"errors"
	"testing"

	"github.com/zeebo/assert"

	"github.com/singleblock/sha256/internal/consts"
)

func TestBuildBlock(t *testing.T) {
	block, err := buildBlock([]byte("abc"))
	assert.NoError(t, err)

	// "abc" then the terminator bit, zero fill, and 24 as the bit length.
	assert.Equal(t, block[0], uint32(0x61626380))
	for i := 1; i < 15; i++ {
		assert.Equal(t, block[i], uint32(0))
	}
	assert.Equal(t, block[15], uint32(24))
}

func TestBuildBlockEmpty(t *testing.T) {
	block, err := buildBlock(nil)
	assert.NoError(t, err)

	assert.Equal(t, block[0], uint32(0x80000000))
	for i := 1; i < 16; i++ {
		assert.Equal(t, block[i], uint32(0))
	}
}

func TestBuildBlockBoundary(t *testing.T) {
	full := make([]byte, consts.MaxMessageLen)
	for i := range full {
		full[i] = 0xff
	}

	block, err := buildBlock(full)
	assert.NoError(t, err)

	// Terminator lands on the last byte before the length field, which
	// reads 55*8 = 440.
	assert.Equal(t, block[13], uint32(0xffffff80))
	assert.Equal(t, block[14], uint32(0))
	assert.Equal(t, block[15], uint32(440))

	_, err = buildBlock(make([]byte, consts.MaxMessageLen+1))
	assert.Error(t, err)
	assert.That(t, errors.Is(err, ErrMessageTooLong))
}
