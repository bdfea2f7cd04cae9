package sha256

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/singleblock/sha256/internal/consts"
	"github.com/singleblock/sha256/internal/utils"
)

// buildBlock pads msg into the single 512-bit block: the message bytes, a
// 1 bit (the high bit of the 0x80 terminator byte), zero fill to 448 bits,
// and the message length in bits as a big-endian 64-bit field. A message
// past MaxMessageLen would need a second block, which is a different
// algorithm; it is rejected before any block state exists.
func buildBlock(msg []byte) (block [16]uint32, err error) {
	if len(msg) > consts.MaxMessageLen {
		return block, errors.Wrapf(ErrMessageTooLong, "%d bytes", len(msg))
	}

	var buf [consts.BlockLen]byte
	copy(buf[:], msg)
	buf[len(msg)] = 0x80
	binary.BigEndian.PutUint64(buf[consts.BlockLen-8:], uint64(len(msg))*8)

	utils.BytesToWords(&buf, &block)
	return block, nil
}
