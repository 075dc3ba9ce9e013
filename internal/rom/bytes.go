package rom

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// ReadU16 reads a big-endian 16-bit integer from a byte slice.
func ReadU16(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}

	return binary.BigEndian.Uint16(b)
}

// ReadU32 reads a big-endian 32-bit integer from a byte slice.
func ReadU32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}

	return binary.BigEndian.Uint32(b)
}

// Fingerprint builds a deterministic 64-bit hash of the image payload,
// formatted as fixed-width hex. It identifies a dump independent of its
// filename or any copier-added prefix (callers pass the payload only).
func Fingerprint(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}
