package hasher

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters. Used to fingerprint encoded payloads
// in reports; 16 hex chars (the full 64 bits) is collision-safe for
// any realistic icon count.
func ContentHash(data []byte, hexLen int) string {
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	full := hex.EncodeToString(b)
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
