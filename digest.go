package viewml

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// DigestSize is the fixed size of a content fingerprint in bytes.
const DigestSize = sha256.Size

// Digest is the SHA-256 fingerprint of a complete raw input byte
// sequence. It depends only on the byte content, never on how the
// stream was chunked.
type Digest [DigestSize]byte

// Hex returns the lowercase hex form of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Hasher wraps incremental fingerprinting of a byte stream. Feed it
// chunks in stream order with Write, then call Sum once after the
// last chunk.
type Hasher struct {
	h hash.Hash
}

func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

// Write adds a chunk to the hash state. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// Sum finalizes the digest over everything written so far.
func (h *Hasher) Sum() Digest {
	var d Digest
	copy(d[:], h.h.Sum(nil))
	return d
}

// HashBytes fingerprints an in-memory buffer in one step.
func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}
