// Package determinism provides content hashing for reproducible results.
package determinism

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 12 hex characters
func (h ContentHash) Short() string {
	return h.Hex()[:12]
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()
}

// Hasher accumulates ordered parts into a ContentHash. Each part is length
// prefixed, so ("ab", "c") and ("a", "bc") hash differently.
type Hasher struct {
	h hash.Hash
}

// NewHasher starts a hash scoped to namespace
func NewHasher(namespace string) *Hasher {
	hs := &Hasher{h: sha256.New()}
	return hs.Add(namespace)
}

// Add appends parts in order
func (hs *Hasher) Add(parts ...string) *Hasher {
	var size [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(size[:], uint64(len(p)))
		hs.h.Write(size[:])
		hs.h.Write([]byte(p))
	}
	return hs
}

// Sum returns the hash of everything added so far
func (hs *Hasher) Sum() ContentHash {
	var out ContentHash
	copy(out[:], hs.h.Sum(nil))
	return out
}
