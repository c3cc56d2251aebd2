// Package detrand derives reproducible PRNG seeds from a short label, so
// a property-based test that fails against a randomly generated curve
// point or scalar can be pinned to its label and rerun against the exact
// same sequence instead of chasing a fresh time.Now()-seeded failure.
package detrand

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Seed derives a deterministic math/rand seed from label.
func Seed(label string) int64 {
	sum := blake2b.Sum256([]byte(label))
	return int64(binary.LittleEndian.Uint64(sum[:8]) & (1<<63 - 1))
}
