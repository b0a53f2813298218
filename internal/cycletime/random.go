package cycletime

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// MaxSeed is the largest seed that survives a JSON number (float64) intact.
const MaxSeed uint64 = 1<<53 - 1

// NewSource returns a deterministic PCG generator for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed generates a high-entropy seed using crypto/rand, masked to
// MaxSeed so clients can echo it back unchanged.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]) & MaxSeed, nil
}
