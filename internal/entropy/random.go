// Package entropy provides the random source behind tie-breaks and
// probability-gated moves. Seeded sources make decisions reproducible.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Source is the randomness the policies draw from.
type Source interface {
	Intn(n int) int   // uniform in [0, n)
	Float64() float64 // uniform in [0, 1)
}

// Locked is a math/rand generator safe for concurrent unit turns.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator for seed. Seed 0 draws a seed from crypto/rand.
func New(seed int64) *Locked {
	if seed == 0 {
		seed = CryptoSeed()
	}
	return &Locked{rng: rand.New(rand.NewSource(seed))}
}

func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Pick returns a uniformly chosen element of items, which must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// CryptoSeed returns a non-zero seed from crypto/rand.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// This should never happen; fall back to a fixed non-zero seed.
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		return 1
	}
	return seed
}
