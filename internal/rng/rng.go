// Package rng provides an explicitly seeded random source for filling buffers.
//
// Generators are constructed and passed around by the caller. There is no
// package-level or per-goroutine state, so concurrent users each build their own
// generator from a Config with a distinct Stream.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/bits"
	mrand "math/rand/v2"
)

// RandomSeed selects seeding from the operating system's entropy source.
const RandomSeed int64 = -1

// SFC64 is Chris Doty-Humphrey's Small Fast Chaotic generator (64-bit variant).
// It implements math/rand/v2.Source.
type SFC64 struct {
	a, b, c, counter uint64
}

// NewSFC64 seeds all three state words with seed.
func NewSFC64(seed uint64) *SFC64 {
	return NewSFC64Seeds(seed, seed, seed)
}

// NewSFC64Seeds seeds the state words independently and discards the first 12
// outputs.
func NewSFC64Seeds(a, b, c uint64) *SFC64 {
	s := &SFC64{a: a, b: b, c: c, counter: 1}
	for range 12 {
		s.Uint64()
	}
	return s
}

// Uint64 returns the next 64-bit value.
func (s *SFC64) Uint64() uint64 {
	out := s.a + s.b + s.counter
	s.counter++
	s.a = s.b ^ (s.b >> 11)
	s.b = s.c + (s.c << 3)
	s.c = bits.RotateLeft64(s.c, 24) + out
	return out
}

// Config selects how a generator is seeded.
type Config struct {
	// Seed for reproducibility. RandomSeed (-1) = seeded from the OS.
	Seed int64

	// Stream distinguishes generators built from the same Seed, one per concurrent
	// user. It is added to the seed.
	Stream uint64
}

// DefaultConfig returns a reproducible configuration.
func DefaultConfig() Config {
	return Config{Seed: 0x5eed}
}

// NewSource builds an SFC64 for cfg.
func NewSource(cfg Config) *SFC64 {
	if cfg.Seed == RandomSeed {
		var seed [24]byte
		// crypto/rand.Read never returns an error on supported platforms.
		_, _ = rand.Read(seed[:])
		return NewSFC64Seeds(
			binary.LittleEndian.Uint64(seed[0:]),
			binary.LittleEndian.Uint64(seed[8:]),
			binary.LittleEndian.Uint64(seed[16:]),
		)
	}
	return NewSFC64(uint64(cfg.Seed) + cfg.Stream)
}

// New returns a *rand.Rand backed by NewSource(cfg).
func New(cfg Config) *mrand.Rand {
	return mrand.New(NewSource(cfg))
}

// Uniform fills dst with values drawn uniformly from [lo, hi). A sample that
// rounds up to hi in float32 is replaced by the largest float32 below hi.
func Uniform(r *mrand.Rand, dst []float32, lo, hi float32) {
	span := float64(hi - lo)
	for i := range dst {
		v := float32(float64(lo) + r.Float64()*span)
		if v >= hi {
			v = math.Nextafter32(hi, lo)
		}
		dst[i] = v
	}
}
