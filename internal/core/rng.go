package core

import (
	"math/rand/v2"
	"time"
)

// Stream is an explicitly seeded random source for one stage call. Draws are
// partitioned by row: every row gets its own PCG generator, so results do not
// depend on how rows are spread over workers.
type Stream struct {
	seed uint64
}

// NewStream creates a stream using the provided seed.
func NewStream(seed uint64) Stream {
	return Stream{seed: seed}
}

// Seed returns the seed the stream was created with.
func (s Stream) Seed() uint64 { return s.seed }

// Row returns the generator owning all draws made for row y.
func (s Stream) Row(y int) *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, uint64(y)))
}

// Derive returns an independent child stream keyed by salt.
func (s Stream) Derive(salt uint64) Stream {
	return Stream{seed: Mix64(s.seed ^ Mix64(salt+0x9e3779b97f4a7c15))}
}

// SeedFromTime derives a seed from the wall clock at second resolution. It
// only exists as a fallback when no seed was configured; callers should
// report the value so the run can be replayed.
func SeedFromTime(now time.Time) uint64 {
	return Mix64(uint64(now.Unix()))
}

// Mix64 is the splitmix64 finalizer.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
