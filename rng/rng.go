// Package rng provides the deterministic pseudo-random stream used by graph
// generation, source selection, and the benchmark harness.
//
// The generator is SplitMix64 (Vigna 2014): a 64-bit state advanced by the
// golden-gamma increment and finalized with an avalanche mix. It is chosen over
// math/rand because its output sequence is fully specified by this file, so the
// same seed reproduces the same graphs and source sets on every platform and in
// every port of the toolchain, regardless of the host language's library RNG.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence across platforms.
//   - Portability: the algorithm is small enough to restate exactly in any port.
//   - Performance: three multiplies and shifts per draw; no allocations.
//
// Concurrency:
//   - *RNG is NOT goroutine-safe. Derive one stream per worker instead of
//     sharing.
package rng

// SplitMix64 mixing constants. goldenGamma is the 64-bit golden ratio; the two
// multipliers are the canonical finalizer constants. Changing any of these
// changes every downstream graph, so they are fixed for the life of the format.
const (
	goldenGamma = 0x9E3779B97F4A7C15
	mixMul1     = 0xBF58476D1CE4E5B9
	mixMul2     = 0x94D049BB133111EB
)

// GoldenGamma is the SplitMix64 increment, exported so callers can decorrelate
// auxiliary streams from a base seed (stream = New(seed ^ GoldenGamma)) without
// consuming draws from the primary sequence.
const GoldenGamma uint64 = goldenGamma

// float64Scale converts a 53-bit integer into the unit interval [0,1).
const float64Scale = 1.0 / (1 << 53)

// RNG is a SplitMix64 stream. The zero value is a valid stream seeded with 0;
// prefer New so the seed is visible at the call site.
type RNG struct {
	state uint64
}

// New returns a stream seeded verbatim. Seed 0 is a legal, distinct stream; no
// remapping is applied, so recorded seeds replay exactly.
//
// Complexity: O(1).
func New(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 advances the stream and returns the next 64-bit value.
//
// Complexity: O(1).
func (r *RNG) Uint64() uint64 {
	r.state += goldenGamma
	z := r.state
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}

// Uint64N returns a value in [0, n) as Uint64() mod n.
//
// The modulo reduction carries a small bias for n that are not powers of two;
// it is kept anyway because the draw convention is part of the reproducibility
// contract shared with the other ports, and the bias is negligible for the
// small n used by weight and index draws (n ≤ 2^32 keeps it below 2^-32).
//
// Panics if n == 0; a zero range has no valid draw.
//
// Complexity: O(1).
func (r *RNG) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("rng: Uint64N requires n > 0")
	}
	return r.Uint64() % n
}

// Float64 returns a value in [0, 1) built from the top 53 bits of one draw,
// matching the conventional 64→double reduction. Exactly one Uint64 draw is
// consumed per call.
//
// Complexity: O(1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) * float64Scale
}

// Weight returns a value in [1, maxWeight] as Uint64N(maxWeight)+1. One draw is
// consumed. Generators use this single convention so that graph reproduction
// only depends on the seed and the documented draw order.
//
// Panics if maxWeight == 0 (via Uint64N).
//
// Complexity: O(1).
func (r *RNG) Weight(maxWeight uint64) uint64 {
	return r.Uint64N(maxWeight) + 1
}
