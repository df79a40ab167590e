// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Value types, weight arithmetic, sentinel errors, and Build options.
// Policy:
//   - No storage logic here; CSR construction and accessors live in graph.go.
//   - Every sentinel is wrapped with context at the failure site (%w), so
//     callers match with errors.Is.

package core

import (
	"errors"
	"math"
)

// Weight is an unsigned edge weight or accumulated distance. Distances use the
// same type as weights so SaturatingAdd composes them without conversion.
type Weight uint64

// Inf is the "unreached" distance sentinel: the maximum representable Weight.
// No valid edge may carry it, and SaturatingAdd clamps at it instead of
// wrapping past it.
const Inf Weight = math.MaxUint64

// MaxVertexCount is the largest vertex count a Graph can hold, fixed by the
// uint32 edge target field of the packed CSR entry. Typed uint64 so the limit
// check compiles on 32-bit platforms, where the value exceeds int.
const MaxVertexCount uint64 = 1 << 32

// Edge is one directed CSR entry: the target vertex and the traversal weight.
// Field order keeps the struct at 16 bytes (4 target + 4 padding + 8 weight),
// which MemoryEstimate relies on.
type Edge struct {
	To     uint32
	Weight Weight
}

// SaturatingAdd returns a+b, clamped to Inf on overflow. In particular
// Inf + x == Inf for every x, so relaxing through an unreached vertex can
// never produce a finite (and thus wrongly attractive) distance.
//
// Complexity: O(1).
func SaturatingAdd(a, b Weight) Weight {
	s := a + b
	if s < a {
		return Inf
	}
	return s
}

// Sentinel errors returned by graph construction. Ordered by detection
// priority: size limits are checked before per-edge validation.
var (
	// ErrTooManyVertices is returned when the requested vertex count cannot be
	// addressed by the uint32 edge target field.
	ErrTooManyVertices = errors.New("core: vertex count exceeds uint32 addressable range")

	// ErrInvalidEdge is returned when an edge endpoint lies outside [0, n).
	ErrInvalidEdge = errors.New("core: invalid edge endpoint")

	// ErrBadWeight is returned for a zero edge weight unless WithZeroWeights
	// was supplied. Inf is never a valid weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// buildConfig collects Build policy flags. The zero value is the default
// policy: weights must be ≥ 1.
type buildConfig struct {
	allowZeroWeights bool
}

// BuildOption adjusts validation policy during CSR construction.
type BuildOption func(*buildConfig)

// WithZeroWeights permits zero-weight edges. The search engine handles them
// correctly (a relaxation that does not increase distance); the default
// rejects them because the generators never produce one and a zero usually
// indicates a malformed external edge list.
func WithZeroWeights() BuildOption {
	return func(cfg *buildConfig) {
		cfg.allowZeroWeights = true
	}
}
