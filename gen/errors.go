// SPDX-License-Identifier: MIT
// Package: bmssp/gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Generators attach call-site context with %w and never panic at runtime.

package gen

import "errors"

// ErrBadDimensions indicates a grid with a non-positive row or column count,
// or dimensions whose product cannot be represented.
// Usage: if errors.Is(err, ErrBadDimensions) { /* reject rows/cols */ }.
var ErrBadDimensions = errors.New("gen: grid dimensions out of range")

// ErrBadVertexCount indicates a negative vertex count for ER or BA.
// Zero is legal and yields the empty graph.
var ErrBadVertexCount = errors.New("gen: vertex count out of range")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0,1], or NaN.
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrBadMaxWeight indicates a weight ceiling outside [1, Inf): zero admits no
// draw at all and Inf collides with the unreached sentinel.
var ErrBadMaxWeight = errors.New("gen: max weight out of range")

// ErrBadAttachment indicates a negative per-vertex attachment count for BA.
// Zero is legal and leaves every post-seed vertex isolated.
var ErrBadAttachment = errors.New("gen: attachment count out of range")

// ErrUnknownKind indicates a Kind value (or its textual form) that names no
// generator. Returned by ParseKind and by Spec.Generate on a bad tag.
var ErrUnknownKind = errors.New("gen: unknown generator kind")
