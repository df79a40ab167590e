// Package gen provides the deterministic topology generators consumed by the
// benchmark harness: a lattice, a directed Erdős–Rényi model, and preferential
// attachment. It sits between rng (the pinned SplitMix64 stream) and core (the
// CSR store), so every generated graph is a pure function of its parameters
// and seed.
//
// The package offers the following components:
//
//   - Generators (one file each, with the draw-order contract at the top):
//     – Grid(rows, cols, maxw, seed):  undirected lattice, forward edges only.
//     – ER(n, p, maxw, seed):          directed G(n,p) over ordered pairs.
//     – BA(n, m0, m, maxw, seed):      clique seed + degree-proportional growth.
//   - Dispatch:
//     – Kind / ParseKind / String:     the three canonical names "grid",
//       "er", "ba" as a closed enum.
//     – Spec.Generate():               tagged parameter variant, so flag
//       parsing maps to one value instead of string checks at call sites.
//   - Validation sentinels (errors.go): ErrBadDimensions, ErrBadVertexCount,
//     ErrInvalidProbability, ErrBadMaxWeight, ErrBadAttachment,
//     ErrUnknownKind.
//
// Guarantees:
//
//   - Determinism: every generator documents its exact draw order and consumes
//     the stream only as documented; identical (parameters, seed) yield
//     bit-identical graphs. This is the primary contract, kept in lockstep
//     with the other ports of the toolchain.
//   - Validation first: parameters are checked before the first draw, so a
//     rejected call never perturbs stream reasoning in surrounding code.
//   - No panics at runtime; generators return sentinel errors with %w context.
//
// See the individual generator files for per-topology contracts and
// complexity notes.
package gen
