// SPDX-License-Identifier: MIT
//
// File: sources.go
// Role: Deterministic sampling of search sources.
//
// Determinism:
//   - The sampler draws from a SplitMix64 stream seeded with
//     seed ^ rng.GoldenGamma, decorrelating it from the generator stream so
//     the same user seed can drive both without overlap.
//   - Draws are uniform over [0, n); collisions with already-chosen vertices
//     consume their stream position and are redrawn, so the chosen set is a
//     pure function of (n, k, seed).

package bmssp

import (
	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/rng"
)

// PickSources samples k distinct vertices of g, each with offset 0, in draw
// order. Shortages degrade gracefully rather than erroring: k exceeding the
// vertex count yields every vertex (in draw order), k ≤ 0 or an empty graph
// yields nil.
//
// Complexity: expected O(k) draws for k « n; the collision set caps the loop
// at n distinct values, so termination never depends on luck.
func PickSources(g *core.Graph, k int, seed uint64) []Source {
	n := g.VertexCount()
	if n == 0 || k <= 0 {
		return nil
	}

	rnd := rng.New(seed ^ rng.GoldenGamma)
	seen := make(map[int]bool, k)
	var out []Source
	for len(out) < k && len(seen) < n {
		s := int(rnd.Uint64N(uint64(n)))
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, Source{Vertex: s, Offset: 0})
	}

	return out
}
