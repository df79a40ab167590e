// SPDX-License-Identifier: MIT
// Package: bmssp/gen
//
// er.go — ER(n, p, maxw, seed): directed Erdős–Rényi (G(n,p) over ordered
// pairs).
//
// Contract:
//   - Every ordered pair (u,v) with u ≠ v is considered in nested scan order
//     (u outer, v inner, both ascending).
//   - One uniform [0,1) draw per pair decides inclusion (draw < p); on
//     inclusion one weight draw follows and the directed entry u→v is added.
//   - The model is directed, not symmetric: u→v and v→u are independent
//     trials with independent weights. Callers wanting an undirected ER must
//     symmetrize externally.
//
// Determinism:
//   - n·(n-1) probability draws always occur, interleaved with one weight
//     draw per included edge, in the scan order above. Same (n, p, maxw,
//     seed) reproduces the graph bit for bit.
//
// Complexity: O(n²) time regardless of p; O(n+m) space for the result.

package gen

import (
	"fmt"
	"math"

	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/rng"
)

// ER generates the directed G(n,p) described in the file contract above.
// Errors: ErrBadVertexCount / core.ErrTooManyVertices for a bad n,
// ErrInvalidProbability for p outside [0,1] or NaN, ErrBadMaxWeight for a
// ceiling outside [1, Inf).
func ER(n int, p float64, maxw core.Weight, seed uint64) (*core.Graph, error) {
	// 1) Validate before consuming any randomness.
	if err := checkVertexCount(n); err != nil {
		return nil, err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("gen: er p=%v: %w", p, ErrInvalidProbability)
	}
	if err := checkMaxWeight(maxw); err != nil {
		return nil, err
	}

	// 2) Ordered-pair sweep with a probability draw per pair.
	adj := core.NewAdjacency(n)
	rnd := rng.New(seed)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rnd.Float64() < p {
				w := core.Weight(rnd.Weight(uint64(maxw)))
				if err := adj.AddEdge(u, v, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return adj.Build()
}
