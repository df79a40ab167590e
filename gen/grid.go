// SPDX-License-Identifier: MIT
// Package: bmssp/gen
//
// grid.go — Grid(rows, cols, maxw, seed): rows×cols lattice.
//
// Contract:
//   - Vertex id = row*cols + col (row-major).
//   - Each lattice edge is emitted once, from its "forward" endpoint: for each
//     vertex in row-major order, first the edge to the neighbor below (if in
//     bounds), then to the right neighbor (if in bounds). Both directed
//     entries of an edge share one drawn weight.
//   - Internal vertices end with degree 4; no lattice edge is visited twice.
//
// Determinism:
//   - Exactly one Weight draw per emitted lattice edge, consumed in the scan
//     order above; no other draws. Same (rows, cols, maxw, seed) reproduces
//     the graph bit for bit.
//
// Complexity: O(rows·cols) time; O(n+m) space for the result.

package gen

import (
	"fmt"

	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/rng"
)

// Grid generates the lattice described in the file contract above.
// Errors: ErrBadDimensions for non-positive or unaddressable dimensions,
// ErrBadMaxWeight for a ceiling outside [1, Inf).
func Grid(rows, cols int, maxw core.Weight, seed uint64) (*core.Graph, error) {
	// 1) Validate before consuming any randomness.
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("gen: grid rows=%d cols=%d: %w", rows, cols, ErrBadDimensions)
	}
	if uint64(rows) > core.MaxVertexCount/uint64(cols) {
		return nil, fmt.Errorf("gen: grid rows=%d cols=%d: %w", rows, cols, ErrBadDimensions)
	}
	if err := checkMaxWeight(maxw); err != nil {
		return nil, err
	}

	// 2) Row-major sweep; down edge before right edge at every vertex.
	adj := core.NewAdjacency(rows * cols)
	rnd := rng.New(seed)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if r+1 < rows {
				w := core.Weight(rnd.Weight(uint64(maxw)))
				if err := adj.AddUndirected(u, u+cols, w); err != nil {
					return nil, err
				}
			}
			if c+1 < cols {
				w := core.Weight(rnd.Weight(uint64(maxw)))
				if err := adj.AddUndirected(u, u+1, w); err != nil {
					return nil, err
				}
			}
		}
	}

	// 3) Materialize; draws are in [1,maxw], inside the default Build policy.
	return adj.Build()
}
