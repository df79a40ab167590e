// SPDX-License-Identifier: MIT
// Package: bmssp/gen
//
// ba.go — BA(n, m0, m, maxw, seed): preferential attachment.
//
// Contract:
//   - Seed phase: a clique over the first clamp(m0, 1, n) vertices, emitted as
//     directed entries for every ordered pair in nested scan order, each with
//     fixed weight 1 (no draws). Every pair also records its source in the
//     endpoint list, so clique vertices start with equal attachment mass.
//   - Growth phase: each vertex u from the clique size to n-1 attaches
//     min(m, u) directed edges u→t. Targets are drawn from the endpoint list
//     (degree-proportional); while the list is empty, uniformly from [0, u).
//     Self-loops and repeats of a target already attached in u's batch are
//     rejected and redrawn. Each accepted target is followed by one weight
//     draw, then both endpoints are appended to the endpoint list.
//   - The quota min(m, u) caps the batch at the number of distinct prior
//     vertices; a larger quota could never be met under rejection.
//
// Determinism:
//   - Rejected target draws consume stream positions exactly like accepted
//     ones, so the sequence of draws is a pure function of (n, m0, m, maxw,
//     seed) and reproduces the graph bit for bit.
//
// Complexity: expected O(n·m) time (rejection is geometric with small
// constants for m « n); O(n·m) space for the endpoint list.

package gen

import (
	"fmt"

	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/rng"
)

// BA generates the preferential-attachment graph described in the file
// contract above. m0 is clamped to [1, n]; a batch in the growth phase holds
// at most min(m, u) edges.
// Errors: ErrBadVertexCount / core.ErrTooManyVertices for a bad n,
// ErrBadAttachment for m < 0, ErrBadMaxWeight for a ceiling outside [1, Inf).
func BA(n, m0, m int, maxw core.Weight, seed uint64) (*core.Graph, error) {
	// 1) Validate before consuming any randomness.
	if err := checkVertexCount(n); err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, fmt.Errorf("gen: ba m=%d: %w", m, ErrBadAttachment)
	}
	if err := checkMaxWeight(maxw); err != nil {
		return nil, err
	}

	adj := core.NewAdjacency(n)
	rnd := rng.New(seed)

	// 2) Seed clique with fixed weight 1; endpoint list gains one entry per
	//    ordered pair.
	start := m0
	if start < 1 {
		start = 1
	}
	if start > n {
		start = n
	}
	var ends []int
	for u := 0; u < start; u++ {
		for v := 0; v < start; v++ {
			if u == v {
				continue
			}
			if err := adj.AddEdge(u, v, 1); err != nil {
				return nil, err
			}
			ends = append(ends, u)
		}
	}

	// 3) Growth phase with rejection of self-loops and in-batch duplicates.
	batchCap := m
	if batchCap > n {
		batchCap = n
	}
	batch := make([]int, 0, batchCap)
	for u := start; u < n; u++ {
		batch = batch[:0]
		quota := m
		if quota > u {
			quota = u
		}
		for len(batch) < quota {
			var t int
			if len(ends) == 0 {
				t = int(rnd.Uint64N(uint64(u)))
			} else {
				t = ends[rnd.Uint64N(uint64(len(ends)))]
			}
			if t == u || intsContain(batch, t) {
				continue
			}
			w := core.Weight(rnd.Weight(uint64(maxw)))
			if err := adj.AddEdge(u, t, w); err != nil {
				return nil, err
			}
			ends = append(ends, t, u)
			batch = append(batch, t)
		}
	}

	return adj.Build()
}

// intsContain reports whether x occurs in list. Linear scan; batches hold at
// most m entries and m is small in every benchmark preset.
func intsContain(list []int, x int) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}
