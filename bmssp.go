// SPDX-License-Identifier: MIT
//
// File: bmssp.go
// Role: The bounded multi-source search loop and its frontier heap.
// Policy:
//   - Inputs are validated in full before any state is allocated.
//   - The frontier uses lazy decrease-key: improvements push a fresh entry
//     and the stale copy is discarded on pop when its distance no longer
//     matches the array. Simpler than true decrease-key and at least as fast
//     on an array-backed binary heap.
//
// Complexity: O((V + E) log V) time, O(V + E) space — the frontier holds at
// most one live entry plus stale copies per vertex, bounded by the number of
// successful relaxations.

package bmssp

import (
	"container/heap"
	"fmt"

	"github.com/arkadion/bmssp/core"
)

// Run computes shortest distances from the given sources, exploring only
// vertices whose distance is strictly below bound, and reports the tight
// next-phase boundary alongside the work counters.
//
// Semantics, in loop order:
//
//  1. Every source with Offset < bound seeds the frontier; duplicates of a
//     vertex keep the best offset.
//  2. Pops whose distance no longer matches the array are stale and skipped.
//  3. A popped distance ≥ bound tightens BPrime and ends the search; the
//     vertex is left for the next phase, not relaxed.
//  4. Otherwise the vertex is explored and each out-edge relaxed with
//     saturating addition: improvements below the bound update the array and
//     push; candidates at or beyond the bound only tighten BPrime.
//
// An empty effective frontier (no sources, bound 0, or every offset ≥ bound)
// yields a valid empty result with BPrime == bound. Weights are non-negative
// by core's construction contract, so explored distances are exact.
//
// Errors: ErrNilGraph, ErrSourceOutOfRange, ErrWarmStartSize. Both benign
// empty inputs above are not errors.
func Run(g *core.Graph, sources []Source, bound core.Weight, opts ...Option) (*Result, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate everything before allocating search state.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	for i, s := range sources {
		if s.Vertex < 0 || s.Vertex >= n {
			return nil, fmt.Errorf("bmssp: source %d (vertex=%d, n=%d): %w", i, s.Vertex, n, ErrSourceOutOfRange)
		}
	}
	if cfg.warmStart != nil && len(cfg.warmStart) != n {
		return nil, fmt.Errorf("bmssp: warm start len=%d, n=%d: %w", len(cfg.warmStart), n, ErrWarmStartSize)
	}

	// 2) Distance array: all Inf cold, copied from the prior phase warm.
	dist := make([]core.Weight, n)
	if cfg.warmStart != nil {
		copy(dist, cfg.warmStart)
	} else {
		for v := range dist {
			dist[v] = core.Inf
		}
	}

	// 3) Seed the frontier: warm-start survivors first, then the sources.
	//    Neither kind of seed counts as a heap push.
	fr := make(frontier, 0, len(sources))
	if cfg.warmStart != nil {
		for v, d := range dist {
			if d < bound {
				fr = append(fr, frontierEntry{d: d, v: v})
			}
		}
	}
	for _, s := range sources {
		if s.Offset < bound && s.Offset < dist[s.Vertex] {
			dist[s.Vertex] = s.Offset
			fr = append(fr, frontierEntry{d: s.Offset, v: s.Vertex})
		}
	}

	res := &Result{Dist: dist, BPrime: core.Inf}
	if len(fr) == 0 {
		// Nothing qualified: the phase boundary is the bound itself.
		res.BPrime = bound
		return res, nil
	}
	heap.Init(&fr)

	// 4) Pop loop.
	for fr.Len() > 0 {
		top := heap.Pop(&fr).(frontierEntry)
		if top.d != dist[top.v] {
			continue // stale copy left behind by a later improvement
		}
		if top.d >= bound {
			if top.d < res.BPrime {
				res.BPrime = top.d
			}
			break
		}

		res.Explored = append(res.Explored, top.v)
		for _, e := range g.EdgesOf(top.v) {
			res.EdgesScanned++
			nd := core.SaturatingAdd(top.d, e.Weight)
			to := int(e.To)
			switch {
			case nd < dist[to] && nd < bound:
				dist[to] = nd
				heap.Push(&fr, frontierEntry{d: nd, v: to})
				res.HeapPushes++
			case nd >= bound && nd < res.BPrime:
				// Out-of-bound candidates still tighten the boundary.
				res.BPrime = nd
			}
		}
	}

	return res, nil
}

// frontierEntry is one tentative distance awaiting settlement.
type frontierEntry struct {
	d core.Weight
	v int
}

// frontier is a binary min-heap of entries ordered by distance, ties broken
// by ascending vertex id so pop order — and therefore Result.Explored — is
// deterministic.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].d != f[j].d {
		return f[i].d < f[j].d
	}
	return f[i].v < f[j].v
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEntry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
