// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Engine value types, sentinel errors, and Run options.
// Policy:
//   - No traversal logic here; the search loop lives in bmssp.go.
//   - Sentinels are matched with errors.Is; call sites attach context via %w.

package bmssp

import (
	"errors"

	"github.com/arkadion/bmssp/core"
)

// Source is one starting point of the search: a vertex and its initial
// tentative distance (zero for an ordinary source; nonzero offsets let a
// caller pre-charge a source, e.g. to continue from a cut of a larger graph).
type Source struct {
	Vertex int
	Offset core.Weight
}

// Result is the outcome of one Run. It is created fresh per invocation and
// never aliases engine state, so callers may keep or mutate it freely.
type Result struct {
	// Dist holds the best distance found for every vertex; core.Inf marks
	// vertices the bounded search never reached. Entries below the bound are
	// exact shortest distances for explored vertices.
	Dist []core.Weight

	// Explored lists the settled vertices in pop order: non-decreasing
	// distance, ties by ascending vertex id. len(Explored) is the explored
	// count.
	Explored []int

	// BPrime is the tight next-phase boundary: the smallest tentative
	// distance ≥ bound that the search encountered. core.Inf means the
	// frontier was exhausted with nothing left beyond the bound; a run whose
	// frontier was empty from the start reports the bound itself.
	BPrime core.Weight

	// EdgesScanned counts every edge visited during relaxation, including
	// those whose candidate distance was not an improvement.
	EdgesScanned int

	// HeapPushes counts frontier insertions caused by successful relaxations.
	// Initial source (and warm-start) insertions are not counted.
	HeapPushes int
}

// Sentinel errors returned by Run. A benign shortage of sources is not an
// error (see PickSources); these mark caller contract violations that would
// otherwise surface as a silently wrong answer.
var (
	// ErrNilGraph is returned when Run receives a nil graph.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrSourceOutOfRange is returned when a source vertex lies outside
	// [0, n).
	ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")

	// ErrWarmStartSize is returned when a warm-start distance array does not
	// cover exactly the graph's vertex count.
	ErrWarmStartSize = errors.New("bmssp: warm-start distance array length mismatch")
)

// runConfig collects Run policy. The zero value is a cold start.
type runConfig struct {
	warmStart []core.Weight
}

// Option adjusts one Run invocation.
type Option func(*runConfig)

// WithWarmStart seeds the search from a prior Result.Dist instead of an
// all-Inf array, re-enqueueing every entry below the new bound alongside the
// caller's sources. Growing the bound across phases this way reproduces the
// distances of a cold run at the larger bound; the pop and scan counters
// legitimately differ, since already-settled vertices are explored again.
//
// The slice is copied, so the prior Result stays untouched. Run returns
// ErrWarmStartSize if len(dist) differs from the graph's vertex count.
func WithWarmStart(dist []core.Weight) Option {
	return func(cfg *runConfig) {
		cfg.warmStart = dist
	}
}
