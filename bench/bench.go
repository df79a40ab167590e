// SPDX-License-Identifier: MIT
//
// File: bench.go
// Role: The trial row type, the memory model, and the trial loop.

package bench

import (
	"errors"
	"time"

	"github.com/arkadion/bmssp"
	"github.com/arkadion/bmssp/core"
)

// Row labels reported by this implementation. Wire-level strings: consumers
// aggregate rows from several ports by these fields.
const (
	DefaultImpl = "go-bmssp"
	DefaultLang = "Go"
)

// Memory model constants: 8 bytes per vertex for the distance slot, 16 per
// directed entry for the packed CSR record. The offset array's final slot and
// slice headers are excluded so the figure matches the other ports.
const (
	distBytes       = 8
	edgeRecordBytes = 16
)

// ErrNilGraph is returned when RunTrials receives a nil graph.
var ErrNilGraph = errors.New("bench: graph is nil")

// Row is one trial's result in the fixed reporting schema. Field names and
// JSON keys are frozen; adding or renaming a key breaks downstream
// aggregation across ports.
type Row struct {
	Impl         string      `json:"impl"`
	Lang         string      `json:"lang"`
	Graph        string      `json:"graph"`
	N            int         `json:"n"`
	M            int         `json:"m"`
	K            int         `json:"k"`
	Bound        core.Weight `json:"B"`
	Seed         uint64      `json:"seed"`
	TimeNS       int64       `json:"time_ns"`
	Popped       int         `json:"popped"`
	EdgesScanned int         `json:"edges_scanned"`
	HeapPushes   int         `json:"heap_pushes"`
	BPrime       core.Weight `json:"B_prime"`
	MemBytes     uint64      `json:"mem_bytes"`
}

// Config labels the rows of one trial batch.
type Config struct {
	// Graph names the topology ("grid", "er", "ba", or a caller label for
	// file-loaded graphs).
	Graph string

	// Seed is the base seed the batch was generated from; trial t reports
	// Seed + t so rows stay distinguishable after aggregation.
	Seed uint64

	// Impl and Lang override the default labels when non-empty. Useful only
	// for harnesses comparing engine variants within this port.
	Impl, Lang string
}

// MemoryBytes estimates the resident footprint of a search over an n-vertex,
// m-entry graph: the distance array plus the packed edge records. It is an
// approximation by design — a comparable model across ports, not a
// measurement — and matches (*core.Graph).MemoryEstimate on a built graph.
func MemoryBytes(n, m int) uint64 {
	return uint64(n)*distBytes + uint64(m)*edgeRecordBytes
}

// RunTrials runs the engine trials times over the same input and returns one
// Row per trial. Every field except TimeNS is identical across rows (modulo
// the seed labeling); the counters come from Run and the memory figure from
// the model above. trials ≤ 0 yields no rows.
//
// Wall-clock timing uses the monotonic clock; no timeout is imposed here —
// bounding a runaway trial is the orchestrator's job.
func RunTrials(g *core.Graph, sources []bmssp.Source, bound core.Weight, trials int, cfg Config) ([]Row, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if trials <= 0 {
		return nil, nil
	}

	impl, lang := cfg.Impl, cfg.Lang
	if impl == "" {
		impl = DefaultImpl
	}
	if lang == "" {
		lang = DefaultLang
	}
	mem := MemoryBytes(g.VertexCount(), g.EdgeCount())

	rows := make([]Row, 0, trials)
	for t := 0; t < trials; t++ {
		start := time.Now()
		res, err := bmssp.Run(g, sources, bound)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Impl:         impl,
			Lang:         lang,
			Graph:        cfg.Graph,
			N:            g.VertexCount(),
			M:            g.EdgeCount(),
			K:            len(sources),
			Bound:        bound,
			Seed:         cfg.Seed + uint64(t),
			TimeNS:       elapsed.Nanoseconds(),
			Popped:       len(res.Explored),
			EdgesScanned: res.EdgesScanned,
			HeapPushes:   res.HeapPushes,
			BPrime:       res.BPrime,
			MemBytes:     mem,
		})
	}

	return rows, nil
}

// Best returns the fastest row of a batch, the one-line summary humans
// glance at after the JSON stream. ok is false for an empty batch.
func Best(rows []Row) (best Row, ok bool) {
	for i, r := range rows {
		if i == 0 || r.TimeNS < best.TimeNS {
			best, ok = r, true
		}
	}

	return best, ok
}
