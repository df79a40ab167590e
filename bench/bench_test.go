package bench_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadion/bmssp"
	"github.com/arkadion/bmssp/bench"
	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/gen"
)

func TestMemoryBytes(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(0), bench.MemoryBytes(0, 0))
	require.Equal(t, uint64(100*8+300*16), bench.MemoryBytes(100, 300))

	// The model agrees with the graph method, so rows built from either are
	// interchangeable.
	g, err := gen.Grid(4, 4, 10, 1)
	require.NoError(t, err)
	require.Equal(t, g.MemoryEstimate(), bench.MemoryBytes(g.VertexCount(), g.EdgeCount()))
}

func TestRunTrialsRows(t *testing.T) {
	t.Parallel()

	g, err := gen.Grid(10, 10, 50, 42)
	require.NoError(t, err)
	sources := bmssp.PickSources(g, 4, 42)

	rows, err := bench.RunTrials(g, sources, 120, 3, bench.Config{Graph: "grid", Seed: 42})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	ref, err := bmssp.Run(g, sources, 120)
	require.NoError(t, err)

	for i, r := range rows {
		require.Equal(t, bench.DefaultImpl, r.Impl)
		require.Equal(t, bench.DefaultLang, r.Lang)
		require.Equal(t, "grid", r.Graph)
		require.Equal(t, g.VertexCount(), r.N)
		require.Equal(t, g.EdgeCount(), r.M)
		require.Equal(t, len(sources), r.K)
		require.Equal(t, core.Weight(120), r.Bound)
		require.Equal(t, uint64(42+i), r.Seed, "trial %d labels seed+trial", i)
		require.GreaterOrEqual(t, r.TimeNS, int64(0))

		// Trials are independent runs of a deterministic engine: counters
		// must not drift between rows.
		require.Equal(t, len(ref.Explored), r.Popped)
		require.Equal(t, ref.EdgesScanned, r.EdgesScanned)
		require.Equal(t, ref.HeapPushes, r.HeapPushes)
		require.Equal(t, ref.BPrime, r.BPrime)
		require.Equal(t, bench.MemoryBytes(r.N, r.M), r.MemBytes)
	}
}

func TestRunTrialsDegenerate(t *testing.T) {
	t.Parallel()

	g, err := gen.Grid(2, 2, 1, 0)
	require.NoError(t, err)

	for _, trials := range []int{0, -3} {
		rows, err := bench.RunTrials(g, nil, 10, trials, bench.Config{Graph: "grid"})
		require.NoError(t, err)
		require.Empty(t, rows)
	}

	_, err = bench.RunTrials(nil, nil, 10, 1, bench.Config{})
	require.ErrorIs(t, err, bench.ErrNilGraph)

	// Engine errors surface unchanged.
	_, err = bench.RunTrials(g, []bmssp.Source{{Vertex: 99}}, 10, 1, bench.Config{})
	require.ErrorIs(t, err, bmssp.ErrSourceOutOfRange)
}

func TestBest(t *testing.T) {
	t.Parallel()

	_, ok := bench.Best(nil)
	require.False(t, ok)

	rows := []bench.Row{
		{Seed: 1, TimeNS: 300},
		{Seed: 2, TimeNS: 120},
		{Seed: 3, TimeNS: 250},
	}
	best, ok := bench.Best(rows)
	require.True(t, ok)
	require.Equal(t, uint64(2), best.Seed)
}

// TestRowJSONKeys pins the wire schema: the exact key set consumers group
// rows by, including the capitalized B and B_prime.
func TestRowJSONKeys(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(bench.Row{Impl: "go-bmssp", Lang: "Go", Graph: "er", BPrime: core.Inf})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"impl", "lang", "graph", "n", "m", "k", "B", "seed",
		"time_ns", "popped", "edges_scanned", "heap_pushes", "B_prime", "mem_bytes",
	} {
		require.Contains(t, decoded, key)
	}
	require.Len(t, decoded, 14)

	// The Inf sentinel serializes as the unsigned value itself.
	var typed struct {
		BPrime core.Weight `json:"B_prime"`
	}
	require.NoError(t, json.Unmarshal(raw, &typed))
	require.Equal(t, core.Inf, typed.BPrime)
}
