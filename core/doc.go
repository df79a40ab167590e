// Package core provides the immutable CSR (compressed sparse row) graph store
// shared by the generators, the bounded search engine, and the benchmark
// harness.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are dense integer ids 0..n-1; there is no vertex labelling.
//   - Edges are directed entries (to, weight) packed into one flat slice,
//     partitioned per source vertex by an offset array head[0..n] with
//     head[n] == m. Undirected edges are stored as two directed entries.
//   - Weights are unsigned 64-bit values ≥ 1 (see WithZeroWeights for the
//     one relaxation), with Inf reserved as the "unreached" sentinel.
//   - The graph is immutable after Build; there are no dynamic updates.
//
// Why CSR?
//
//   - EdgesOf(v) is a zero-copy subslice, so the engine's relaxation loop
//     touches one contiguous region per vertex with no per-edge allocation
//     and no map or pointer chasing.
//   - The layout is identical across ports of the toolchain, which keeps
//     MemoryEstimate comparable between implementations.
//
// Construction paths:
//
//	// Per-vertex groups, already ordered (generators build these directly):
//	g, err := core.Build(groups)
//
//	// Incremental accumulation in arbitrary edge order (file loaders):
//	adj := core.NewAdjacency(n)
//	_ = adj.AddEdge(u, v, w)
//	_ = adj.AddUndirected(u, v, w)
//	g, err := adj.Build()
//
// Both paths validate endpoints and weights and return ErrInvalidEdge or
// ErrBadWeight before any CSR storage is materialized; a *Graph is therefore
// always structurally sound.
//
// Arithmetic on distances uses SaturatingAdd, which clamps at Inf instead of
// wrapping, so "unreached plus anything" stays unreached.
//
// Concurrency: a *Graph is safe for concurrent readers once built. Adjacency
// is a single-goroutine builder.
package core
