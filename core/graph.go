// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: CSR materialization (Build), the Adjacency accumulator, and read-only
//       Graph accessors.
// Policy:
//   - All validation happens before any CSR storage is allocated; a returned
//     *Graph is always structurally sound.
//   - Accessors are allocation-free; EdgesOf returns a subslice of the packed
//     edge array, never a copy.

package core

import "fmt"

// Graph is an immutable CSR graph: head[v]..head[v+1] delimits the directed
// edge entries leaving v inside the flat edges slice. Construct via Build or
// Adjacency.Build; the zero value is an empty graph with no vertices.
type Graph struct {
	head  []int
	edges []Edge
}

// Build validates per-vertex edge groups and packs them into a Graph. The
// vertex count is len(groups); group u holds the out-edges of vertex u in
// their final adjacency order. Returns ErrTooManyVertices, ErrInvalidEdge, or
// ErrBadWeight without allocating CSR storage when validation fails.
//
// Complexity: O(n + m) time, O(n + m) space for the packed result.
func Build(groups [][]Edge, opts ...BuildOption) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Size limit first: edge targets must stay addressable by uint32.
	n := len(groups)
	if uint64(n) > MaxVertexCount {
		return nil, fmt.Errorf("core: build n=%d: %w", n, ErrTooManyVertices)
	}

	// 2) Validate every entry before materializing anything.
	m := 0
	for u, group := range groups {
		for i, e := range group {
			if uint64(e.To) >= uint64(n) {
				return nil, fmt.Errorf("core: build vertex %d entry %d (to=%d, n=%d): %w", u, i, e.To, n, ErrInvalidEdge)
			}
			if e.Weight == Inf || (e.Weight == 0 && !cfg.allowZeroWeights) {
				return nil, fmt.Errorf("core: build vertex %d entry %d (weight=%d): %w", u, i, e.Weight, ErrBadWeight)
			}
		}
		m += len(group)
	}

	// 3) Materialize offsets, then flatten groups in vertex order.
	head := make([]int, n+1)
	for u, group := range groups {
		head[u+1] = head[u] + len(group)
	}
	edges := make([]Edge, 0, m)
	for _, group := range groups {
		edges = append(edges, group...)
	}

	return &Graph{head: head, edges: edges}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	return len(g.head) - 1
}

// EdgeCount returns m, the number of directed entries. An undirected edge
// contributes two.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// EdgesOf returns the out-edges of v as a zero-copy view into the packed edge
// array. The caller must not modify the returned slice. Out-of-range v yields
// nil.
//
// Complexity: O(1).
func (g *Graph) EdgesOf(v int) []Edge {
	if v < 0 || v >= len(g.head)-1 {
		return nil
	}
	return g.edges[g.head[v]:g.head[v+1]]
}

// MemoryEstimate reports the modelled footprint in bytes: 8 per vertex for the
// offset array plus 16 per directed entry for the packed edges. The final
// offset slot and slice headers are excluded so the figure stays comparable
// across ports of the toolchain.
func (g *Graph) MemoryEstimate() uint64 {
	return uint64(g.VertexCount())*8 + uint64(g.EdgeCount())*16
}

// Adjacency accumulates edges in arbitrary order before CSR materialization.
// It exists for callers (file loaders, by-hand test graphs) that do not
// naturally produce per-vertex groups; generators call Build directly.
type Adjacency struct {
	groups [][]Edge
}

// NewAdjacency returns an accumulator for n vertices. The vertex count is
// chosen by the caller, so an unaddressable count is a programming error:
// panics if n < 0 or n exceeds MaxVertexCount.
func NewAdjacency(n int) *Adjacency {
	if n < 0 || uint64(n) > MaxVertexCount {
		panic(fmt.Sprintf("core: NewAdjacency n=%d outside [0, %d]", n, MaxVertexCount))
	}
	return &Adjacency{groups: make([][]Edge, n)}
}

// VertexCount returns the n the accumulator was created with.
func (a *Adjacency) VertexCount() int {
	return len(a.groups)
}

// AddEdge appends the directed edge from→to with weight w. Endpoints are
// validated eagerly (ErrInvalidEdge); weight policy is applied at Build.
//
// Complexity: amortized O(1).
func (a *Adjacency) AddEdge(from, to int, w Weight) error {
	n := len(a.groups)
	if from < 0 || from >= n {
		return fmt.Errorf("core: add edge from=%d (n=%d): %w", from, n, ErrInvalidEdge)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("core: add edge to=%d (n=%d): %w", to, n, ErrInvalidEdge)
	}
	a.groups[from] = append(a.groups[from], Edge{To: uint32(to), Weight: w})
	return nil
}

// AddUndirected appends both directed entries u→v and v→u with the same
// weight, the canonical encoding for an undirected edge.
func (a *Adjacency) AddUndirected(u, v int, w Weight) error {
	if err := a.AddEdge(u, v, w); err != nil {
		return err
	}
	return a.AddEdge(v, u, w)
}

// Build materializes the accumulated edges into an immutable Graph. The
// accumulator remains usable afterwards, but the Graph does not alias it.
func (a *Adjacency) Build(opts ...BuildOption) (*Graph, error) {
	return Build(a.groups, opts...)
}
