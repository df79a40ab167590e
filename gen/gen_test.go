// Package gen_test verifies the three generators: parameter validation,
// structural properties, and — most importantly — the pinned draw order.
// The pinned-sequence tests encode the reproducibility contract; a failure
// there means previously recorded (parameters, seed) pairs no longer
// reproduce their graphs.
package gen_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/gen"
)

// triple flattens one directed entry for comparison in expectation tables.
type triple struct {
	u, v int
	w    core.Weight
}

// dump lists every directed entry of g in CSR order.
func dump(g *core.Graph) []triple {
	var out []triple
	for u := 0; u < g.VertexCount(); u++ {
		for _, e := range g.EdgesOf(u) {
			out = append(out, triple{u, int(e.To), e.Weight})
		}
	}
	return out
}

func TestGridPinnedDraws(t *testing.T) {
	t.Parallel()

	// 2×2 lattice, seed 42, maxw 100. Draw order: vertex 0 down (14), vertex
	// 0 right (92), vertex 1 down (59), vertex 2 right (65). Mirror entries
	// appear in chronological insertion order.
	g, err := gen.Grid(2, 2, 100, 42)
	if err != nil {
		t.Fatal(err)
	}
	want := []triple{
		{0, 2, 14}, {0, 1, 92},
		{1, 0, 92}, {1, 3, 59},
		{2, 0, 14}, {2, 3, 65},
		{3, 1, 59}, {3, 2, 65},
	}
	if got := dump(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("grid 2x2 seed 42:\n got %v\nwant %v", got, want)
	}
}

func TestGridUnitWeights(t *testing.T) {
	t.Parallel()

	// maxw=1 forces every draw to 1: 4 lattice edges, 8 directed entries,
	// vertex 0 keeps degree 2 (down, then right).
	g, err := gen.Grid(2, 2, 1, 12345)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 8 {
		t.Fatalf("edge entries = %d, want 8", g.EdgeCount())
	}
	for _, tr := range dump(g) {
		if tr.w != 1 {
			t.Fatalf("edge %d->%d has weight %d, want 1", tr.u, tr.v, tr.w)
		}
	}
	deg0 := g.EdgesOf(0)
	if len(deg0) != 2 || deg0[0].To != 2 || deg0[1].To != 1 {
		t.Fatalf("vertex 0 adjacency = %v, want down(2) then right(1)", deg0)
	}
}

func TestGridShape(t *testing.T) {
	t.Parallel()

	// 3×4: 3·3 horizontal + 2·4 vertical = 17 lattice edges, 34 entries.
	g, err := gen.Grid(3, 4, 100, 9)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 12 || g.EdgeCount() != 34 {
		t.Fatalf("got n=%d m=%d, want n=12 m=34", g.VertexCount(), g.EdgeCount())
	}
	// Internal vertex (1,1) = id 5 has degree 4; corner 0 has degree 2.
	if d := len(g.EdgesOf(5)); d != 4 {
		t.Fatalf("internal degree = %d, want 4", d)
	}
	if d := len(g.EdgesOf(0)); d != 2 {
		t.Fatalf("corner degree = %d, want 2", d)
	}

	// Single cell: one vertex, no edges.
	g, err = gen.Grid(1, 1, 100, 9)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 1 || g.EdgeCount() != 0 {
		t.Fatalf("1x1 grid: n=%d m=%d", g.VertexCount(), g.EdgeCount())
	}
}

func TestERPinnedDraws(t *testing.T) {
	t.Parallel()

	// n=3, p=0.5, maxw=100, seed=42: six ordered pairs in scan order; the
	// probability draws admit (0,2), (1,0), (2,0), (2,1) with the weights
	// below.
	g, err := gen.ER(3, 0.5, 100, 42)
	if err != nil {
		t.Fatal(err)
	}
	want := []triple{
		{0, 2, 59},
		{1, 0, 51},
		{2, 0, 9}, {2, 1, 75},
	}
	if got := dump(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("er n=3 p=0.5 seed 42:\n got %v\nwant %v", got, want)
	}
}

func TestERDensityExtremes(t *testing.T) {
	t.Parallel()

	// p=0: no inclusion draws succeed, vertices survive.
	g, err := gen.ER(5, 0, 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 5 || g.EdgeCount() != 0 {
		t.Fatalf("p=0: n=%d m=%d", g.VertexCount(), g.EdgeCount())
	}

	// p=1: every ordered pair, directed, weights within [1,maxw].
	g, err = gen.ER(4, 1, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 4*3 {
		t.Fatalf("p=1: m=%d, want 12", g.EdgeCount())
	}
	for _, tr := range dump(g) {
		if tr.u == tr.v {
			t.Fatalf("self-loop %d->%d", tr.u, tr.v)
		}
		if tr.w < 1 || tr.w > 10 {
			t.Fatalf("weight %d outside [1,10]", tr.w)
		}
	}

	// n=0 is the empty graph, not an error.
	g, err = gen.ER(0, 0.5, 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 0 {
		t.Fatalf("n=0: VertexCount=%d", g.VertexCount())
	}
}

func TestBAPinnedDraws(t *testing.T) {
	t.Parallel()

	// n=4, m0=2, m=1, maxw=100, seed=7. Clique {0,1} with fixed weight 1,
	// then vertices 2 and 3 each attach once; both draws land on vertex 1.
	g, err := gen.BA(4, 2, 1, 100, 7)
	if err != nil {
		t.Fatal(err)
	}
	want := []triple{
		{0, 1, 1},
		{1, 0, 1},
		{2, 1, 5},
		{3, 1, 4},
	}
	if got := dump(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("ba n=4 m0=2 m=1 seed 7:\n got %v\nwant %v", got, want)
	}
}

func TestBAEmptyEndpointFallback(t *testing.T) {
	t.Parallel()

	// m0=1 seeds no clique edges, so vertex 1 must fall back to the uniform
	// draw over [0,1). Quotas: u=1 attaches min(2,1)=1 edge, later vertices
	// attach 2 distinct targets each.
	g, err := gen.BA(5, 1, 2, 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []triple{
		{1, 0, 2},
		{2, 1, 8}, {2, 0, 1},
		{3, 1, 3}, {3, 0, 2},
		{4, 1, 2}, {4, 0, 9},
	}
	if got := dump(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("ba n=5 m0=1 m=2 seed 3:\n got %v\nwant %v", got, want)
	}
}

func TestBAStructure(t *testing.T) {
	t.Parallel()

	const (
		n    = 200
		m0   = 5
		m    = 5
		maxw = 100
	)
	g, err := gen.BA(n, m0, m, maxw, 99)
	if err != nil {
		t.Fatal(err)
	}

	// Clique vertices: full out-degree within the clique, all weight 1.
	for u := 0; u < m0; u++ {
		es := g.EdgesOf(u)
		if len(es) != m0-1 {
			t.Fatalf("clique vertex %d out-degree = %d, want %d", u, len(es), m0-1)
		}
		for _, e := range es {
			if e.Weight != 1 {
				t.Fatalf("clique edge %d->%d weight %d, want 1", u, e.To, e.Weight)
			}
		}
	}

	// Growth vertices: exactly min(m,u) targets, all distinct, all prior,
	// never self.
	for u := m0; u < n; u++ {
		es := g.EdgesOf(u)
		quota := m
		if quota > u {
			quota = u
		}
		if len(es) != quota {
			t.Fatalf("vertex %d batch = %d, want %d", u, len(es), quota)
		}
		seen := map[uint32]bool{}
		for _, e := range es {
			if int(e.To) >= u {
				t.Fatalf("vertex %d attached forward/self to %d", u, e.To)
			}
			if seen[e.To] {
				t.Fatalf("vertex %d attached twice to %d", u, e.To)
			}
			seen[e.To] = true
			if e.Weight < 1 || e.Weight > maxw {
				t.Fatalf("weight %d outside [1,%d]", e.Weight, maxw)
			}
		}
	}

	if wantM := m0*(m0-1) + m*(n-m0); g.EdgeCount() != wantM {
		t.Fatalf("m = %d, want %d", g.EdgeCount(), wantM)
	}
}

func TestBADegenerates(t *testing.T) {
	t.Parallel()

	// m0 ≥ n collapses to a pure clique.
	g, err := gen.BA(3, 10, 4, 100, 5)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 6 {
		t.Fatalf("clique-only m = %d, want 6", g.EdgeCount())
	}

	// m=0 leaves growth vertices isolated.
	g, err = gen.BA(10, 3, 0, 100, 5)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 6 {
		t.Fatalf("m=0: m = %d, want clique-only 6", g.EdgeCount())
	}

	// n ∈ {0,1} yield edgeless graphs.
	for _, n := range []int{0, 1} {
		g, err = gen.BA(n, 5, 5, 100, 5)
		if err != nil {
			t.Fatal(err)
		}
		if g.VertexCount() != n || g.EdgeCount() != 0 {
			t.Fatalf("n=%d: got n=%d m=%d", n, g.VertexCount(), g.EdgeCount())
		}
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	t.Parallel()

	build := func() []*core.Graph {
		grid, err := gen.Grid(6, 7, 50, 424242)
		if err != nil {
			t.Fatal(err)
		}
		er, err := gen.ER(40, 0.1, 50, 424242)
		if err != nil {
			t.Fatal(err)
		}
		ba, err := gen.BA(60, 4, 3, 50, 424242)
		if err != nil {
			t.Fatal(err)
		}
		return []*core.Graph{grid, er, ba}
	}

	first, second := build(), build()
	for i := range first {
		if !reflect.DeepEqual(dump(first[i]), dump(second[i])) {
			t.Fatalf("generator %d not deterministic", i)
		}
	}

	// A different seed must actually change something.
	other, err := gen.Grid(6, 7, 50, 424243)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(dump(first[0]), dump(other)) {
		t.Fatal("distinct seeds produced identical grids")
	}
}

func TestGeneratorValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"grid_zero_rows", func() error { _, err := gen.Grid(0, 3, 100, 1); return err }, gen.ErrBadDimensions},
		{"grid_zero_cols", func() error { _, err := gen.Grid(3, 0, 100, 1); return err }, gen.ErrBadDimensions},
		{"grid_negative", func() error { _, err := gen.Grid(-2, 3, 100, 1); return err }, gen.ErrBadDimensions},
		{"grid_unaddressable", func() error { _, err := gen.Grid(1 << 20, 1 << 20, 100, 1); return err }, gen.ErrBadDimensions},
		{"grid_zero_maxw", func() error { _, err := gen.Grid(2, 2, 0, 1); return err }, gen.ErrBadMaxWeight},
		{"grid_inf_maxw", func() error { _, err := gen.Grid(2, 2, core.Inf, 1); return err }, gen.ErrBadMaxWeight},
		{"er_negative_n", func() error { _, err := gen.ER(-1, 0.5, 100, 1); return err }, gen.ErrBadVertexCount},
		{"er_p_below", func() error { _, err := gen.ER(4, -0.001, 100, 1); return err }, gen.ErrInvalidProbability},
		{"er_p_above", func() error { _, err := gen.ER(4, 1.001, 100, 1); return err }, gen.ErrInvalidProbability},
		{"er_p_nan", func() error { _, err := gen.ER(4, math.NaN(), 100, 1); return err }, gen.ErrInvalidProbability},
		{"ba_negative_n", func() error { _, err := gen.BA(-1, 2, 2, 100, 1); return err }, gen.ErrBadVertexCount},
		{"ba_negative_m", func() error { _, err := gen.BA(10, 2, -1, 100, 1); return err }, gen.ErrBadAttachment},
		{"ba_zero_maxw", func() error { _, err := gen.BA(10, 2, 2, 0, 1); return err }, gen.ErrBadMaxWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
