package gen_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/arkadion/bmssp/gen"
)

func TestParseKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []gen.Kind{gen.KindGrid, gen.KindER, gen.KindBA} {
		parsed, err := gen.ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if parsed != k {
			t.Fatalf("round trip %q: got %v", k.String(), parsed)
		}
	}

	for _, bad := range []string{"", "GRID", "tree", "grid "} {
		if _, err := gen.ParseKind(bad); !errors.Is(err, gen.ErrUnknownKind) {
			t.Fatalf("ParseKind(%q): got %v, want ErrUnknownKind", bad, err)
		}
	}

	if s := gen.Kind(99).String(); s != "unknown(99)" {
		t.Fatalf("out-of-enum String() = %q", s)
	}
}

// TestSpecGenerateMatchesDirectCalls confirms the tagged dispatcher adds no
// behavior of its own: each Kind reproduces the direct generator call exactly,
// ignoring the fields that do not apply to it.
func TestSpecGenerateMatchesDirectCalls(t *testing.T) {
	t.Parallel()

	specs := []gen.Spec{
		{Kind: gen.KindGrid, Rows: 4, Cols: 5, N: 999, P: 0.9, MaxWeight: 30, Seed: 11},
		{Kind: gen.KindER, N: 25, P: 0.2, Rows: 999, MaxWeight: 30, Seed: 11},
		{Kind: gen.KindBA, N: 50, M0: 3, M: 2, P: 0.9, MaxWeight: 30, Seed: 11},
	}
	for _, s := range specs {
		s := s
		t.Run(s.Kind.String(), func(t *testing.T) {
			t.Parallel()
			fromSpec, err := s.Generate()
			if err != nil {
				t.Fatal(err)
			}

			var direct = fromSpec
			switch s.Kind {
			case gen.KindGrid:
				direct, err = gen.Grid(s.Rows, s.Cols, s.MaxWeight, s.Seed)
			case gen.KindER:
				direct, err = gen.ER(s.N, s.P, s.MaxWeight, s.Seed)
			case gen.KindBA:
				direct, err = gen.BA(s.N, s.M0, s.M, s.MaxWeight, s.Seed)
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(dump(fromSpec), dump(direct)) {
				t.Fatal("dispatcher output differs from direct call")
			}
		})
	}
}

func TestSpecGenerateUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := gen.Spec{Kind: gen.Kind(7)}.Generate()
	if !errors.Is(err, gen.ErrUnknownKind) {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
}
