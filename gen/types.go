// SPDX-License-Identifier: MIT
// Package: bmssp/gen
//
// types.go — generator kinds and the tagged parameter variant.

package gen

import (
	"fmt"

	"github.com/arkadion/bmssp/core"
)

// Kind selects one of the three topology families.
type Kind int

const (
	// KindGrid is the rows×cols lattice with undirected forward edges.
	KindGrid Kind = iota
	// KindER is the directed Erdős–Rényi model over ordered pairs.
	KindER
	// KindBA is preferential attachment with a seed clique.
	KindBA
)

// Textual forms shared by flag parsing and row labelling. These are wire-level
// strings; changing one changes the "graph" field of every emitted row.
const (
	kindGridName = "grid"
	kindERName   = "er"
	kindBAName   = "ba"
)

// String returns the canonical lower-case name, or "unknown(<n>)" for values
// outside the enum.
func (k Kind) String() string {
	switch k {
	case KindGrid:
		return kindGridName
	case KindER:
		return kindERName
	case KindBA:
		return kindBAName
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind maps a canonical name to its Kind. Matching is exact: "grid",
// "er", "ba". Anything else returns ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case kindGridName:
		return KindGrid, nil
	case kindERName:
		return KindER, nil
	case kindBAName:
		return KindBA, nil
	default:
		return 0, fmt.Errorf("gen: parse kind %q: %w", s, ErrUnknownKind)
	}
}

// Spec is the tagged variant describing one generated graph: the Kind selects
// which parameter fields apply, the rest are ignored. It exists so callers
// (flag parsing, trial harnesses) hand a single value to Generate instead of
// scattering string comparisons over generator arguments.
//
// Field applicability:
//
//	KindGrid: Rows, Cols
//	KindER:   N, P
//	KindBA:   N, M0, M
//	all:      MaxWeight, Seed
type Spec struct {
	Kind Kind

	Rows, Cols int

	N int
	P float64

	M0, M int

	MaxWeight core.Weight
	Seed      uint64
}

// Generate dispatches to the generator selected by the Kind tag. Parameter
// validation is performed by the generator itself; an out-of-enum tag returns
// ErrUnknownKind.
func (s Spec) Generate() (*core.Graph, error) {
	switch s.Kind {
	case KindGrid:
		return Grid(s.Rows, s.Cols, s.MaxWeight, s.Seed)
	case KindER:
		return ER(s.N, s.P, s.MaxWeight, s.Seed)
	case KindBA:
		return BA(s.N, s.M0, s.M, s.MaxWeight, s.Seed)
	default:
		return nil, fmt.Errorf("gen: generate kind %d: %w", int(s.Kind), ErrUnknownKind)
	}
}
