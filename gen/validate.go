// SPDX-License-Identifier: MIT
// Package: bmssp/gen
//
// validate.go — parameter checks shared by the generators.

package gen

import (
	"fmt"

	"github.com/arkadion/bmssp/core"
)

// checkMaxWeight enforces the weight ceiling contract: draws come from
// [1, maxw], so the ceiling must admit at least one value and must stay below
// the unreached sentinel.
func checkMaxWeight(maxw core.Weight) error {
	if maxw < 1 || maxw >= core.Inf {
		return fmt.Errorf("gen: maxw=%d: %w", maxw, ErrBadMaxWeight)
	}
	return nil
}

// checkVertexCount rejects negative counts and counts beyond the CSR address
// space. Zero is legal everywhere and yields the empty graph.
func checkVertexCount(n int) error {
	if n < 0 {
		return fmt.Errorf("gen: n=%d: %w", n, ErrBadVertexCount)
	}
	if uint64(n) > core.MaxVertexCount {
		return fmt.Errorf("gen: n=%d: %w", n, core.ErrTooManyVertices)
	}
	return nil
}
