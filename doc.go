// SPDX-License-Identifier: MIT
//
// Package bmssp computes Bounded Multi-Source Shortest Paths: Dijkstra's
// algorithm started from several source vertices at once, halting as soon as
// the next candidate distance would reach the caller-supplied bound B, and
// reporting the tight next-phase boundary B'.
//
// The search never pops vertices out of non-decreasing distance order, so
// every vertex it does explore carries its true shortest distance; the bound
// only cuts the exploration short. B' is the smallest tentative distance left
// behind, which lets a caller run the search in phases: finish the ball of
// radius B, then restart with bound B₂ ≥ B' to grow it.
//
// Layout:
//
//	core/           — immutable CSR graph storage, weight arithmetic
//	gen/            — deterministic grid / Erdős–Rényi / Barabási–Albert generators
//	rng/            — the pinned SplitMix64 stream behind every random draw
//	bench/          — per-trial timing rows and the memory estimate
//	graphio/        — plain-text graph and source-list file formats
//	cmd/bmssp-cli/  — command-line benchmark driver
//
// This package holds the engine itself: Run (the bounded search) and
// PickSources (deterministic source sampling). Minimal example:
//
//	g, _ := gen.Grid(50, 50, 100, 42)
//	sources := bmssp.PickSources(g, 16, 42)
//	res, _ := bmssp.Run(g, sources, 200)
//	fmt.Println(len(res.Explored), res.BPrime)
//
// All inputs being equal, every run (and every conforming port of the
// toolchain) produces identical results; see rng and gen for the draw-order
// contracts that make graph generation reproducible.
package bmssp
