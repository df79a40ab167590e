// SPDX-License-Identifier: MIT
//
// Package graphio reads the plain-text exchange formats the benchmark ports
// share, so a pre-built graph or source list can be fed to the engine through
// the same types the generators produce.
//
// Graph file: a header line "n m" followed by m lines "u v w", one directed
// edge each, in any order. Undirected edges are written as two lines.
//
// Sources file: a header line "k" followed by k lines "s d0"; a line may omit
// d0, which defaults to 0.
//
// Blank lines are skipped. Everything else is strict: a malformed line or a
// count that disagrees with the header is a caller error and is reported with
// its line number rather than silently producing a wrong graph.
package graphio
