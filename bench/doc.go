// SPDX-License-Identifier: MIT
//
// Package bench packages engine runs for the external reporting layer: it
// times repeated Run invocations over one fixed (graph, sources, bound)
// input and emits one Row per trial with the fixed key set shared by every
// port of the toolchain.
//
// The memory figure is a deliberate linear model of the dominant arrays, not
// an allocator measurement; see MemoryBytes. Trials are fully independent —
// each one allocates its own distance array and frontier inside Run — so
// their timings are comparable and the counters are identical across trials
// by construction.
package bench
