// SPDX-License-Identifier: MIT
//
// Command bmssp-cli generates (or loads) a graph, picks sources, runs the
// bounded search a number of times, and prints one JSON row per trial on
// stdout. A one-line best-trial summary goes to stderr for humans; the JSON
// stream is for the aggregation harness.
package main

import (
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
