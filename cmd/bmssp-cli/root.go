// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Flag surface, environment defaults, and the trial loop.

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arkadion/bmssp"
	"github.com/arkadion/bmssp/bench"
	"github.com/arkadion/bmssp/core"
	"github.com/arkadion/bmssp/gen"
	"github.com/arkadion/bmssp/graphio"
)

// envPrefix namespaces the environment variables that pre-seed flag defaults:
// BMSSP_SEED=7 acts like --seed 7 unless the flag is given explicitly.
const envPrefix = "BMSSP_"

type options struct {
	graph       string
	rows, cols  int
	n           int
	p           float64
	m0, m       int
	maxw        uint64
	k           int
	bound       uint64
	seed        uint64
	trials      int
	graphFile   string
	sourcesFile string
	verbose     bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "bmssp-cli",
		Short:        "Benchmark bounded multi-source shortest paths on synthetic or file-loaded graphs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(opts.verbose)
			applyEnvDefaults(cmd.Flags())

			return run(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.graph, "graph", "grid", "graph kind: grid, er, or ba")
	cmd.Flags().IntVar(&opts.rows, "rows", 50, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", 50, "grid cols")
	cmd.Flags().IntVar(&opts.n, "n", 10000, "vertex count (er, ba; grid fallback: rows=cols=floor(sqrt(n)))")
	cmd.Flags().Float64Var(&opts.p, "p", 0.0005, "er edge probability")
	cmd.Flags().IntVar(&opts.m0, "m0", 5, "ba seed clique size")
	cmd.Flags().IntVar(&opts.m, "m", 5, "ba attachments per vertex")
	cmd.Flags().Uint64Var(&opts.maxw, "maxw", 100, "maximum edge weight")
	cmd.Flags().IntVar(&opts.k, "k", 16, "number of sources")
	cmd.Flags().Uint64Var(&opts.bound, "B", 200, "distance bound")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 42, "base RNG seed")
	cmd.Flags().IntVar(&opts.trials, "trials", 5, "trials to run and report")
	cmd.Flags().StringVar(&opts.graphFile, "graph-file", "", "load graph from file instead of generating")
	cmd.Flags().StringVar(&opts.sourcesFile, "sources-file", "", "load sources from file instead of sampling")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	g, label, err := buildGraph(cmd, opts)
	if err != nil {
		return err
	}
	log.Debugf("graph %s: n=%d m=%d", label, g.VertexCount(), g.EdgeCount())

	var sources []bmssp.Source
	if opts.sourcesFile != "" {
		sources, err = graphio.LoadSources(opts.sourcesFile)
		if err != nil {
			return err
		}
		log.Debugf("loaded %d sources from %s", len(sources), opts.sourcesFile)
	} else {
		sources = bmssp.PickSources(g, opts.k, opts.seed)
		log.Debugf("picked %d of %d requested sources", len(sources), opts.k)
	}

	rows, err := bench.RunTrials(g, sources, core.Weight(opts.bound), opts.trials, bench.Config{
		Graph: label,
		Seed:  opts.seed,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(raw))
	}
	if best, ok := bench.Best(rows); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "best ns=%d popped=%d B'=%d\n", best.TimeNS, best.Popped, best.BPrime)
	}

	return nil
}

// buildGraph loads or generates the graph and returns it with its row label.
func buildGraph(cmd *cobra.Command, opts *options) (*core.Graph, string, error) {
	if opts.graphFile != "" {
		g, err := graphio.LoadGraph(opts.graphFile)

		return g, opts.graph, err
	}

	kind, err := gen.ParseKind(opts.graph)
	if err != nil {
		return nil, "", err
	}

	spec := gen.Spec{
		Kind:      kind,
		Rows:      opts.rows,
		Cols:      opts.cols,
		N:         opts.n,
		P:         opts.p,
		M0:        opts.m0,
		M:         opts.m,
		MaxWeight: core.Weight(opts.maxw),
		Seed:      opts.seed,
	}
	if kind == gen.KindGrid && !cmd.Flags().Changed("rows") && !cmd.Flags().Changed("cols") && cmd.Flags().Changed("n") {
		// Only a vertex count was given: use the nearest square lattice.
		side := int(math.Sqrt(float64(opts.n)))
		if side < 1 {
			side = 1
		}
		spec.Rows, spec.Cols = side, side
	}

	g, err := spec.Generate()

	return g, kind.String(), err
}

// setupLogging routes diagnostics to stderr so stdout stays a clean JSON
// stream, and disables colors when stderr is not a terminal.
func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()),
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// applyEnvDefaults lets an optional .env file and BMSSP_* variables pre-seed
// any flag the user did not pass explicitly: BMSSP_GRAPH_FILE covers
// --graph-file, and so on.
func applyEnvDefaults(flags *pflag.FlagSet) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debugf("skipping .env: %v", err)
	}
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		val, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		if err := flags.Set(f.Name, val); err != nil {
			log.Warnf("ignoring %s=%q: %v", key, val, err)
		}
	})
}
