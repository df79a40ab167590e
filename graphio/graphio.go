// SPDX-License-Identifier: MIT
//
// File: graphio.go
// Role: Readers for the graph and source-list exchange formats.
// Policy:
//   - Readers parse from io.Reader and return typed sentinels wrapped with
//     line numbers; the Load* wrappers add the file path at the IO boundary.
//   - Edge endpoint validation is core's job (AddEdge); weight policy is
//     core.Build's, forwarded through the variadic options.

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/arkadion/bmssp"
	"github.com/arkadion/bmssp/core"
)

// Sentinel errors returned by the readers. Match with errors.Is; the wrapped
// message carries the offending line number.
var (
	// ErrBadHeader marks a missing or malformed header line.
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadLine marks a body line that does not parse as its record type.
	ErrBadLine = errors.New("graphio: bad line")

	// ErrCountMismatch marks a body whose record count disagrees with the
	// header.
	ErrCountMismatch = errors.New("graphio: record count disagrees with header")
)

// ReadGraph parses the "n m" + m×"u v w" format into an immutable graph.
// Edges may arrive in any order; they are grouped per source vertex before
// CSR materialization. Build policy options (e.g. core.WithZeroWeights) are
// forwarded to core.Build.
func ReadGraph(r io.Reader, opts ...core.BuildOption) (*core.Graph, error) {
	sc := newLineScanner(r)

	fields, err := sc.header()
	if err != nil {
		return nil, err
	}
	if len(fields) != 2 {
		return nil, fmt.Errorf("graphio: line %d: want \"n m\", got %d fields: %w", sc.line, len(fields), ErrBadHeader)
	}
	n, err := parseCount(fields[0])
	if err != nil {
		return nil, fmt.Errorf("graphio: line %d: n %q: %w", sc.line, fields[0], ErrBadHeader)
	}
	m, err := parseCount(fields[1])
	if err != nil {
		return nil, fmt.Errorf("graphio: line %d: m %q: %w", sc.line, fields[1], ErrBadHeader)
	}
	if uint64(n) > core.MaxVertexCount {
		return nil, fmt.Errorf("graphio: line %d: n=%d: %w", sc.line, n, core.ErrTooManyVertices)
	}

	adj := core.NewAdjacency(n)
	seen := 0
	for {
		fields, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("graphio: line %d: want \"u v w\", got %d fields: %w", sc.line, len(fields), ErrBadLine)
		}
		u, err := parseCount(fields[0])
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: u %q: %w", sc.line, fields[0], ErrBadLine)
		}
		v, err := parseCount(fields[1])
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: v %q: %w", sc.line, fields[1], ErrBadLine)
		}
		w, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: w %q: %w", sc.line, fields[2], ErrBadLine)
		}
		if err := adj.AddEdge(u, v, core.Weight(w)); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", sc.line, err)
		}
		seen++
	}
	if seen != m {
		return nil, fmt.Errorf("graphio: %d edge lines, header says %d: %w", seen, m, ErrCountMismatch)
	}

	return adj.Build(opts...)
}

// ReadSources parses the "k" + k×"s d0" format. A line may omit the offset,
// which defaults to 0. Vertex range is not checked here — only the engine
// knows the target graph; Run rejects out-of-range sources.
func ReadSources(r io.Reader) ([]bmssp.Source, error) {
	sc := newLineScanner(r)

	fields, err := sc.header()
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, fmt.Errorf("graphio: line %d: want \"k\", got %d fields: %w", sc.line, len(fields), ErrBadHeader)
	}
	k, err := parseCount(fields[0])
	if err != nil {
		return nil, fmt.Errorf("graphio: line %d: k %q: %w", sc.line, fields[0], ErrBadHeader)
	}

	out := make([]bmssp.Source, 0, k)
	for {
		fields, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(fields) != 1 && len(fields) != 2 {
			return nil, fmt.Errorf("graphio: line %d: want \"s d0\", got %d fields: %w", sc.line, len(fields), ErrBadLine)
		}
		s, err := parseCount(fields[0])
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: s %q: %w", sc.line, fields[0], ErrBadLine)
		}
		var d0 uint64
		if len(fields) == 2 {
			d0, err = strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: d0 %q: %w", sc.line, fields[1], ErrBadLine)
			}
		}
		out = append(out, bmssp.Source{Vertex: s, Offset: core.Weight(d0)})
	}
	if len(out) != k {
		return nil, fmt.Errorf("graphio: %d source lines, header says %d: %w", len(out), k, ErrCountMismatch)
	}

	return out, nil
}

// LoadGraph reads a graph file from disk.
func LoadGraph(path string, opts ...core.BuildOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "graphio: load graph")
	}
	defer f.Close()

	g, err := ReadGraph(f, opts...)

	return g, pkgerrors.Wrapf(err, "graphio: load graph %s", path)
}

// LoadSources reads a source-list file from disk.
func LoadSources(path string) ([]bmssp.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "graphio: load sources")
	}
	defer f.Close()

	s, err := ReadSources(f)

	return s, pkgerrors.Wrapf(err, "graphio: load sources %s", path)
}

// lineScanner walks non-blank, whitespace-split lines and tracks the current
// 1-based line number for error messages.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

// next returns the fields of the next non-blank line, or ok=false at EOF.
func (l *lineScanner) next() (fields []string, ok bool, err error) {
	for l.sc.Scan() {
		l.line++
		fields = strings.Fields(l.sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}

		return fields, true, nil
	}
	if err := l.sc.Err(); err != nil {
		return nil, false, fmt.Errorf("graphio: read: %w", err)
	}

	return nil, false, nil
}

// header returns the first non-blank line's fields, erroring on a body-less
// input.
func (l *lineScanner) header() ([]string, error) {
	fields, ok, err := l.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("graphio: empty input: %w", ErrBadHeader)
	}

	return fields, nil
}

// parseCount parses a non-negative int field (vertex counts and indices).
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}
