// Package edgelist parses textual edge lists into (from, to) pairs and
// loads them into a core.Graph.
//
// Two formats are accepted:
//
//   - ParseCSV: RFC 4180 records; only records with exactly two fields whose
//     trimmed values are both non-empty become edges.
//   - ParseLoose: one edge per line, tokens separated by any run of ';', ','
//     or whitespace; the first two tokens of a line form the edge.
//
// Both keep input order and duplicates; deduplication is the caller's policy.
package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/fuzzyrel/core"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrMalformed indicates input the CSV reader cannot tokenize.
	ErrMalformed = errors.New("edgelist: malformed input")

	// ErrBadVertex indicates an endpoint that is not an integer.
	ErrBadVertex = errors.New("edgelist: vertex is not an integer")
)

// Edge is one (From, To) pair as written in the input.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// looseSep splits loose lines on runs of separators.
var looseSep = regexp.MustCompile(`[;,\s]+`)

// ParseCSV reads CSV records from r.
// Records whose field count differs from two, or with a blank field, are skipped.
//
// Errors: ErrMalformed wrapping the csv error (e.g. a bare quote).
// Complexity: O(len(input)).
func ParseCSV(r io.Reader) ([]Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may vary in width

	var edges []Edge
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(rec) != 2 {
			continue
		}
		from, to := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if from == "" || to == "" {
			continue
		}
		edges = append(edges, Edge{From: from, To: to})
	}

	return edges, nil
}

// ParseLoose reads one edge per non-blank line of s. Lines with fewer than
// two tokens are skipped; tokens beyond the second are ignored.
// Complexity: O(len(s)).
func ParseLoose(s string) []Edge {
	var edges []Edge
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var tokens []string
		for _, tok := range looseSep.Split(line, -1) {
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
		if len(tokens) >= 2 {
			edges = append(edges, Edge{From: tokens[0], To: tokens[1]})
		}
	}

	return edges
}

// Ints converts every endpoint to an integer.
//
// Errors: ErrBadVertex naming the first offending edge.
func Ints(edges []Edge) ([][2]int, error) {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		u, err := strconv.Atoi(e.From)
		if err != nil {
			return nil, fmt.Errorf("%w: edge #%d from %q", ErrBadVertex, i, e.From)
		}
		v, err := strconv.Atoi(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: edge #%d to %q", ErrBadVertex, i, e.To)
		}
		out[i] = [2]int{u, v}
	}

	return out, nil
}

// Graph loads edges into a new core.Graph built with opts, after adding
// every vertex in extra (e.g. a root that may have no edges). Repeated
// edges are rejected by the graph and dropped, so duplicates collapse.
//
// Errors: core.ErrEmptyVertexID, core.ErrLoopNotAllowed.
func Graph(edges []Edge, extra []string, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for _, id := range extra {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for i, e := range edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			if errors.Is(err, core.ErrDuplicateEdge) {
				continue
			}
			return nil, fmt.Errorf("edgelist: edge #%d (%s,%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
