// File: cycle.go
// Role: cycle detection for directed and undirected core.Graphs.
//
// DetectCycles reports the cycles closed by back edges of a depth-first search
// with three-color marking. Self-loops count when the graph permits them;
// trivial 2-cycles (u–v–u) of undirected graphs do not.
//
// Every cycle is reported closed ([v0, ..., v0]) and rotated to start at its
// smallest vertex in natural order. An undirected cycle may also be read
// backwards; the smaller of the two readings is kept.
//
// Complexity:
//
//   - Time:   O(V + E + C·L²)   (C=#cycles, L=cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/fuzzyrel/core"
)

// DetectCycles inspects graph g for cycles closed by DFS back edges.
// Returns (true, cycles, nil) if any cycles are found, sorted by their
// vertex sequences; if none, returns (false, nil, nil). A nil graph has no
// cycles. A neighbor-lookup failure is returned as (false, nil, error).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	cf := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if cf.state[v] != White {
			continue
		}
		if err := cf.visit(v, ""); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}
	if len(cf.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(cf.cycles, func(i, j int) bool {
		return compareNatural(cf.cycles[i], cf.cycles[j]) < 0
	})

	return true, cf.cycles, nil
}

// cycleFinder holds the state of one DetectCycles run.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int      // White, Gray or Black
	path   []string            // current DFS stack
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// visit colors id Gray, explores its successors and records every cycle
// closed by an edge back into the current path. parent is the tree parent
// of id ("" for a search root); undirected graphs never walk back over it.
func (cf *cycleFinder) visit(id, parent string) error {
	cf.state[id] = Gray
	cf.path = append(cf.path, id)

	nbrs, err := cf.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	undirected := !cf.graph.Directed()
	for _, nbr := range nbrs {
		if undirected && nbr == parent {
			continue
		}
		switch cf.state[nbr] {
		case White:
			if err = cf.visit(nbr, id); err != nil {
				return err
			}
		case Gray:
			start := slices.Index(cf.path, nbr)
			if undirected && len(cf.path)-start == 2 {
				continue // u–v–u is a single undirected edge
			}
			cf.record(cf.path[start:])
		}
	}

	cf.path = cf.path[:len(cf.path)-1]
	cf.state[id] = Black

	return nil
}

// record canonicalizes the open cycle seq and keeps it if unseen.
func (cf *cycleFinder) record(seq []string) {
	best := minRotation(seq)
	if !cf.graph.Directed() {
		back := slices.Clone(seq)
		slices.Reverse(back)
		if rb := minRotation(back); compareNatural(rb, best) < 0 {
			best = rb
		}
	}
	closed := append(best, best[0])

	sig := strings.Join(closed, "\x00")
	if _, dup := cf.seen[sig]; dup {
		return
	}
	cf.seen[sig] = struct{}{}
	cf.cycles = append(cf.cycles, closed)
}

// minRotation returns a fresh copy of the smallest rotation of seq.
func minRotation(seq []string) []string {
	n := len(seq)
	best := slices.Clone(seq)
	cand := make([]string, n)
	for k := 1; k < n; k++ {
		copy(cand, seq[k:])
		copy(cand[n-k:], seq[:k])
		if compareNatural(cand, best) < 0 {
			copy(best, cand)
		}
	}

	return best
}

// compareNatural orders ID sequences element-wise by core.NaturalLess,
// shorter prefix first.
func compareNatural(a, b []string) int {
	return slices.CompareFunc(a, b, func(x, y string) int {
		switch {
		case x == y:
			return 0
		case core.NaturalLess(x, y):
			return -1
		default:
			return 1
		}
	})
}
