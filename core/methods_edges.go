// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a duplicate (mirrors included).
//  4. Store the edge and link adjacency; undirected edges are mirrored,
//     directed edges are also recorded in the reverse index.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if len(g.adjacency[from][to]) > 0 {
		return "", ErrDuplicateEdge
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: edgeID(seq), From: from, To: to, Directed: g.directed, seq: seq}

	// 4) Store and link adjacency
	g.edges[e.ID] = e
	link(g.adjacency, from, to, e.ID)
	if e.Directed {
		link(g.reverse, to, from, e.ID)
	} else if from != to {
		link(g.adjacency, to, from, e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges in insertion order.
// The returned *Edge values are shared; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// edgeID renders the textual ID for sequence number n without fmt.
func edgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// link records eid in index[from][to], allocating nested maps on demand.
// Must be called under muEdgeAdj write lock.
func link(index map[string]map[string]map[string]struct{}, from, to, eid string) {
	if index[from] == nil {
		index[from] = make(map[string]map[string]struct{})
	}
	if index[from][to] == nil {
		index[from][to] = make(map[string]struct{})
	}
	index[from][to][eid] = struct{}{}
}
