// File: adjacency.go
// Role: 0/1 adjacency builders over integer edge lists and core.Graph.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/fuzzyrel/core"
)

// BuildAdjacency returns the symmetric n×n 0/1 adjacency matrix of an
// undirected edge list over 1-based integer vertices, where n is the largest
// endpoint. Vertex v maps to row/column v-1; vertices that never appear keep
// all-zero rows. Repeated edges and both orientations set the same cells.
//
// Errors:
//   - ErrEmptyGraph if edges is empty.
//   - ErrBadVertex  if any endpoint is < 1.
//
// Complexity: O(n² + E).
func BuildAdjacency(edges [][2]int) (*Dense, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	// Stage 1: validate endpoints and find n
	n := 0
	for i, e := range edges {
		for _, v := range e {
			if v < 1 {
				return nil, fmt.Errorf("%w: edge #%d (%d,%d)", ErrBadVertex, i, e[0], e[1])
			}
			if v > n {
				n = v
			}
		}
	}

	// Stage 2: fill symmetric cells
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		u, v := e[0]-1, e[1]-1
		m.data[u*n+v] = 1
		m.data[v*n+u] = 1
	}

	return m, nil
}

// FromGraph returns the V×V 0/1 adjacency matrix of g with rows and columns
// in g.Vertices() order. A directed edge u→v sets (u,v) only; undirected
// edges set both cells. The index map is returned alongside.
//
// Errors: ErrNilGraph, ErrInvalidDimensions for a graph without vertices.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Dense, map[string]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	idx := g.Index()
	n := len(idx)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range g.Edges() {
		u, v := idx[e.From], idx[e.To]
		m.data[u*n+v] = 1
		if !e.Directed {
			m.data[v*n+u] = 1
		}
	}

	return m, idx, nil
}
