// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - NeighborIDs() and PredecessorIDs() return unique IDs in natural order.

package core

// NeighborIDs returns the unique IDs reachable from id over one edge.
//
// Policy:
//   - Directed graphs: heads of outgoing edges (children).
//   - Undirected graphs: every adjacent vertex.
//   - A self-loop lists id itself.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.collect(id, false)
}

// PredecessorIDs returns the unique IDs with an edge into id.
// For undirected graphs it equals NeighborIDs.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) PredecessorIDs(id string) ([]string, error) {
	return g.collect(id, g.directed)
}

// collect reads adjacency (or the reverse index) of id under a consistent snapshot.
func (g *Graph) collect(id string, reverse bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Same lock order as mutators: muVert -> muEdgeAdj
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	index := g.adjacency
	if reverse {
		index = g.reverse
	}

	ids := make([]string, 0, len(index[id]))
	for nbr, set := range index[id] {
		if len(set) > 0 {
			ids = append(ids, nbr)
		}
	}
	SortNatural(ids)

	return ids, nil
}
