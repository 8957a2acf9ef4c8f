// Package core provides the thread-safe in-memory Graph that the hierarchy
// computations are built on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Simple edges only: a repeated edge is rejected with ErrDuplicateEdge
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj)
//
// Determinism:
//
//	Vertices(), NeighborIDs() and PredecessorIDs() return IDs in natural
//	order: integer-looking IDs first, compared numerically, then all other
//	IDs lexicographically. Edges() returns edges in insertion order.
//	Relation matrices index their rows by Vertices(), so "10" sorts after "9".
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrDuplicateEdge       - an edge between the same endpoints exists.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_, _ = g.AddEdge("1", "2")
//	_, _ = g.AddEdge("1", "10")
//	g.Vertices() // ["1", "2", "10"]
package core
