// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Return a BFSResult with Root, Order, Depth and Parent.
//   - Treat the result as a rooted spanning tree of the reached vertices:
//     Children, Ancestors, Siblings and DescendantCount answer tree queries.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in natural ID order, and BFS
//	enqueues them in that order, so the tree is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) including neighbor sorting
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "1", bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors or ctx errors
//	}
//	kids := res.Children("1")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if core.Graph.NeighborIDs fails for any vertex.
package bfs
