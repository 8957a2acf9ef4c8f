// Package matrix offers a row-major Dense matrix and the adjacency builders
// used by the hierarchy tools.
//
// The matrix package provides:
//
//   - Dense: bounds-checked float64 storage with Transpose and Ints export.
//   - BuildAdjacency: symmetric 0/1 matrix of an undirected edge list over
//     1-based integer vertices.
//   - FromGraph: 0/1 adjacency of a core.Graph in natural vertex order.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
