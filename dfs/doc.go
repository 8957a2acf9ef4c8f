// Package dfs implements depth-first reachability and cycle detection on a
// core.Graph.
//
// What:
//
//   - Reachable: the vertices reachable over at least one edge
//     (descendants), or with WithReverse the ancestors. Natural order.
//   - DetectCycles: cycles closed by back edges, rotated to start at
//     their smallest vertex and sorted.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option / Options: Ctx, Reverse
//
// Complexity:
//
//   - Reachable:    Time O(V+E), Memory O(V)
//   - DetectCycles: Time O(V+E + C·L²), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        walk canceled via context
package dfs
