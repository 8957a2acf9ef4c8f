// Package hierarchy computes structural descriptors of a rooted hierarchy
// given as an edge list.
//
// 🚀 What
//
//   - Relations: five 0/1 relation matrices over the vertex set
//     (endpoints ∪ {root}, natural order):
//     r1 direct control (u→v edge), r2 direct subordination (r1ᵀ),
//     r3 indirect control (v reachable from u, not a direct child),
//     r4 indirect subordination (r3ᵀ), r5 co-subordination (distinct
//     children of one parent). Cycles closed by the edges are reported.
//   - Entropy: orients an undirected edge list as a BFS tree from the root
//     and scores each node by five counts (children, parents, indirect
//     descendants, indirect ancestors, siblings). With p = l/max(1, n−1):
//     H = Σ −p·log₂p over positive counts, Href = 5n/(e·ln2), h = H/Href.
//
// ⚙️ Usage
//
//	rel, err := hierarchy.Relations(edges, "1")
//	fmt.Print(rel.R3)
//
//	m, err := hierarchy.Entropy(edgelist.ParseLoose(text), "1")
//	fmt.Println(m.H, m.Normalized)
//
// ⚠️ Errors
//
//   - ErrEmptyRoot: the root id is empty.
//   - core.ErrEmptyVertexID: an edge has an empty endpoint.
//   - ctx.Err() when the WithContext context is done.
package hierarchy
