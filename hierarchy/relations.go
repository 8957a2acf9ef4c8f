package hierarchy

import (
	"fmt"

	"github.com/katalvlaran/fuzzyrel/core"
	"github.com/katalvlaran/fuzzyrel/dfs"
	"github.com/katalvlaran/fuzzyrel/edgelist"
	"github.com/katalvlaran/fuzzyrel/matrix"
)

// Relations builds r1..r5 for the directed hierarchy given by parent→child
// edges and root. Self-loops are kept as control of a vertex over itself.
// A repeated edge counts once, so a child is never co-subordinate with
// itself; r5 has a zero diagonal even for duplicated input lines.
//
// Steps:
//  1. Load edges into a directed core.Graph, root included.
//  2. r1 = adjacency in natural vertex order, r2 = r1ᵀ.
//  3. r3[u][v] = 1 for every v strictly reachable from u with r1[u][v] = 0
//     (dfs.Reachable).
//  4. r4[v][u] = 1 for every ancestor u of v with r2[v][u] = 0
//     (dfs.Reachable with dfs.WithReverse), so r4 = r3ᵀ.
//  5. r5[a][b] = 1 for distinct children a, b of one parent.
//  6. Collect cycles (dfs.DetectCycles).
//
// Errors: ErrEmptyRoot, core.ErrEmptyVertexID, ctx.Err().
// Complexity: O(V·(V+E) + Σ children²).
func Relations(edges []edgelist.Edge, root string, opts ...Option) (*RelationSet, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}

	// 1) Load graph
	g, err := edgelist.Graph(edges, []string{root}, core.WithDirected(true), core.WithLoops())
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}

	// 2) Direct relations
	r1, idx, err := matrix.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}
	n := len(idx)
	r2 := r1.Transpose()
	r3, _ := matrix.NewDense(n, n)
	r4, _ := matrix.NewDense(n, n)
	r5, _ := matrix.NewDense(n, n)
	vertices := g.Vertices()

	for _, u := range vertices {
		// 3) Indirect control
		desc, err := dfs.Reachable(g, u, dfs.WithContext(o.Ctx))
		if err != nil {
			return nil, fmt.Errorf("hierarchy: descendants of %q: %w", u, err)
		}
		for _, v := range desc {
			if direct, _ := r1.At(idx[u], idx[v]); direct == 0 {
				_ = r3.Set(idx[u], idx[v], 1)
			}
		}

		// 4) Indirect subordination
		anc, err := dfs.Reachable(g, u, dfs.WithContext(o.Ctx), dfs.WithReverse())
		if err != nil {
			return nil, fmt.Errorf("hierarchy: ancestors of %q: %w", u, err)
		}
		for _, v := range anc {
			if direct, _ := r2.At(idx[u], idx[v]); direct == 0 {
				_ = r4.Set(idx[u], idx[v], 1)
			}
		}

		// 5) Co-subordination among u's children
		kids, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("hierarchy: children of %q: %w", u, err)
		}
		for _, a := range kids {
			for _, b := range kids {
				if a != b {
					_ = r5.Set(idx[a], idx[b], 1)
				}
			}
		}
	}

	// 6) Cycles
	_, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}

	return &RelationSet{
		Vertices: vertices,
		R1:       r1,
		R2:       r2,
		R3:       r3,
		R4:       r4,
		R5:       r5,
		Cycles:   cycles,
	}, nil
}
