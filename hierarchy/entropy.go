package hierarchy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzyrel/bfs"
	"github.com/katalvlaran/fuzzyrel/core"
	"github.com/katalvlaran/fuzzyrel/edgelist"
)

// Entropy scores the hierarchy obtained by orienting the undirected edges
// as a BFS tree from root, neighbors visited in natural order.
//
// Per node m: l1 = children, l2 = parents (0 or 1), l3 = descendants − l1,
// l4 = ancestors − l2, l5 = siblings. Vertices the search never reaches
// keep all-zero counts but still count towards n.
//
// Errors: ErrEmptyRoot, core.ErrEmptyVertexID, ctx.Err().
// Complexity: O(V·depth + E log d).
func Entropy(edges []edgelist.Edge, root string, opts ...Option) (*Metric, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}

	g, err := edgelist.Graph(edges, []string{root}, core.WithLoops())
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}
	tree, err := bfs.BFS(g, root, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("hierarchy: orient from %q: %w", root, err)
	}

	nodes := g.Vertices()
	n := len(nodes)
	denom := float64(max(1, n-1))
	m := &Metric{Nodes: n, Counts: make(map[string]Counts, n)}

	for _, id := range nodes {
		c := Counts{Children: len(tree.Children(id))}
		if tree.Reached(id) && id != tree.Root {
			c.Parents = 1
		}
		c.IndirectChildren = tree.DescendantCount(id) - c.Children
		c.IndirectAncestors = len(tree.Ancestors(id)) - c.Parents
		c.Siblings = len(tree.Siblings(id))
		m.Counts[id] = c

		for _, l := range c.values() {
			if l > 0 {
				p := float64(l) / denom
				m.RawH -= p * math.Log2(p)
			}
		}
	}

	m.Href = float64(n) * hrefFactor
	m.RawNormalized = m.RawH / m.Href
	m.H = round1(m.RawH)
	m.Normalized = round1(m.RawNormalized)

	return m, nil
}
