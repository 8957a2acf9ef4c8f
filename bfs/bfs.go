// File: bfs.go
// Role: level-order walker producing a BFSResult spanning tree.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/fuzzyrel/core"
)

// bfsWalker holds the mutable state of one BFS run. Depth doubles as the
// discovered set and Order as the FIFO queue; head indexes the next vertex
// to expand.
type bfsWalker struct {
	graph *core.Graph
	opts  Options
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
//
// Neighbors are expanded in natural ID order (core.Graph.NeighborIDs),
// so Order and Parent are reproducible for a given graph. On error the
// partially filled result is returned alongside it.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound for invalid input.
//   - ErrNeighbors for graph failures.
//   - ctx.Err() on cancellation.
//
// Complexity: O(V + E·log d).
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &bfsWalker{
		graph: g,
		opts:  o,
		res: &BFSResult{
			Root:   startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(startID, "")

	return w.res, w.run()
}

// discover records id one level below parent ("" for the root) and queues it.
func (w *bfsWalker) discover(id, parent string) {
	if parent == "" {
		w.res.Depth[id] = 0
	} else {
		w.res.Depth[id] = w.res.Depth[parent] + 1
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
}

// run expands queued vertices in FIFO order until none remain.
func (w *bfsWalker) run() error {
	for w.head < len(w.res.Order) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		id := w.res.Order[w.head]
		w.head++

		nbrs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.discover(nbr, id)
			}
		}
	}

	return nil
}
