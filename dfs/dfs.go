// File: dfs.go
// Role: strict reachability (descendants, or ancestors in reverse) by a
// recursive depth-first walker.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/fuzzyrel/core"
)

// reachWalker collects every vertex reached over at least one edge.
type reachWalker struct {
	graph   *core.Graph
	opts    Options
	visited map[string]bool
}

// Reachable returns every vertex reachable from startID over at least one
// edge, in natural ID order (core.NaturalLess).
//
// startID itself is included only when it lies on a cycle (a self-loop
// counts). WithReverse walks incoming edges, so Reachable(g, v,
// WithReverse()) lists the ancestors of v.
//
// Steps:
//  1. Validate graph and start vertex, apply options.
//  2. Walk depth-first from each neighbor of startID; startID is not
//     pre-marked, so a cycle back to it marks it.
//  3. Sort the visited set naturally.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx.Err(), neighbor lookups.
// Complexity: O(V + E) time, O(V) memory.
func Reachable(g *core.Graph, startID string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &reachWalker{graph: g, opts: o, visited: make(map[string]bool)}
	if err := w.expand(startID); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(w.visited))
	for id := range w.visited {
		out = append(out, id)
	}
	core.SortNatural(out)

	return out, nil
}

// next returns the IDs one step away from id in the walk direction.
func (w *reachWalker) next(id string) ([]string, error) {
	if w.opts.Reverse {
		return w.graph.PredecessorIDs(id)
	}

	return w.graph.NeighborIDs(id)
}

// expand visits every unvisited vertex one step away from id.
func (w *reachWalker) expand(id string) error {
	nbs, err := w.next(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if w.visited[nid] {
			continue
		}
		if err = w.visit(nid); err != nil {
			return err
		}
	}

	return nil
}

// visit marks id and recurses, checking for cancellation first.
func (w *reachWalker) visit(id string) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.visited[id] = true

	return w.expand(id)
}
