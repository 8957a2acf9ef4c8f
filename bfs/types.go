// Package bfs defines the options, sentinel errors and result tree of a
// breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors wraps a failed neighbor lookup on the graph.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a search.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	// Ctx is checked before each vertex is visited.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// BFSResult orients the reached part of a graph as a spanning tree rooted
// at Root. Order lists vertices in visit sequence, Depth holds hop
// distances and Parent the tree edges; the methods answer tree queries.
type BFSResult struct {
	Root   string
	Order  []string
	Depth  map[string]int
	Parent map[string]string

	children map[string][]string // lazily built from Parent, in visit order
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// Children returns the tree children of id in visit order.
// Unreached vertices and leaves have none.
func (r *BFSResult) Children(id string) []string {
	if r.children == nil {
		r.children = make(map[string][]string, len(r.Order))
		for _, v := range r.Order {
			if p, ok := r.Parent[v]; ok {
				r.children[p] = append(r.children[p], v)
			}
		}
	}

	return r.children[id]
}

// Ancestors returns the proper ancestors of id, nearest first.
// The root and unreached vertices have none.
func (r *BFSResult) Ancestors(id string) []string {
	var out []string
	for cur, ok := r.Parent[id]; ok; cur, ok = r.Parent[cur] {
		out = append(out, cur)
	}

	return out
}

// DescendantCount returns the number of proper descendants of id in the tree.
// Complexity: O(subtree size).
func (r *BFSResult) DescendantCount(id string) int {
	n := 0
	stack := append([]string(nil), r.Children(id)...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, r.Children(v)...)
	}

	return n
}

// Siblings returns the other children of id's parent, in visit order.
func (r *BFSResult) Siblings(id string) []string {
	p, ok := r.Parent[id]
	if !ok {
		return nil
	}
	var out []string
	for _, c := range r.Children(p) {
		if c != id {
			out = append(out, c)
		}
	}

	return out
}
