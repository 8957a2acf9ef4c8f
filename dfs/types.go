package dfs

import (
	"context"
	"errors"
)

// Visitation colors of DetectCycles.
const (
	White = iota // not yet discovered
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Reachable.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a reachability walk.
type Option func(*Options)

// Options holds the tunables of a walk.
type Options struct {
	// Ctx aborts the walk when cancelled; defaults to context.Background().
	Ctx context.Context

	// Reverse walks directed edges against their direction, turning
	// descendant queries into ancestor queries. No effect on undirected graphs.
	Reverse bool
}

// DefaultOptions returns a background context and forward walks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked before every vertex.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReverse follows incoming edges instead of outgoing ones.
func WithReverse() Option {
	return func(o *Options) { o.Reverse = true }
}
