package hierarchy

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/fuzzyrel/matrix"
)

// ErrEmptyRoot indicates that no root vertex was given.
var ErrEmptyRoot = errors.New("hierarchy: root vertex is empty")

// RelationNames labels the matrices returned by RelationSet.All, in order.
var RelationNames = [5]string{"r1", "r2", "r3", "r4", "r5"}

// hrefFactor is 5/(e·ln2): five relation kinds, each contributing at most
// 1/(e·ln2) bits per node.
const hrefFactor = 5 / (math.E * math.Ln2)

// Option configures hierarchy computations via functional arguments.
type Option func(*Options)

// Options holds the tunables of a computation.
type Options struct {
	// Ctx allows cancellation of the underlying traversals.
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

// RelationSet holds the relation matrices of a directed hierarchy.
// Row and column i refer to Vertices[i].
type RelationSet struct {
	Vertices []string

	R1 *matrix.Dense // direct control
	R2 *matrix.Dense // direct subordination
	R3 *matrix.Dense // indirect control
	R4 *matrix.Dense // indirect subordination
	R5 *matrix.Dense // co-subordination

	// Cycles lists the cycles of the control graph; empty for a proper tree or DAG.
	Cycles [][]string
}

// All returns r1..r5 in RelationNames order.
func (r *RelationSet) All() [5]*matrix.Dense {
	return [5]*matrix.Dense{r.R1, r.R2, r.R3, r.R4, r.R5}
}

// Counts are the five per-node relation counts used by Entropy.
type Counts struct {
	Children          int `json:"l1"`
	Parents           int `json:"l2"`
	IndirectChildren  int `json:"l3"`
	IndirectAncestors int `json:"l4"`
	Siblings          int `json:"l5"`
}

// values returns the counts as l1..l5.
func (c Counts) values() [5]int {
	return [5]int{c.Children, c.Parents, c.IndirectChildren, c.IndirectAncestors, c.Siblings}
}

// Metric is the entropy descriptor of a hierarchy.
type Metric struct {
	// Nodes is the number of vertices, including ones unreachable from the root.
	Nodes int `json:"nodes"`

	// Counts holds l1..l5 per vertex.
	Counts map[string]Counts `json:"counts"`

	// RawH and RawNormalized are the unrounded H and h.
	RawH          float64 `json:"raw_h"`
	RawNormalized float64 `json:"raw_normalized"`

	// Href is the reference entropy 5n/(e·ln2).
	Href float64 `json:"href"`

	// H and Normalized are RawH and RawNormalized rounded to one decimal.
	H          float64 `json:"h"`
	Normalized float64 `json:"normalized"`
}

// round1 rounds the exact binary value of x to one decimal place, exact
// ties to even: 0.15 (stored as 0.1499…) gives 0.1, 0.25 gives 0.2.
func round1(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)

	return r
}
