package dfs_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzyrel/core"
	"github.com/katalvlaran/fuzzyrel/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1))
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1),
// numbered heap-style from "1".
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	maxD := (1 << depth) - 1
	for i := 2; i <= maxD; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i/2), strconv.Itoa(i))
	}

	return g
}

func TestReachable(t *testing.T) {
	g := buildBinaryTree(3)

	desc, err := dfs.Reachable(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4", "5", "6", "7"}, desc, "start is excluded")

	desc, err = dfs.Reachable(g, "5")
	require.NoError(t, err)
	assert.Empty(t, desc)

	anc, err := dfs.Reachable(g, "5", dfs.WithReverse())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, anc)
}

func TestReachable_CycleIncludesStart(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "1")
	_, _ = g.AddEdge("2", "3")

	got, err := dfs.Reachable(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	got, err = dfs.Reachable(g, "3")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReachable_Errors(t *testing.T) {
	_, err := dfs.Reachable(nil, "1")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Reachable(core.NewGraph(), "1")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Reachable(buildChain(5), "0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachable_SelfLoopAndUndirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, _ = g.AddEdge("1", "1")
	_, _ = g.AddEdge("1", "2")

	got, err := dfs.Reachable(g, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got, "a self-loop puts the start on a cycle")

	anc, err := dfs.Reachable(g, "2", dfs.WithReverse())
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, anc)

	u := core.NewGraph()
	_, _ = u.AddEdge("a", "b")
	got, err = dfs.Reachable(u, "a", dfs.WithReverse())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got, "undirected edges lead back to the start")
}
