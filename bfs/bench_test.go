package bfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/fuzzyrel/bfs"
	"github.com/katalvlaran/fuzzyrel/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10 and
// queries every subtree size.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const nodes = (1 << 10) - 1
	g := core.NewGraph()
	for i := 2; i <= nodes; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i/2), strconv.Itoa(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, _ := bfs.BFS(g, "1")
		for _, v := range res.Order {
			_ = res.DescendantCount(v)
		}
	}
}
