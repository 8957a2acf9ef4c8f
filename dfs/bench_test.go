package dfs_test

import (
	"testing"

	"github.com/katalvlaran/fuzzyrel/dfs"
)

// BenchmarkReachable_Chain10000 measures descendant queries on a directed chain of 10,000 vertices.
func BenchmarkReachable_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Reachable(g, "0")
	}
}

// BenchmarkReachable_BinaryTree measures descendant queries on a 1023-node tree.
func BenchmarkReachable_BinaryTree(b *testing.B) {
	g := buildBinaryTree(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Reachable(g, "1")
	}
}
