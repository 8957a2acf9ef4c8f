package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fuzzyrel/core"
	"github.com/katalvlaran/fuzzyrel/dfs"
)

// ExampleReachable lists descendants and, walking in reverse, ancestors.
func ExampleReachable() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"1", "2"}, {"1", "3"}, {"3", "4"}, {"3", "5"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	desc, _ := dfs.Reachable(g, "1")
	anc, _ := dfs.Reachable(g, "5", dfs.WithReverse())
	fmt.Println("descendants of 1:", desc)
	fmt.Println("ancestors of 5:", anc)
	// Output:
	// descendants of 1: [2 3 4 5]
	// ancestors of 5: [1 3]
}

// ExampleDetectCycles shows detecting a cycle in a directed graph.
func ExampleDetectCycles() {
	g := core.NewGraph(core.WithDirected(true))
	// A->B, B->C, B->D, D->H, H->I, I->B closes the cycle
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"B", "D"}, {"D", "H"}, {"H", "I"}, {"I", "B"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(has)
	for _, cyc := range cycles {
		fmt.Println(strings.Join(cyc, " -> "))
	}
	// Output:
	// true
	// B -> D -> H -> I -> B
}
