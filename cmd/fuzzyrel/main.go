// Command fuzzyrel evaluates fuzzy heating rules and the relation and
// entropy metrics of graph hierarchies read from edge-list files.
//
//	fuzzyrel adjacency edges.csv
//	fuzzyrel relations edges.csv --root 1
//	fuzzyrel entropy edges.txt --root 1
//	fuzzyrel fuzzy --temperature t.json --heating h.json --rules r.json --value 19
//	fuzzyrel fuzzy --scenario boiler.yaml --plot trace.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
