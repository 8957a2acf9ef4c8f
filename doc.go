// Package fuzzyrel is a small toolkit for rule-based heating control and
// for describing hierarchies given as edge lists.
//
// 🚀 What is inside?
//
//	• Fuzzy control: piecewise-linear terms, Mamdani min-max inference,
//	  first-peak defuzzification over a sampled output universe
//	• Graph core: thread-safe string-keyed graph with natural vertex order
//	• Traversals: BFS trees and DFS reachability & cycle detection
//	• Matrices: dense 0/1 adjacency and the five relation matrices r1..r5
//	• Metrics: structural entropy H and its normalized value h
//
// Packages:
//
//	fuzzy/      : term normalization, membership, universe, Evaluator
//	core/       : Graph, vertices, edges, natural ordering
//	bfs/, dfs/  : traversals used by the hierarchy metrics
//	matrix/     : Dense matrix and adjacency builders
//	edgelist/   : CSV and free-form edge-list parsing
//	hierarchy/  : Relations (r1..r5) and Entropy
//	cmd/fuzzyrel: command-line front end
//
// Quick example:
//
//	out, err := fuzzy.Evaluate(temperatureJSON, heatingJSON, rulesJSON, 19.5)
//
// reads "how hard to heat at 19.5 degrees" from the rule base.
package fuzzyrel
