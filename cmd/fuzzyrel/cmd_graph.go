package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzyrel/core"
	"github.com/katalvlaran/fuzzyrel/edgelist"
	"github.com/katalvlaran/fuzzyrel/hierarchy"
	"github.com/katalvlaran/fuzzyrel/matrix"
)

// adjacencyCmd prints the symmetric 0/1 matrix of an undirected edge list.
func (a *app) adjacencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency <edges.csv>",
		Short: "Print the adjacency matrix of 1-based integer edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readCSVEdges(args[0])
			if err != nil {
				return err
			}
			pairs, err := edgelist.Ints(edges)
			if err != nil {
				return err
			}
			m, err := matrix.BuildAdjacency(pairs)
			if err != nil {
				return err
			}
			a.logger.Info("adjacency built", "edges", len(pairs), "vertices", m.Rows())

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), m.Ints())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m)

			return err
		},
	}
}

// relationsJSON is the --output json form of a RelationSet.
type relationsJSON struct {
	Vertices  []string           `json:"vertices"`
	Relations map[string][][]int `json:"relations"`
	Cycles    [][]string         `json:"cycles,omitempty"`
}

// relationsCmd prints r1..r5 of a directed hierarchy.
func (a *app) relationsCmd() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "relations <edges.csv>",
		Short: "Print the relation matrices r1..r5 of a parent,child edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readCSVEdges(args[0])
			if err != nil {
				return err
			}
			rel, err := hierarchy.Relations(edges, root, hierarchy.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			a.logger.Info("relations built", "edges", len(edges), "vertices", len(rel.Vertices))
			for _, c := range rel.Cycles {
				a.logger.Warn("hierarchy contains a cycle", "cycle", c)
			}

			all := rel.All()
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				doc := relationsJSON{Vertices: rel.Vertices, Relations: make(map[string][][]int, len(all)), Cycles: rel.Cycles}
				for i, m := range all {
					doc.Relations[hierarchy.RelationNames[i]] = m.Ints()
				}
				return writeJSON(out, doc)
			}
			fmt.Fprintf(out, "vertices: %v\n", rel.Vertices)
			for i, m := range all {
				fmt.Fprintf(out, "\n%s:\n%s", hierarchy.RelationNames[i], m)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "1", "root vertex")

	return cmd
}

// entropyCmd prints H and h of an undirected hierarchy.
func (a *app) entropyCmd() *cobra.Command {
	var (
		root    string
		details bool
	)
	cmd := &cobra.Command{
		Use:   "entropy <edges.txt>",
		Short: "Print the structural entropy H and its normalized value h",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readLooseEdges(args[0])
			if err != nil {
				return err
			}
			m, err := hierarchy.Entropy(edges, root, hierarchy.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			a.logger.Info("entropy computed", "nodes", m.Nodes, "raw_h", m.RawH, "href", m.Href)

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, m)
			}
			fmt.Fprintf(out, "H = %v\nh = %v\n", m.H, m.Normalized)
			if details {
				ids := make([]string, 0, len(m.Counts))
				for id := range m.Counts {
					ids = append(ids, id)
				}
				core.SortNatural(ids)
				for _, id := range ids {
					c := m.Counts[id]
					fmt.Fprintf(out, "%s: l1=%d l2=%d l3=%d l4=%d l5=%d\n",
						id, c.Children, c.Parents, c.IndirectChildren, c.IndirectAncestors, c.Siblings)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "1", "root vertex")
	cmd.Flags().BoolVar(&details, "details", false, "also print l1..l5 per vertex")

	return cmd
}
