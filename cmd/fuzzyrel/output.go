package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/fuzzyrel/edgelist"
)

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// readCSVEdges parses the CSV edge list at path.
func readCSVEdges(path string) ([]edgelist.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the edge list: %w", err)
	}
	defer f.Close()

	edges, err := edgelist.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}

// readLooseEdges parses the free-form edge list at path.
func readLooseEdges(path string) ([]edgelist.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the edge list: %w", err)
	}

	return edgelist.ParseLoose(string(data)), nil
}
