package main

import (
	"fmt"

	"github.com/philipparndt/stlmeter/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in an STL file",
	Long:  "Find and measure edges, including longest, shortest, or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter (mm)")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter (mm)")
}

func runEdges(cmd *cobra.Command, args []string) error {
	if edgesCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", edgesCount)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model, err := loadModel(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}

	result := analysis.AnalyzeModel(model)
	w := cmd.OutOrStdout()

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f mm (found %d)", edgesMinLength, edgesMaxLength, len(edges))
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
	}
	if len(edges) > edgesCount {
		edges = edges[:edgesCount]
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Total edges in model: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "Min edge length: %.6f mm\n", result.MinEdgeLength)
	fmt.Fprintf(w, "Max edge length: %.6f mm\n", result.MaxEdgeLength)
	fmt.Fprintf(w, "Avg edge length: %.6f mm\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Fprintln(w, "No edges found matching the criteria.")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	fmt.Fprintln(w, "-----------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Fprintf(w, "%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
	return nil
}
