package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philipparndt/stlmeter/pkg/analysis"
	"github.com/philipparndt/stlmeter/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	infoJSON     bool
	infoMaterial string
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display the print metrics of an STL file",
	Long: `Show dimensions, volume, surface area and triangle count, plus a weight
estimate for the selected material and a watertightness check.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Print the report as JSON")
	infoCmd.Flags().StringVarP(&infoMaterial, "material", "m", "", "Material for the weight estimate (default from config)")
}

// infoReport is the JSON shape of the info command
type infoReport struct {
	File    string                  `json:"file"`
	Name    string                  `json:"name,omitempty"`
	Format  string                  `json:"format"`
	Metrics analysis.MeshMetrics    `json:"metrics"`
	Closed  analysis.ClosedReport   `json:"closed"`
	Weight  analysis.WeightEstimate `json:"weight"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	material, err := cfg.Material(infoMaterial)
	if err != nil {
		return err
	}

	model, err := loadModel(cmd.Context(), cfg, filename)
	if err != nil {
		return err
	}
	result := analysis.SummarizeModel(model)

	report := infoReport{
		File:    filename,
		Name:    model.Name,
		Format:  model.Format.String(),
		Metrics: result.MeshMetrics,
		Closed:  result.Closed,
		Weight:  analysis.EstimateWeight(result.MeshMetrics, material),
	}

	if infoJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printInfo(cmd.OutOrStdout(), model, result, report)
	return nil
}

func printInfo(w io.Writer, model *stl.Model, result *analysis.MeasurementResult, report infoReport) {
	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	if report.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", report.Name)
	}
	fmt.Fprintf(w, "File: %s (%s)\n\n", report.File, report.Format)

	fmt.Fprintln(w, "Print Metrics:")
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(w, "  Volume: %s\n", analysis.FormatMeasurement(result.Volume, "cm³"))
	fmt.Fprintf(w, "  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "cm²"))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %.6f mm\n", result.Dimensions.X)
	fmt.Fprintf(w, "  Depth (Y): %.6f mm\n", result.Dimensions.Y)
	fmt.Fprintf(w, "  Height (Z): %.6f mm\n", result.Dimensions.Z)
	if model.TriangleCount() > 0 {
		fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(w, "  Diagonal: %.6f mm\n", result.BoundingBox.Diagonal())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Weight (%s):\n", report.Weight.Material)
	fmt.Fprintf(w, "  Solid: %.2f g\n", report.Weight.Solid)
	fmt.Fprintf(w, "  Typical infill: %.2f g\n", report.Weight.Infill)

	if !result.Closed.Closed {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Warning: mesh is not closed (%d boundary, %d non-manifold edges); volume may be wrong\n",
			result.Closed.BoundaryEdges, result.Closed.NonManifoldEdges)
	}
}
