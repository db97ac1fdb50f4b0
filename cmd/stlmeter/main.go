package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlmeter/internal/config"
	"github.com/philipparndt/stlmeter/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "stlmeter",
	Short: "Measure STL meshes for 3D print quoting",
	Long: `stlmeter reads ASCII and binary STL files and reports the physical
properties used for print cost estimation: bounding dimensions (mm),
volume (cm³), surface area (cm²) and triangle count.

Coordinates are assumed to be millimeters.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (materials, triangle limit)")
}

// loadConfig reads the file given by --config, or the built-in defaults
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
