package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlmeter/pkg/stl"
	"github.com/spf13/cobra"
)

var convertASCII bool

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Rewrite an STL file as binary or ASCII STL",
	Long:  "Decode an STL (or render an OpenSCAD) file and write it as binary STL, or as ASCII STL with --ascii.",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&convertASCII, "ascii", false, "Write ASCII STL instead of binary")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model, err := loadModel(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if convertASCII {
		err = stl.WriteASCII(out, model.Name, model.Triangles)
	} else {
		err = stl.WriteBinary(out, model.Name, model.Triangles)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d triangles to %s\n", model.TriangleCount(), args[1])
	return nil
}
