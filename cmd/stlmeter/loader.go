package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/stlmeter/internal/config"
	"github.com/philipparndt/stlmeter/pkg/openscad"
	"github.com/philipparndt/stlmeter/pkg/stl"
)

func isOpenSCAD(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".scad")
}

// readInput returns STL bytes for an .stl file, or renders an .scad file
func readInput(ctx context.Context, filePath string) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".scad":
		filePath, err := filepath.Abs(filePath)
		if err != nil {
			return nil, err
		}
		renderer := openscad.NewRenderer(filepath.Dir(filePath))
		data, err := renderer.Render(ctx, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}
		return data, nil
	case ".stl":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read STL file: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

// loadModel reads and decodes filePath with the configured decoder
func loadModel(ctx context.Context, cfg *config.Config, filePath string) (*stl.Model, error) {
	data, err := readInput(ctx, filePath)
	if err != nil {
		return nil, err
	}
	model, err := cfg.Decoder().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", filePath, err)
	}
	return model, nil
}

// watchedFiles lists the files whose change should trigger a re-measure
func watchedFiles(filePath string) ([]string, error) {
	if !isOpenSCAD(filePath) {
		return []string{filePath}, nil
	}
	filePath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	return openscad.NewRenderer(filepath.Dir(filePath)).ResolveDependencies(filePath)
}
