// Package config loads stlmeter settings: the binary triangle ceiling and the
// material profiles used for weight estimates.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/stlmeter/pkg/analysis"
	"github.com/philipparndt/stlmeter/pkg/stl"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all settings read from YAML
type Config struct {
	MaxTriangles    uint32              `yaml:"max_triangles"`
	DefaultMaterial string              `yaml:"default_material"`
	Materials       []analysis.Material `yaml:"materials"`
}

// ErrUnknownMaterial is returned when a material name is not configured
var ErrUnknownMaterial = errors.New("unknown material")

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := parse(defaultsYAML)
	if err != nil {
		panic("config: invalid built-in defaults: " + err.Error())
	}
	return cfg
}

// Load reads the configuration at path. An empty path yields the defaults.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := parseOver(Default(), data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	return parseOver(&Config{}, data)
}

func parseOver(base *Config, data []byte) (*Config, error) {
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// A file that replaces the material list without naming a default
	// falls back to its first material instead of the inherited one.
	var explicit struct {
		DefaultMaterial *string `yaml:"default_material"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return nil, err
	}
	if explicit.DefaultMaterial == nil && len(cfg.Materials) > 0 {
		if _, err := cfg.Material(cfg.DefaultMaterial); err != nil {
			cfg.DefaultMaterial = cfg.Materials[0].Name
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and name uniqueness
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Materials))
	for _, m := range c.Materials {
		key := strings.ToLower(m.Name)
		switch {
		case key == "":
			return errors.New("material without name")
		case seen[key]:
			return fmt.Errorf("duplicate material %q", m.Name)
		case m.Density <= 0:
			return fmt.Errorf("material %q: density must be positive, got %v", m.Name, m.Density)
		case m.InfillRatio < 0 || m.InfillRatio > 1:
			return fmt.Errorf("material %q: infill_ratio must be within [0, 1], got %v", m.Name, m.InfillRatio)
		}
		seen[key] = true
	}
	if c.DefaultMaterial != "" && !seen[strings.ToLower(c.DefaultMaterial)] {
		return fmt.Errorf("default_material %q is not configured", c.DefaultMaterial)
	}
	return nil
}

// Material looks up a material by case-insensitive name. An empty name
// selects the default material.
func (c *Config) Material(name string) (analysis.Material, error) {
	if name == "" {
		name = c.DefaultMaterial
	}
	for _, m := range c.Materials {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return analysis.Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// Decoder returns an STL decoder honoring the configured triangle ceiling
func (c *Config) Decoder() stl.Decoder {
	return stl.Decoder{MaxTriangles: c.MaxTriangles}
}
