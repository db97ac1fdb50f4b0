package analysis

// Material describes a print material for weight estimates
type Material struct {
	Name string `yaml:"name" json:"name"`
	// Density in g/cm³
	Density float64 `yaml:"density" json:"density"`
	// InfillRatio is the share of solid weight a typical sparse print has,
	// walls included
	InfillRatio float64 `yaml:"infill_ratio" json:"infillRatio"`
}

// WeightEstimate is the printed weight of a mesh in grams
type WeightEstimate struct {
	Material string  `json:"material"`
	Solid    float64 `json:"solid"`
	Infill   float64 `json:"infill"`
}

// EstimateWeight converts the mesh volume into grams for mat.
// The infill figure is a linear approximation; slicers are more accurate.
func EstimateWeight(m MeshMetrics, mat Material) WeightEstimate {
	solid := m.Volume * mat.Density
	return WeightEstimate{
		Material: mat.Name,
		Solid:    solid,
		Infill:   solid * mat.InfillRatio,
	}
}
