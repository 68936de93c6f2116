package config

// YAMLProblem is the on-disk shape of a problem file.
type YAMLProblem struct {
	Name      string      `yaml:"name"`
	Objective string      `yaml:"objective"`
	Method    string      `yaml:"method"`
	Costs     [][]float64 `yaml:"costs"`
	Supply    []float64   `yaml:"supply"`
	Demand    []float64   `yaml:"demand"`

	Optimize *YAMLOptimize `yaml:"optimize"`
}

// YAMLOptimize holds optional MODI settings.
type YAMLOptimize struct {
	Enabled       bool     `yaml:"enabled"`
	MaxIterations *int     `yaml:"max_iterations"`
	Epsilon       *float64 `yaml:"epsilon"`
}
