package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and maps a YAML problem file.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, &OpError{
			Op:   "config.load_problem",
			Kind: KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrNotFound, err),
		}
	}

	return Parse(path, b)
}

// Parse maps YAML bytes; path is only used in error messages.
func Parse(path string, b []byte) (File, error) {
	var dto YAMLProblem
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return File{}, &OpError{
			Op:   "config.load_problem",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, dto)
}

// Marshal renders f back to YAML, e.g. to save an edited problem.
func Marshal(f File) ([]byte, error) {
	dto := YAMLProblem{
		Name:      f.Name,
		Objective: f.Problem.Objective().String(),
		Costs:     f.Problem.Costs(),
		Supply:    f.Problem.Supply(),
		Demand:    f.Problem.Demand(),
	}
	if f.HasMethod {
		dto.Method = f.Method.String()
	}
	if f.Optimize {
		n, eps := f.MaxIterations, f.Epsilon
		dto.Optimize = &YAMLOptimize{Enabled: true, MaxIterations: &n, Epsilon: &eps}
	}

	return yaml.Marshal(dto)
}
