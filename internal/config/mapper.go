package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvtransport/modi"
	"github.com/katalvlaran/lvtransport/transport"
)

// File is a mapped problem file.
type File struct {
	Name    string
	Problem *transport.Problem

	// Method is the default strategy; valid only when HasMethod is set.
	Method    transport.Method
	HasMethod bool

	Optimize      bool
	MaxIterations int
	Epsilon       float64
}

// ModiOptions turns the optimize block into engine options.
func (f File) ModiOptions() []modi.Option {
	return []modi.Option{
		modi.WithMaxIterations(f.MaxIterations),
		modi.WithEpsilon(f.Epsilon),
	}
}

// Map validates dto and builds the domain problem.
// A missing name falls back to the file's base name.
func Map(path string, dto YAMLProblem) (File, error) {
	f := File{
		Name:          strings.TrimSpace(dto.Name),
		MaxIterations: modi.DefaultMaxIterations,
		Epsilon:       modi.DefaultEpsilon,
	}
	if f.Name == "" && path != "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	obj := transport.Minimize
	if s := strings.TrimSpace(dto.Objective); s != "" {
		var err error
		if obj, err = transport.ParseObjective(s); err != nil {
			return File{}, invalidField(path, "objective", err)
		}
	}

	if s := strings.TrimSpace(dto.Method); s != "" {
		m, err := transport.ParseMethod(s)
		if err != nil {
			return File{}, invalidField(path, "method", err)
		}
		f.Method, f.HasMethod = m, true
	}

	if len(dto.Costs) == 0 {
		return File{}, invalidField(path, "costs", errors.New("cost matrix is required"))
	}

	p, err := transport.NewProblem(dto.Costs, dto.Supply, dto.Demand, obj)
	if err != nil {
		return File{}, invalidField(path, problemField(err), err)
	}
	f.Problem = p

	if o := dto.Optimize; o != nil {
		f.Optimize = o.Enabled
		if o.MaxIterations != nil {
			if *o.MaxIterations < 0 {
				return File{}, invalidField(path, "optimize.max_iterations", modi.ErrBadOptions)
			}
			f.MaxIterations = *o.MaxIterations
		}
		if o.Epsilon != nil {
			if *o.Epsilon < 0 {
				return File{}, invalidField(path, "optimize.epsilon", modi.ErrBadOptions)
			}
			f.Epsilon = *o.Epsilon
		}
	}

	return f, nil
}

// problemField names the YAML field a NewProblem error points at.
func problemField(err error) string {
	var fe *transport.FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}

	return "costs"
}
