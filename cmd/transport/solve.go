package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/internal/config"
	"github.com/katalvlaran/lvtransport/internal/render"
	"github.com/katalvlaran/lvtransport/modi"
	"github.com/katalvlaran/lvtransport/transport"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// solveFlags are shared by solve and optimize.
type solveFlags struct {
	method        string
	objective     string
	output        string
	steps         bool
	optimize      bool
	maxIterations int
}

func (sf *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sf.method, "method", "m", "", "initial method: northwest, greedy, vogel (default: file method or northwest)")
	cmd.Flags().StringVar(&sf.objective, "objective", "", "override the file objective: min or max")
	cmd.Flags().StringVarP(&sf.output, "output", "o", outputText, "output format: text or json")
	cmd.Flags().BoolVar(&sf.steps, "steps", false, "include the step trace")
	cmd.Flags().IntVar(&sf.maxIterations, "max-iterations", -1, "MODI pivot cap (default: file value or 10)")
}

func solveCmd(a *app) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Build an initial plan, optionally improving it with MODI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, sf, args[0])
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVar(&sf.optimize, "optimize", false, "run MODI on the initial plan")

	return cmd
}

func optimizeCmd(a *app) *cobra.Command {
	sf := &solveFlags{optimize: true}
	cmd := &cobra.Command{
		Use:   "optimize <problem.yaml>",
		Short: "Build an initial plan and run MODI until optimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, sf, args[0])
		},
	}
	sf.register(cmd)

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, sf *solveFlags, path string) error {
	if sf.output != outputText && sf.output != outputJSON {
		return fmt.Errorf("unknown output format %q", sf.output)
	}

	f, err := config.Load(path)
	if err != nil {
		return err
	}
	p, method, err := resolve(f, sf)
	if err != nil {
		return err
	}

	log := a.log.With("file", path, "method", method.String(), "rows", p.Rows(), "cols", p.Cols())
	sol, err := transport.Solve(p, method)
	if err != nil {
		log.Error("solve failed", "error", err)
		return err
	}
	log.Debug("initial plan", "steps", len(sol.Steps), "cost", sol.TotalCost, "degenerate", sol.IsDegenerate())

	var (
		res    modi.Result
		runErr error
	)
	if sf.optimize || f.Optimize {
		opts := f.ModiOptions()
		if sf.maxIterations >= 0 {
			opts = append(opts, modi.WithMaxIterations(sf.maxIterations))
		}
		res, runErr = modi.Optimize(sol, p.Objective(), opts...)
		if runErr != nil && res.Allocation == nil {
			return runErr
		}
		log.Debug("optimized", "iterations", len(res.Iterations), "pivots", res.Pivots, "cost", res.Cost, "state", res.State.String())
		if runErr != nil {
			log.Warn("optimization inconclusive", "error", runErr)
		}
	}

	out := cmd.OutOrStdout()
	if sf.output == outputJSON {
		rep := render.NewReport(f.Name, p).AddSolution(sol, sf.steps)
		if res.Allocation != nil {
			rep.AddOptimization(res, runErr)
		}
		if err := render.WriteJSON(out, rep); err != nil {
			return err
		}

		return inconclusive(runErr)
	}

	r := a.renderer(out)
	if err := r.Problem(f.Name, p); err != nil {
		return err
	}
	if err := r.Solution(sol); err != nil {
		return err
	}
	if sf.steps {
		if err := r.Steps(sol.Steps); err != nil {
			return err
		}
	}
	if res.Allocation != nil {
		if err := r.Optimization(p, res); err != nil {
			return err
		}
	}

	return inconclusive(runErr)
}

// resolve applies flag overrides on top of the file.
func resolve(f config.File, sf *solveFlags) (*transport.Problem, transport.Method, error) {
	p := f.Problem
	if sf.objective != "" {
		obj, err := transport.ParseObjective(sf.objective)
		if err != nil {
			return nil, 0, err
		}
		if p, err = p.WithObjective(obj); err != nil {
			return nil, 0, err
		}
	}

	method := transport.NorthWestCorner
	if f.HasMethod {
		method = f.Method
	}
	if sf.method != "" {
		m, err := transport.ParseMethod(sf.method)
		if err != nil {
			return nil, 0, err
		}
		method = m
	}

	return p, method, nil
}

// inconclusive keeps a best-effort MODI result from failing the command:
// a capped run or an unprovable degenerate plan is still feasible.
func inconclusive(err error) error {
	if err == nil || errors.Is(err, modi.ErrIterationCapExceeded) || errors.Is(err, modi.ErrDegenerateBasis) {
		return nil
	}

	return err
}
