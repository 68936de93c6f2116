package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/internal/config"
	"github.com/katalvlaran/lvtransport/transport"
)

func compareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <problem.yaml>",
		Short: "Run every initial method and compare the plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(args[0])
			if err != nil {
				return err
			}

			methods := []transport.Method{
				transport.NorthWestCorner,
				transport.GreedyCell,
				transport.VogelApproximation,
			}
			sols := make([]transport.Solution, 0, len(methods))
			for _, m := range methods {
				sol, err := transport.Solve(f.Problem, m)
				if err != nil {
					return err
				}
				a.log.Debug("solved", "method", m.String(), "cost", sol.TotalCost)
				sols = append(sols, sol)
			}

			return a.renderer(cmd.OutOrStdout()).Comparison(sols)
		},
	}
}
