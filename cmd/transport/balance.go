package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/internal/config"
	"github.com/katalvlaran/lvtransport/transport"
)

func balanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <problem.yaml>",
		Short: "Check that total supply equals total demand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(args[0])
			if err != nil {
				return err
			}

			bc := f.Problem.Balance()
			a.log.Debug("balance checked", "file", args[0], "supply", bc.TotalSupply, "demand", bc.TotalDemand)
			if err := a.renderer(cmd.OutOrStdout()).Balance(bc); err != nil {
				return err
			}
			if !bc.Balanced {
				return fmt.Errorf("%s: %w", f.Name, transport.ErrUnbalanced)
			}

			return nil
		},
	}
}
