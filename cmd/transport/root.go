package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/internal/logging"
	"github.com/katalvlaran/lvtransport/internal/render"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	debug   bool
	noColor bool
	log     *slog.Logger
}

func (a *app) renderer(w io.Writer) *render.Renderer {
	return render.New(w, !a.noColor)
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	cmd := &cobra.Command{
		Use:          "transport",
		Short:        "Transportation problem solver (North-West, Greedy, Vogel, MODI)",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logging.NewTo(cmd.ErrOrStderr(), logging.Level(a.debug))
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colors and styles")

	cmd.AddCommand(
		balanceCmd(a),
		solveCmd(a),
		optimizeCmd(a),
		compareCmd(a),
		versionCmd(),
	)

	return cmd
}
