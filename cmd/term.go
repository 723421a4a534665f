package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/mouse-away/internal/repulsion"
	"github.com/iburimskiy/mouse-away/internal/terminal"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "term",
		Short:       "Run the checkout demo in the terminal",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{quietConsole: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			motion := repulsion.NewToggleMotion(bool(repulsion.MotionFromEnv()))
			return terminal.New(screen, a.cfg, motion).Run(ctx)
		},
	}
}
