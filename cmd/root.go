package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/observability"
)

// quietConsole marks commands that own the terminal; they log to the file only.
const quietConsole = "quiet-console"

// app is the state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	cfgFile string
	cfg     *config.Config
	viper   *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mouse-away",
		Short:         "Interactive UI hooks; ships an element that runs away from the pointer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, v, err := config.Load(a.cfgFile)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "mouse-away"})
				return err
			}
			a.cfg, a.viper = cfg, v

			if cmd.Annotations[quietConsole] == "true" {
				observability.Initialize(cfg.Logger, nil)
			} else {
				observability.InitializeLogger(cfg.Logger)
			}
			observability.GetLogger().Debug("config loaded", zap.String("file", v.ConfigFileUsed()))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./mouseaway.yaml)")

	root.AddCommand(
		newWindowCmd(a),
		newTermCmd(a),
		newHooksCmd(),
		newConfigCmd(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
