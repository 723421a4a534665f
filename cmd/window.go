package cmd

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/game"
	"github.com/iburimskiy/mouse-away/internal/observability"
	"github.com/iburimskiy/mouse-away/internal/repulsion"
)

func newWindowCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the checkout demo in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reload chan *config.Config
			if watch {
				reload = make(chan *config.Config, 1)
				watchConfig(a, reload)
			}
			motion := repulsion.NewToggleMotion(bool(repulsion.MotionFromEnv()))
			return game.Run(a.cfg, motion, reload)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the repulsion settings when the config file changes")
	return cmd
}

// watchConfig forwards every valid edit of the config file to reload. Only
// the newest config is kept when the window has not picked up the last one.
func watchConfig(a *app, reload chan *config.Config) {
	logger := observability.GetLogger().Named("config")
	if a.viper.ConfigFileUsed() == "" {
		logger.Warn("no config file to watch")
		return
	}
	a.viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := config.FromViper(a.viper)
		if err != nil {
			logger.Warn("ignoring config change", zap.String("file", e.Name), zap.Error(err))
			return
		}
		select {
		case <-reload:
		default:
		}
		reload <- cfg
		logger.Info("config changed", zap.String("file", e.Name))
	})
	a.viper.WatchConfig()
}
