package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"tangramkit/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "tangramkit",
		Short:         "Rework the coordinate data of tangram shape kits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (.toml, .yaml or .yml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	cmd.AddCommand(
		newTransformCmd(opts),
		newGraphCmd(opts),
		newIDsCmd(),
	)
	return cmd
}
