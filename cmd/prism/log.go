package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/config"
	"github.com/arthur-debert/prism/pkg/console"
	"github.com/arthur-debert/prism/pkg/logging"
)

func newLogCmd() *cobra.Command {
	var levelName string

	cmd := &cobra.Command{
		Use:     "log <template> [args...]",
		Short:   MsgLogShort,
		Long:    MsgLogLong,
		Example: MsgLogExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := console.ParseLevel(levelName)
			if err != nil {
				return err
			}
			logger, err := loggerFromConfig()
			if err != nil {
				return err
			}

			fwd := make([]interface{}, 0, len(args)-1)
			for _, a := range args[1:] {
				fwd = append(fwd, a)
			}
			logger.Log(level, args[0], fwd...)
			return nil
		},
	}

	cmd.Flags().StringVarP(&levelName, "level", "l", "info", MsgFlagLevel)
	return cmd
}

// loggerFromConfig builds a logger from the effective configuration,
// with configured aliases registered on the default registry.
func loggerFromConfig() (*console.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.InternalLog {
		// config opts into diagnostics without requiring -v flags
		logging.Setup(2)
	}
	threshold, err := cfg.Threshold()
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(aliases.Default()); err != nil {
		return nil, err
	}
	return console.New(
		console.WithThreshold(threshold),
		console.WithColor(cfg.ColorEnabled(console.DetectColor(os.Stdout))),
	), nil
}
