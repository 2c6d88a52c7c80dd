package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/config"
	"github.com/arthur-debert/prism/pkg/console"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Apply(aliases.Default()); err != nil {
				return err
			}
			if err := aliases.Register("#", "purple,i"); err != nil {
				return err
			}

			// the demo ignores the configured threshold so every level shows
			logger := console.New(
				console.WithThreshold(console.LevelDebug),
				console.WithColor(cfg.ColorEnabled(console.DetectColor(os.Stdout))),
			)

			logger.Debug("resolving <path>~/.config/prism/config.toml</>")
			logger.Info("User {} logged in from {}", 42, "10.0.0.7")
			logger.Info("deploy finished <ok>all checks passed</>")
			logger.Warn("<yellow,italic>Low disk</>: {:.1}% used", 87.3)
			logger.Error("mount failed after {} retries, <err>giving up</>", 3)
			logger.NewLine(console.LevelInfo)
			logger.Info("<#>aliases</> can be registered at runtime")
			logger.Info("malformed markup degrades: <red,blue>still readable</>")
			return nil
		},
	}
}
