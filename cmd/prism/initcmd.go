package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/prism/pkg/config"
)

func newInitCmd() *cobra.Command {
	var (
		force     bool
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				out, err := cfg.Dump()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			path := config.Path()
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the effective configuration instead of writing")
	return cmd
}
