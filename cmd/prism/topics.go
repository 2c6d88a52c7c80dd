package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/prism/pkg/cobrax/topics"
	"github.com/arthur-debert/prism/pkg/errors"
)

//go:embed docs
var docsFS embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := fs.Sub(docsFS, "docs")
			if err != nil {
				return err
			}
			manager, err := topics.New(sub, topics.NewGlamourRenderer())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "Available topics:")
				for _, name := range manager.Names() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				return nil
			}

			topic, ok := manager.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no such topic %q", args[0])
			}
			fmt.Fprint(out, manager.Render(topic))
			return nil
		},
	}
}
