package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/styles"
)

const sampleText = "the quick brown fox"

var sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "palette",
		Short:   MsgPaletteShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, sectionStyle.Render("COLORS"))
			for _, c := range styles.Names() {
				preview := styles.Style{Color: c}.Sequence() + sampleText + styles.Reset
				fmt.Fprintf(out, "  %-10s %s\n", c.Name(), preview)
			}

			fmt.Fprintln(out, sectionStyle.Render("FLAGS"))
			flags := []struct {
				name  string
				style styles.Style
			}{
				{"bold (b)", styles.Style{Bold: true}},
				{"italic (i)", styles.Style{Italic: true}},
				{"underline (u)", styles.Style{Underline: true}},
			}
			for _, f := range flags {
				preview := f.style.Sequence() + sampleText + styles.Reset
				fmt.Fprintf(out, "  %-14s %s\n", f.name, preview)
			}

			registry := aliases.Default()
			tokens := registry.Tokens()
			if len(tokens) > 0 {
				fmt.Fprintln(out, sectionStyle.Render("ALIASES"))
				for _, token := range tokens {
					style, _ := registry.Resolve(token)
					preview := style.Sequence() + sampleText + styles.Reset
					fmt.Fprintf(out, "  %-10s %s\n", token, preview)
				}
			}
			return nil
		},
	}
}
