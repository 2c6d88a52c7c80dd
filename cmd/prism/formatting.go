package main

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// terminalBold wraps s in pterm bold styling when stdout is a terminal,
// leaving piped output clean.
func terminalBold(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBold(s string) string {
	return terminalBold(s)
}

func formatUpper(s string) string {
	return strings.ToUpper(s)
}

func formatBoldUpper(s string) string {
	return terminalBold(strings.ToUpper(s))
}

// initTemplateFormatting registers the template funcs MsgUsageTemplate
// relies on for its section headers.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
