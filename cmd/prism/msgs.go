package main

// Message constants
const (
	MsgRootShort = "A console logger with inline style markup"
	MsgRootLong  = `prism prints leveled, colorized, timestamped messages to the console.

Messages may contain flat <tokens>...</> spans that restyle a region of
text locally: the tag body is a comma-separated list of color and font
flag names, or a registered alias. See "prism topics markup" for the
full grammar.`

	MsgFlagVerbose = "Increase diagnostics verbosity (-v info, -vv debug, -vvv trace)"
	MsgFlagLevel   = "Level to log at (debug, info, warn, error)"
	MsgFlagForce   = "Overwrite an existing config file"

	MsgLogShort = "Log a single message"
	MsgLogLong  = `Render one message through the logger, honoring the configured
threshold, color mode and aliases.`
	MsgLogExample = `  prism log "hello"
  prism log --level warn "<yellow,italic>Low disk</>: {}%" 87.3
  prism log --level error "mount <path>/dev/sda1</> failed"`

	MsgDemoShort = "Showcase levels, markup and aliases"

	MsgPaletteShort = "List colors, font flags and registered aliases"

	MsgInitShort = "Write the default config file"
	MsgInitLong  = `Write the annotated default configuration to the XDG config dir.
With --print, show the effective configuration instead of writing.`

	MsgTopicsShort = "Show reference documentation"

	MsgVersionShort = "Print version information"
)

// MsgUsageTemplate is cobra's usage template with section headers pushed
// through the bold/boldUpper template funcs.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
