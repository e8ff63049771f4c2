package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Zone file preprocessor and build driver for T6 mods"
	MsgBuildShort      = "Resolve zones, run the linker and package the mod"
	MsgInitShort       = "Create a new mod project"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgBuildFailed = "Build failed!"
	MsgVersion     = "t6modm version %s\n"
	MsgCommit      = "  commit: %s\n"
	MsgBuilt       = "  built:  %s\n"

	// Error messages
	MsgErrInvalidTarget = "invalid target %q (expected debug or release)"
	MsgErrNoCommand     = "no command specified"
	MsgErrUnknownShell  = "unsupported shell %q"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTarget       = "Build target (debug or release)"
	MsgFlagWait         = "Open the merged zone in an editor and wait before linking"
	MsgFlagProjectDir   = "Project directory (default: nearest directory holding project.t6modm.json)"
	MsgFlagOutputFolder = "Folder receiving the archives (default: <project>/compiled)"
	MsgFlagDirectory    = "Directory to create the project in (default: ./<name>)"
	MsgFlagDescription  = "Project description"
	MsgFlagAuthor       = "Project author"
)

// Long messages
const (
	MsgRootLong = `t6modm prepares T6 mod projects for the zone linker.

It expands the project's root zone, resolving includes across dependency
projects, filtering scripts per build target and expanding file patterns,
then runs the linker and packages the result into mod.iwd and
server-only.zip.`

	MsgBuildLong = `Build resolves src/zone_source/mod.zone into a single merged zone, runs
the linker on it and writes the client archive, the server-only archive and
mod.json to the output folder.

With --target release, scripts owned by the project are moved from the
client archive to the server-only archive. OAT_HOME and GAME_HOME must be
set, either in the environment or in the project's .t6modm.env.`

	MsgBuildExample = `  t6modm build
  t6modm build --target release
  t6modm build --wait --output-folder /tmp/out`

	MsgInitLong = `Init lays out a new project: the manifest, an env file template, the
default configuration, a root zone and the localized strings file.

The target directory may exist but must be empty.`

	MsgInitExample = `  t6modm init mymod
  t6modm init mymod --directory mods/mymod --author someone`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(t6modm completion bash)

Zsh:
  $ t6modm completion zsh > "${fpath[1]}/_t6modm"

Fish:
  $ t6modm completion fish | source

PowerShell:
  PS> t6modm completion powershell | Out-String | Invoke-Expression`

	MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
)
