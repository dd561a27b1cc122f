// Package i18n provides internationalization support for script-sleuth.
// All user-facing strings are centralized here for future localization.
package i18n

// Message keys organized by functional area.
// English is the only locale for now.

// Common messages
const (
	// General
	MsgCancelled = "Cancelled"
	MsgNoScripts = "No scripts found in %s"

	// Input prompts
	MsgSelectScript     = "Which script would you like to run ?"
	MsgSelectRange      = "Select (1-%d): "
	MsgInvalidSelection = "invalid selection: %s"
	MsgNoOptions        = "no options to select"
	MsgListHelp         = "↑/↓ move • enter run • q cancel"
)

// Command descriptions
const (
	// Root command
	CmdRootShort = "Pick a script from package.json and run it"
	CmdRootLong  = `ScriptSleuth lists the scripts defined in the package.json of the
current directory, lets you pick one and runs it with your package manager.

Examples:
  script-sleuth -p npm
  script-sleuth --prefix yarn
  script-sleuth build
  script-sleuth --list

A script named "completion" is shadowed by the completion command.
Run it after "--":
  script-sleuth -- completion`

	CmdCompletionShort = "Generate the autocompletion script for the specified shell"
	CmdCompletionLong  = `Generate the autocompletion script for the specified shell.

Bash:
  script-sleuth completion bash > /etc/bash_completion.d/script-sleuth

Zsh:
  script-sleuth completion zsh > "${fpath[1]}/_script-sleuth"

Fish:
  script-sleuth completion fish > ~/.config/fish/completions/script-sleuth.fish

PowerShell:
  script-sleuth completion powershell > script-sleuth.ps1`
)

// Flag descriptions
const (
	FlagPrefix  = "The prefix to use for the script command (npm, yarn, pnpm, ...)"
	FlagList    = "List the scripts of package.json and exit"
	FlagVersion = "Print the version and exit"
	FlagConfig  = "Config file (default: .script-sleuth.yaml)"
	FlagDryRun  = "Show the command that would run without running it"
	FlagVerbose = "Show verbose output"
	FlagDebug   = "Show debug output"
	FlagQuiet   = "Only show errors"
)

// UI messages
const (
	MsgUsingPrefix   = "Using %s to run scripts"
	MsgRunning       = "Running %s"
	MsgDryRun        = "[DRY RUN] %s"
	MsgScriptsHeader = "Scripts in %s"
	MsgTableName     = "NAME"
	MsgTableCommand  = "COMMAND"
)

// Error messages for the errors package
const (
	// Error operation names
	ErrOpManifest = "manifest"
	ErrOpSelect   = "select"
	ErrOpRun      = "run"
	ErrOpConfig   = "config"

	// Error messages
	ErrMsgNoManifest       = "No package.json found"
	ErrMsgEmptySelection   = "No script name provided"
	ErrMsgUnknownScript    = "script %q not found in package.json"
	ErrMsgSpawnFailed      = "failed to start %s"
	ErrMsgChildFailed      = "%s exited with code %d"
	ErrMsgLoadConfigFailed = "failed to load config"
)
