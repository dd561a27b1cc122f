package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/scriptsleuth/script-sleuth/internal/config"
	sleutherrors "github.com/scriptsleuth/script-sleuth/internal/errors"
	"github.com/scriptsleuth/script-sleuth/internal/i18n"
	"github.com/scriptsleuth/script-sleuth/internal/logging"
	"github.com/scriptsleuth/script-sleuth/internal/manifest"
	"github.com/scriptsleuth/script-sleuth/internal/runner"
	"github.com/scriptsleuth/script-sleuth/internal/ui"
	"github.com/spf13/cobra"
)

// runRoot loads package.json, picks a script and runs it.
// Every failure ends the invocation; nothing is retried.
func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	w := cmd.OutOrStdout()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), logging.Level(cfg.Verbose, cfg.Debug, cfg.Quiet))

	m, err := manifest.Load(manifest.FsFactory(), cfg.ManifestPath())
	if err != nil {
		logger.Debug("manifest load failed", "err", err)
		return sleutherrors.ErrManifestUnavailable(err)
	}
	logger.Info("manifest loaded", "path", m.Path, "scripts", len(m.Scripts))

	if opts.prefix != "" && !cfg.Quiet {
		fmt.Fprintf(w, i18n.MsgUsingPrefix+"\n", cfg.Prefix)
	}

	if opts.list {
		printScripts(cmd, m)
		return nil
	}

	name, err := pickScript(cmd, m, args)
	if err != nil {
		return err
	}

	return runScript(cmd, cfg, logger, name)
}

// loadConfig reads the config file and applies the flags on top of it
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, sleutherrors.ErrConfig(err)
	}

	// Override with flags
	cfg.ApplyPrefix(opts.prefix)
	if opts.dryRun {
		cfg.DryRun = true
	}
	if opts.verbose {
		cfg.Verbose = true
	}
	if opts.debug {
		cfg.Debug = true
		cfg.Verbose = true // debug implies verbose
	}
	if opts.quiet {
		cfg.Quiet = true
		cfg.Verbose = false
		cfg.Debug = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, sleutherrors.ErrConfig(err)
	}
	return cfg, nil
}

// pickScript returns the script named on the command line, or asks for one
func pickScript(cmd *cobra.Command, m *manifest.Manifest, args []string) (string, error) {
	if len(args) == 1 {
		s, ok := m.Lookup(args[0])
		if !ok {
			return "", sleutherrors.ErrUnknownScript(args[0])
		}
		return s.Name, nil
	}

	if len(m.Scripts) == 0 {
		return "", sleutherrors.ErrNoScripts(m.Path)
	}

	prompt := ui.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	sel, err := prompt.Select(i18n.MsgSelectScript, ScriptChoices(m.Scripts))
	if err != nil {
		if errors.Is(err, ui.ErrNoOptions) {
			return "", sleutherrors.ErrNoScripts(m.Path)
		}
		return "", sleutherrors.New(sleutherrors.KindEmptySelection, i18n.ErrOpSelect, i18n.ErrMsgEmptySelection, err)
	}
	if !sel.Confirmed() {
		return "", sleutherrors.ErrSelectionCancelled()
	}
	if sel.Index < 0 || sel.Index >= len(m.Scripts) || m.Scripts[sel.Index].Name == "" {
		return "", sleutherrors.ErrEmptySelection()
	}
	return m.Scripts[sel.Index].Name, nil
}

// ScriptChoices returns the prompt labels "<name>: <command>" in manifest order
func ScriptChoices(scripts []manifest.Script) []string {
	choices := make([]string, len(scripts))
	for i, s := range scripts {
		choices[i] = fmt.Sprintf("%s: %s", s.Name, s.Command)
	}
	return choices
}

// runScript spawns "<prefix> run <name>" and mirrors its exit code
func runScript(cmd *cobra.Command, cfg *config.Config, logger *log.Logger, name string) error {
	inv, err := runner.Build(cfg.Prefix, name)
	if err != nil {
		return sleutherrors.ErrEmptySelection()
	}

	if !cfg.Quiet && !cfg.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), i18n.MsgRunning+"\n", inv.String())
	}

	r := runner.New()
	r.Stdin = cmd.InOrStdin()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()
	r.Dir = cfg.ProjectRoot
	r.Logger = logger
	r.SetDryRun(cfg.DryRun)

	code, err := r.Run(cmd.Context(), inv)
	if err != nil {
		return err
	}
	if code != 0 {
		return sleutherrors.ErrChildExit(inv.String(), code)
	}
	return nil
}

// printScripts renders the manifest's scripts as a table
func printScripts(cmd *cobra.Command, m *manifest.Manifest) {
	w := cmd.OutOrStdout()
	if len(m.Scripts) == 0 {
		ui.PrintWarning(w, fmt.Sprintf(i18n.MsgNoScripts, m.Path))
		return
	}

	ui.PrintHeader(w, fmt.Sprintf(i18n.MsgScriptsHeader, m.Path))
	table := ui.NewTable(i18n.MsgTableName, i18n.MsgTableCommand)
	table.SetMaxCellWidth(tableCellWidth(w))
	for _, s := range m.Scripts {
		table.AddRow(s.Name, s.Command)
	}
	table.Render(w)
}

// tableCellWidth leaves room for the name column on narrow terminals.
// Output that is not a terminal is never truncated.
func tableCellWidth(w io.Writer) int {
	width := ui.TerminalWidth(w, 0)
	if width == 0 {
		return 0
	}
	if width-24 < 20 {
		return 20
	}
	return width - 24
}
