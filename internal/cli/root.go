// Package cli provides the command-line interface
package cli

import (
	"errors"
	"fmt"
	"os"

	sleutherrors "github.com/scriptsleuth/script-sleuth/internal/errors"
	"github.com/scriptsleuth/script-sleuth/internal/i18n"
	"github.com/scriptsleuth/script-sleuth/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the flags of one invocation
type rootOptions struct {
	cfgFile string
	prefix  string
	list    bool
	dryRun  bool
	verbose bool
	debug   bool
	quiet   bool
}

// NewRootCmd creates the script-sleuth command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "script-sleuth [script]",
		Short:         i18n.CmdRootShort,
		Long:          i18n.CmdRootLong,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation shows help and never touches package.json
			if len(args) == 0 && cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return runRoot(cmd, args, opts)
		},
		ValidArgsFunction: completeScriptNames(opts),
	}

	cmd.SetVersionTemplate(fmt.Sprintf("ScriptSleuth {{.Version}}\n  Commit: %s\n  Built:  %s\n", Commit, BuildDate))

	flags := cmd.Flags()
	flags.StringVarP(&opts.prefix, "prefix", "p", "", i18n.FlagPrefix)
	flags.BoolVarP(&opts.list, "list", "l", false, i18n.FlagList)
	flags.BoolP("version", "V", false, i18n.FlagVersion)
	flags.StringVar(&opts.cfgFile, "config", "", i18n.FlagConfig)
	flags.BoolVar(&opts.dryRun, "dry-run", false, i18n.FlagDryRun)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, i18n.FlagVerbose)
	flags.BoolVar(&opts.debug, "debug", false, i18n.FlagDebug)
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, i18n.FlagQuiet)

	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute runs the root command and exits with its status
func Execute() {
	os.Exit(execute(NewRootCmd()))
}

// execute runs cmd, reports its error and returns the exit status
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err != nil && !sleutherrors.IsSilent(err) {
		ui.PrintError(cmd.ErrOrStderr(), userMessage(err))
	}
	return sleutherrors.ExitCode(err)
}

// userMessage renders err as the one diagnostic line shown to the user
func userMessage(err error) string {
	var sErr *sleutherrors.SleuthError
	if !errors.As(err, &sErr) {
		return err.Error()
	}
	if sErr.Err == nil || sErr.Kind == sleutherrors.KindManifestUnavailable {
		return sErr.Message
	}
	return fmt.Sprintf("%s: %v", sErr.Message, sErr.Err)
}
