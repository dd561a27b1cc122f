package cli

import (
	"strings"

	"github.com/scriptsleuth/script-sleuth/internal/i18n"
	"github.com/scriptsleuth/script-sleuth/internal/manifest"
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 i18n.CmdCompletionShort,
		Long:                  i18n.CmdCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}

// completeScriptNames completes the positional argument with the scripts of
// package.json, described by their commands.
func completeScriptNames(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		cfg, err := loadConfig(opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		m, err := manifest.Load(manifest.FsFactory(), cfg.ManifestPath())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var completions []string
		for _, s := range m.Scripts {
			if strings.HasPrefix(s.Name, toComplete) {
				completions = append(completions, s.Name+"\t"+s.Command)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
