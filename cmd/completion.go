package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for soar.

To load completions:

Bash:
  $ soar completion bash > /etc/bash_completion.d/soar

Zsh:
  $ soar completion zsh > "${fpath[1]}/_soar"

Fish:
  $ soar completion fish > ~/.config/fish/completions/soar.fish

PowerShell:
  PS> soar completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(exactArgs(1), cobra.OnlyValidArgs),
	RunE:                  runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)

	if err := rootCmd.RegisterFlagCompletionFunc("log-level", completeLogLevels); err != nil {
		_ = err // best-effort
	}
}

func registerPayloadCompletion(cmd *cobra.Command, flagName string) {
	if err := cmd.RegisterFlagCompletionFunc(flagName, completePayloadFiles); err != nil {
		_ = err // best-effort
	}
}

func completePayloadFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

func completeLogLevels(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
}

func runCompletion(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	}
	return nil
}
