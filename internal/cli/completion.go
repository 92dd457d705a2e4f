package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for oaiview. Endpoint arguments complete
to the names in the config file.

Bash:
  $ source <(oaiview completion bash)

Zsh:
  $ oaiview completion zsh > "${fpath[1]}/_oaiview"

Fish:
  $ oaiview completion fish > ~/.config/fish/completions/oaiview.fish

PowerShell:
  PS> oaiview completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
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
		},
	}
}

// completeEndpoints completes the first argument to configured endpoint names.
func (c *CLI) completeEndpoints(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, name := range cfg.Names() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name+"\t"+cfg.Endpoints[name].URL)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
