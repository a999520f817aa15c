package main

import (
	"github.com/spf13/cobra"

	"github.com/regextract/regextract-go/pkg/regextract"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for regextract and write it to stdout.

  bash:        source <(regextract completion bash)
  zsh:         regextract completion zsh > "${fpath[1]}/_regextract"
  fish:        regextract completion fish | source
  powershell:  regextract completion powershell | Out-String | Invoke-Expression

Category names are completed for --types.`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		out := cmd.OutOrStdout()

		switch args[0] {
		case "bash":
			return root.GenBashCompletionV2(out, true)
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

// completeCategories completes --types values with the built-in categories.
// Registered in main.go once the persistent flags exist.
func completeCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, c := range regextract.Categories() {
		names = append(names, c.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func completeFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"text", "jsonl", "yaml"}, cobra.ShellCompDirectiveNoFileComp
}
