package cmd

import (
	"context"
	"fmt"
	"os"

	edaexec "github.com/ogaworks/eda/internal/exec"
	"github.com/ogaworks/eda/internal/git"
	"github.com/spf13/cobra"
)

// completionFunc is the type for cobra shell completion functions.
type completionFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// completeBranchesWithExec creates a completion function that lists local
// branch names for the repository enclosing the working directory.
func completeBranchesWithExec(e edaexec.Executor) ([]string, cobra.ShellCompDirective) {
	if err := e.LookPath("git"); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := git.NewClient(e).Branches(context.Background(), cwd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, b := range branches {
		if !b.IsRemote {
			names = append(names, b.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
