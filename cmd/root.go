package cmd

import (
	"fmt"
	"os"

	edaexec "github.com/ogaworks/eda/internal/exec"
	"github.com/spf13/cobra"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eda",
		Short: "Git branch and worktree manager for parallel sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("eda version %s\n", version))
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	defaultExec := edaexec.NewDefaultExecutor()
	completeBranches := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return completeBranchesWithExec(defaultExec)
	}

	// Register subcommands
	rootCmd.AddCommand(a.branchesCmd())
	rootCmd.AddCommand(a.checkoutCmd(completeBranches))
	rootCmd.AddCommand(a.prepareCmd(completeBranches))
	rootCmd.AddCommand(a.worktreesCmd())
	rootCmd.AddCommand(a.cleanupCmd())
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
