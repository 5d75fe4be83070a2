package cmd

import (
	"fmt"

	"github.com/ogaworks/eda/internal/worktree"
	"github.com/spf13/cobra"
)

func (a *App) cleanupCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "cleanup [path]",
		Short: "Remove a managed worktree, or all of them with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCleanup(cmd, args, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Remove every managed worktree")
	return cmd
}

func (a *App) runCleanup(cmd *cobra.Command, args []string, all bool) error {
	if all == (len(args) == 1) {
		return fmt.Errorf("specify a worktree path or --all, not both")
	}

	return a.withService(cmd.Context(), func(d *deps, svc *worktree.Service) error {
		if all {
			svc.CleanupAll(cmd.Context(), d.repoRoot)
			return nil
		}
		svc.Cleanup(cmd.Context(), d.repoRoot, args[0])
		return nil
	})
}
