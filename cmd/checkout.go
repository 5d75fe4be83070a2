package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) checkoutCmd(completeBranches completionFunc) *cobra.Command {
	var create bool
	cmd := &cobra.Command{
		Use:               "checkout <branch> [start-point]",
		Aliases:           []string{"co"},
		Short:             "Check out a branch in the main working copy",
		Args:              cobra.MatchAll(cobra.RangeArgs(1, 2), validateBranchArg),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheckout(cmd, args, create)
		},
	}
	cmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch before checking it out")
	return cmd
}

func (a *App) runCheckout(cmd *cobra.Command, args []string, create bool) error {
	branch := args[0]
	var start string
	if len(args) >= 2 {
		start = args[1]
	}
	if start != "" && !create {
		return fmt.Errorf("start-point requires --create")
	}

	d, err := a.resolveDeps(cmd.Context())
	if err != nil {
		return err
	}

	if create {
		if err := d.git.CreateBranch(cmd.Context(), d.repoRoot, branch, start); err != nil {
			return err
		}
	} else {
		if err := d.git.Checkout(cmd.Context(), d.repoRoot, branch); err != nil {
			return err
		}
	}

	// best-effort: stdout write failure is non-actionable
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Switched to branch %s\n", branch)
	return nil
}
