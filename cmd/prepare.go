package cmd

import (
	"fmt"

	"github.com/ogaworks/eda/internal/worktree"
	"github.com/spf13/cobra"
)

func (a *App) prepareCmd(completeBranches completionFunc) *cobra.Command {
	var central bool
	cmd := &cobra.Command{
		Use:               "prepare <branch>",
		Aliases:           []string{"prep"},
		Short:             "Create or reuse a worktree for a branch and print its path",
		Args:              cobra.MatchAll(cobra.ExactArgs(1), validateBranchArg),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrepare(cmd, args[0], central)
		},
	}
	cmd.Flags().BoolVar(&central, "central", false, "Place the worktree under the central directory")
	return cmd
}

func (a *App) runPrepare(cmd *cobra.Command, branch string, central bool) error {
	d, err := a.resolveDeps(cmd.Context())
	if err != nil {
		return err
	}

	p := d.params()
	if central {
		p.Location = worktree.LocationCentral
	}
	opts := append([]worktree.Option{worktree.WithParams(p)}, a.serviceOpts()...)
	svc := worktree.NewService(d.git, opts...)

	path, err := svc.Prepare(cmd.Context(), d.repoRoot, branch)
	if err != nil {
		return err
	}
	if path == "" {
		// The branch is already available in the main working copy.
		path = d.repoRoot
	}

	// best-effort: stdout write failure is non-actionable
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
