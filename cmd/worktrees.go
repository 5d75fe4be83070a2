package cmd

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ogaworks/eda/internal/git"
	"github.com/ogaworks/eda/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) worktreesCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "worktrees",
		Aliases: []string{"wt"},
		Short:   "List worktrees registered for this repository",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWorktrees(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runWorktrees(cmd *cobra.Command, jsonOutput bool) error {
	d, err := a.resolveDeps(cmd.Context())
	if err != nil {
		return err
	}

	worktrees, err := d.git.ListWorktrees(cmd.Context(), d.repoRoot)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), worktrees)
	}
	printWorktreeTable(cmd.OutOrStdout(), worktrees)
	return nil
}

func printWorktreeTable(w io.Writer, worktrees []git.Worktree) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"", "BRANCH", "HEAD", "PATH", "STATUS"})

	for _, wt := range worktrees {
		marker := " "
		if wt.IsMain {
			marker = ui.Green("*")
		}

		branch := wt.Branch
		if branch == git.DetachedBranch {
			branch = ui.Yellow("(detached)")
		}

		tw.AppendRow(table.Row{marker, branch, shortHash(wt.Head), wt.Path, worktreeStatus(wt)})
	}

	tw.SetStyle(edaTableStyle)

	tw.Render()
}

func worktreeStatus(wt git.Worktree) string {
	var flags []string
	if wt.IsLocked {
		flags = append(flags, ui.Yellow("locked"))
	}
	if wt.IsPrunable {
		flags = append(flags, ui.Red("prunable"))
	}
	return strings.Join(flags, " ")
}
