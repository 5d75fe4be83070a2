package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ogaworks/eda/internal/git"
	"github.com/ogaworks/eda/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) branchesCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "branches",
		Aliases: []string{"br"},
		Short:   "List local and remote branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBranches(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runBranches(cmd *cobra.Command, jsonOutput bool) error {
	d, err := a.resolveDeps(cmd.Context())
	if err != nil {
		return err
	}

	branches, err := d.git.Branches(cmd.Context(), d.repoRoot)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), branches)
	}
	printBranchTable(cmd.OutOrStdout(), branches)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var edaTableStyle = table.Style{
	Name: "eda",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

func printBranchTable(w io.Writer, branches []git.Branch) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"", "BRANCH", "COMMIT", "UPSTREAM", "SUBJECT"})

	for _, b := range branches {
		marker := " "
		if b.IsCurrent {
			marker = ui.Green("*")
		}

		name := b.Name
		if b.IsRemote {
			name = ui.Yellow(name)
		}

		tw.AppendRow(table.Row{marker, name, shortHash(b.LastCommitHash), upstreamLabel(b), b.LastCommitMessage})
	}

	tw.SetStyle(edaTableStyle)

	tw.Render()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// upstreamLabel renders the upstream ref with ahead/behind counts,
// e.g. "origin/main +2 -1".
func upstreamLabel(b git.Branch) string {
	if b.Upstream == "" {
		return ""
	}
	label := b.Upstream
	if b.Ahead > 0 {
		label += ui.Green(fmt.Sprintf(" +%d", b.Ahead))
	}
	if b.Behind > 0 {
		label += ui.Red(fmt.Sprintf(" -%d", b.Behind))
	}
	return label
}
