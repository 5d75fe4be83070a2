package cmd

import (
	"github.com/ogaworks/eda/internal/git"
	"github.com/spf13/cobra"
)

// validateBranchArg returns nil when the first positional argument is a
// valid branch name and any following argument is a valid revision
// expression. Validation happens before any subprocess is spawned.
func validateBranchArg(cmd *cobra.Command, args []string) error {
	if len(args) >= 1 {
		if err := git.ValidateBranchName(args[0]); err != nil {
			return err
		}
	}
	for _, arg := range args[1:] {
		if err := git.ValidateStartPoint(arg); err != nil {
			return err
		}
	}
	return nil
}
