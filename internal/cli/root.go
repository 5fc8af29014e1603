package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gg",
		Short: "gg is a command line tool for working with stacked branches",
		Long: `gg is a command line tool for working with stacked branches.

Every branch of a stack is named {prefix}/{feature}/part-{N}, paired with a
{prefix}/starts/{feature}/part-{N} branch that marks where its commits begin.
gg uses these names to navigate, rebase and sync the stack.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Add subcommands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newFixupCmd())
	rootCmd.AddCommand(newRebaseCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newCleanupCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newBranchesCmd())

	return rootCmd
}
