package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
)

// newBranchesCmd creates the br command
func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "br",
		Short: "List local branches with their start branch and pull request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.BranchesAction)
		},
	}
}
