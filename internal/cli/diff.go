package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show the changes of the current branch since its start branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.DiffAction)
		},
	}
}
