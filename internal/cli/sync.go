package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions/sync"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	var opts sync.Options

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the current branch with the remote if the remote is more recent",
		Long: `Fetch the current branch and its start branch, and reset both to the remote
copies when the remote branch has a more recent commit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				_, err := sync.Action(ctx, opts)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Reset to the remote even when the local branch is newer")

	return cmd
}
