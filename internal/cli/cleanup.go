package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newCleanupCmd creates the cleanup command
func newCleanupCmd() *cobra.Command {
	var opts actions.CleanupOptions

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete branches whose pull request is closed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.CleanupAction(ctx, opts)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Delete without prompting")

	return cmd
}
