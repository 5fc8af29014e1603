package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newRenameCmd creates the rename command
func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [name]",
		Short: "Rename the feature of the current branch and its start branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts actions.RenameOptions
			if len(args) > 0 {
				opts.NewName = args[0]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RenameAction(ctx, opts)
			})
		},
	}
	return cmd
}
