package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newDeleteCmd creates the delete command
func newDeleteCmd() *cobra.Command {
	var opts actions.DeleteOptions

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"del"},
		Short:   "Delete a branch and its start branch, locally and on the remote",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DeleteAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Branch, "branch", "b", "", "Branch to delete (default: the current branch)")
	cmd.Flags().StringVarP(&opts.Dest, "dest", "d", "", "Branch to checkout before deleting the current branch")
	_ = cmd.RegisterFlagCompletionFunc("branch", common.CompleteBranches)
	_ = cmd.RegisterFlagCompletionFunc("dest", common.CompleteBranches)

	return cmd
}
