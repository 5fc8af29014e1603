package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd() *cobra.Command {
	var opts actions.RebaseOptions

	cmd := &cobra.Command{
		Use:     "rebase",
		Aliases: []string{"rs"},
		Short:   "Rebase the current branch onto the previous branch of the stack",
		Long: `Rebase the commits of the current branch, from its start branch up, onto the
previous branch of the stack (or --onto). The rebase cherry-picks the commits
onto temporary branches; on conflict, resolve and run 'gg rebase --continue',
or 'gg rebase --abort' to drop it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RebaseAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Rebase all subsequent branches in this stack")
	cmd.Flags().StringVarP(&opts.Onto, "onto", "o", "", "Branch to rebase onto")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "Cherry-pick strategy option, e.g. theirs")
	cmd.Flags().BoolVarP(&opts.Abort, "abort", "a", false, "Abort the rebase in progress")
	cmd.Flags().BoolVarP(&opts.Continue, "continue", "c", false, "Continue the rebase in progress")
	cmd.Flags().BoolVar(&opts.Cleanup, "cleanup", false, "Finish the rebase in progress with the commits picked so far")
	cmd.MarkFlagsMutuallyExclusive("abort", "continue", "cleanup")
	_ = cmd.RegisterFlagCompletionFunc("onto", common.CompleteBranches)

	return cmd
}
