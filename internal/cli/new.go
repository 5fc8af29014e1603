package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newNewCmd creates the new command
func newNewCmd() *cobra.Command {
	var opts actions.NewOptions

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create the next branch of the stack",
		Long: `Create the next branch of the stack on top of the current one, along with
its start branch. Pass --feature to start a new stack.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.NewAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Feature, "feature", "f", "", "The feature name of a new stack")
	cmd.Flags().StringVarP(&opts.Part, "part", "p", "", "The part of the new branch (default: current part + 1)")
	cmd.Flags().BoolVarP(&opts.Main, "main", "m", false, "Fetch the main branch and branch off it")

	return cmd
}
