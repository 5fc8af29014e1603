package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var opts actions.CheckoutOptions

	cmd := &cobra.Command{
		Use:     "checkout",
		Aliases: []string{"co"},
		Short:   "Checkout a branch of the current stack",
		Long: `Checkout a branch of the current stack.
Without flags, prompts to select one of the stack's branches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CheckoutAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Next, "next", "n", false, "Checkout the next branch of the stack")
	cmd.Flags().BoolVarP(&opts.Prev, "prev", "p", false, "Checkout the previous branch of the stack")
	cmd.Flags().BoolVarP(&opts.Start, "start", "s", false, "Checkout the first branch of the stack")
	cmd.Flags().StringVarP(&opts.Part, "part", "a", "", "Checkout the branch at this part, e.g. 2 or 1.5")

	return cmd
}
