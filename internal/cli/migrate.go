package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
	"gg.dev/gg/internal/runtime"
)

// newMigrateCmd creates the migrate command
func newMigrateCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "migrate <prefix> <separator>",
		Short: "Rename every gg branch to a new prefix and separator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.MigrateAction(ctx, actions.MigrateOptions{
					Prefix:    args[0],
					Separator: args[1],
					Yes:       yes,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Rename every branch without prompting")

	return cmd
}
