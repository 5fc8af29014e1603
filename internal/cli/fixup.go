package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/cli/common"
)

// newFixupCmd creates the fixup command
func newFixupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixup",
		Short: "Interactively rebase the current branch onto its start branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.FixupAction)
		},
	}
}
