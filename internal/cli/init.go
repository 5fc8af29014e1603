package cli

import (
	"github.com/spf13/cobra"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var opts actions.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize gg in the current repository",
		Long: `Initialize gg in the current repository by writing its naming config.
Values that are not passed as flags are prompted for, or keep their current value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := runtime.GetUninitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Splog.Close() }()
			return actions.InitAction(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.MainBranch, "main", "", "The name of the main branch")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "The prefix of every gg branch, e.g. your initials")
	cmd.Flags().StringVar(&opts.Separator, "separator", "", "The separator between branch name parts (default \"/\")")
	cmd.Flags().StringVar(&opts.RepoOrg, "org", "", "The GitHub owner to look up pull requests in, if it differs from the remote")
	cmd.Flags().StringVar(&opts.Remote, "remote", "", "The remote to push to and fetch from (default \"origin\")")

	return cmd
}
